package main

import (
	"net/http"

	"superhero-backend/internal/config"
	"superhero-backend/internal/infrastructure/storage"
	"superhero-backend/internal/shared/middleware"
	"superhero-backend/pkg/container"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		cors.Default(),
	)

	// Local backend serves its managed directory statically; the
	// stored URLs point under this prefix.
	if c.Config.Storage.Mode == config.StorageModeLocal {
		router.Static(storage.UploadsRoute, c.Config.Storage.LocalDir)
	}

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	})

	// Hosted storage accepts webp on top of jpeg/png.
	allowedTypes := middleware.JPEGAndPNG
	if c.Config.Storage.Mode == config.StorageModeMinIO {
		allowedTypes = middleware.MinIOTypes
	}
	uploads := middleware.ValidateImages(allowedTypes)

	h := c.SuperheroHandler
	heroes := router.Group("/superheroes")
	{
		heroes.GET("", h.List)
		heroes.GET("/:id", h.GetByID)
		heroes.POST("", uploads, h.Create)
		heroes.PUT("/:id", uploads, h.Update)
		heroes.DELETE("/:id", h.Delete)
		heroes.DELETE("/:id/image/:publicId", h.DeleteImage)
	}

	return router
}
