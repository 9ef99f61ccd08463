package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"superhero-backend/internal/domains/superhero"
	"superhero-backend/internal/shared/middleware"
	"superhero-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SuperheroHandler struct {
	service superhero.Service
}

func NewSuperheroHandler(svc superhero.Service) *SuperheroHandler {
	return &SuperheroHandler{service: svc}
}

// List handles GET /superheroes?page=N.
func (h *SuperheroHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	resp, err := h.service.List(c.Request.Context(), page)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByID handles GET /superheroes/:id.
func (h *SuperheroHandler) GetByID(c *gin.Context) {
	hero, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hero)
}

// Create handles POST /superheroes (multipart form).
func (h *SuperheroHandler) Create(c *gin.Context) {
	var req superhero.CreateSuperheroRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hero, err := h.service.Create(c.Request.Context(), &req, h.formFiles(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, hero)
}

// Update handles PUT /superheroes/:id (multipart form, partial).
func (h *SuperheroHandler) Update(c *gin.Context) {
	req := buildUpdateRequest(c)
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hero, err := h.service.Update(c.Request.Context(), c.Param("id"), req, h.formFiles(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hero)
}

// Delete handles DELETE /superheroes/:id.
func (h *SuperheroHandler) Delete(c *gin.Context) {
	resp, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteImage handles DELETE /superheroes/:id/image/:publicId.
func (h *SuperheroHandler) DeleteImage(c *gin.Context) {
	hero, err := h.service.DeleteImage(c.Request.Context(), c.Param("id"), c.Param("publicId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, hero)
}

func (h *SuperheroHandler) fail(c *gin.Context, err error) {
	status := superhero.GetHTTPStatusCode(err)
	if status == http.StatusInternalServerError {
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Err(err).
			Msg("superhero operation failed")
	}
	response.Error(c, status, err.Error())
}

// formFiles returns the uploaded files, already shape-checked by the
// upload middleware. No files is a valid request.
func (h *SuperheroHandler) formFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[middleware.ImagesField]
}

// buildUpdateRequest reads only the fields present in the form, so
// absent fields keep their stored value.
func buildUpdateRequest(c *gin.Context) *superhero.UpdateSuperheroRequest {
	req := &superhero.UpdateSuperheroRequest{}

	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return req
	}

	get := func(key string) *string {
		values, ok := form.Value[key]
		if !ok || len(values) == 0 {
			return nil
		}
		return &values[0]
	}

	req.Nickname = get("nickname")
	req.RealName = get("real_name")
	req.OriginDescription = get("origin_description")
	req.Superpowers = get("superpowers")
	req.CatchPhrase = get("catch_phrase")
	return req
}
