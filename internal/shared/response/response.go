package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the stable error shape every failure returns.
type ErrorBody struct {
	Error string `json:"error"`
}

func Error(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
