package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse cuerpo de error unificado de la API
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Fail respuesta de error
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Error: message,
	})
}

// FailWithDetails respuesta de error con detalle adicional
func FailWithDetails(c *gin.Context, code int, message, details string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// BadRequest error 400
func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, message)
}

// Unauthorized error 401
func Unauthorized(c *gin.Context, message string) {
	Fail(c, http.StatusUnauthorized, message)
}

// NotFound error 404
func NotFound(c *gin.Context, message string) {
	Fail(c, http.StatusNotFound, message)
}

// InternalError error 500
func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, message)
}

// UpstreamError error 500 con el detalle del servicio externo adjunto
func UpstreamError(c *gin.Context, message string, err error) {
	FailWithDetails(c, http.StatusInternalServerError, message, err.Error())
}
