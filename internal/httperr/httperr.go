package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Message string `json:"message"`
}

type ValidationError struct {
	Errors map[string][]string `json:"errors"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func ServiceUnavailable(c *gin.Context, message string) {
	Write(c, http.StatusServiceUnavailable, message)
}

// Erros de validação no formato {errors: {campo: [mensagens]}}
func Unprocessable(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, ValidationError{Errors: errs})
}
