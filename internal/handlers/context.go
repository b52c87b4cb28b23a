package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/estetify/clinic-admin/internal/middleware"
)

// currentUserID lê o usuário autenticado do contexto da requisição.
// Nil em rotas sem autenticação.
func currentUserID(c *gin.Context) *uint {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}

	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
