package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Coluna declarada pelo servidor para a tabela genérica do frontend
type Column struct {
	Label string `json:"label"`
	Field string `json:"field"`
}

type ListResponse[T any] struct {
	Data    []T      `json:"data"`
	Columns []Column `json:"columns"`
	Total   int64    `json:"total"`
	Offset  int      `json:"offset"`
	Limit   int      `json:"limit"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func List[T any](c *gin.Context, data []T, columns []Column, total int64, offset, limit int) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:    data,
		Columns: columns,
		Total:   total,
		Offset:  offset,
		Limit:   limit,
	})
}

// Envelope de mutação: {message, <chave da entidade>: entidade}
func Mutated(c *gin.Context, status int, message, entityKey string, entity any) {
	c.JSON(status, gin.H{
		"message": message,
		entityKey: entity,
	})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
