package handlers

import (
	"encoding/json"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/estetify/clinic-admin/internal/repository"
)

// Helpers para payloads multipart. Campos ausentes do form ficam nil,
// preservando a semântica de merge parcial dos payloads.

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

func formStr(c *gin.Context, name string) *string {
	if v, ok := c.GetPostForm(name); ok {
		return &v
	}
	return nil
}

func formBool(c *gin.Context, name string) *bool {
	v, ok := c.GetPostForm(name)
	if !ok {
		return nil
	}

	b := v == "1" || strings.EqualFold(v, "true") || strings.EqualFold(v, "on")
	return &b
}

func formFloat(c *gin.Context, name string) *float64 {
	v, ok := c.GetPostForm(name)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func formUint(c *gin.Context, name string) *uint {
	v, ok := c.GetPostForm(name)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}

	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(n)
	return &u
}

// formList aceita tanto campos repetidos (name[]) quanto um único
// campo com um array JSON.
func formList(c *gin.Context, name string) *[]string {
	if values, ok := c.GetPostFormArray(name + "[]"); ok {
		return &values
	}

	v, ok := c.GetPostForm(name)
	if !ok {
		return nil
	}

	var values []string
	if err := json.Unmarshal([]byte(v), &values); err != nil {
		values = []string{v}
	}
	return &values
}

func formFile(c *gin.Context, name string) *multipart.FileHeader {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return fh
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func listParams(c *gin.Context, filterNames ...string) repository.ListParams {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filters := make(map[string]string, len(filterNames))
	for _, name := range filterNames {
		filters[name] = c.Query(name)
	}

	return repository.ListParams{
		Filters: filters,
		Limit:   limit,
		Offset:  offset,
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
