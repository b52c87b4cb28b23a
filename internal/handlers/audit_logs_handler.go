package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/estetify/clinic-admin/internal/httperr"
	"github.com/estetify/clinic-admin/internal/httpresp"
	"github.com/estetify/clinic-admin/internal/models"
)

// AuditLogsHandler expõe a trilha de auditoria em modo leitura. Os
// filtros de data não entram no resolvedor genérico por serem
// intervalos, não igualdade ou substring.
type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

var auditLogColumns = []httpresp.Column{
	{Label: "Ação", Field: "action"},
	{Label: "Entidade", Field: "entity"},
	{Label: "Registro", Field: "entity_id"},
	{Label: "Usuário", Field: "user_id"},
	{Label: "Data", Field: "created_at"},
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	params := listParams(c)
	params.Normalize()

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "Erro ao contar logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(params.Limit).
		Offset(params.Offset).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "Erro ao listar logs.")
		return
	}

	httpresp.List(c, logs, auditLogColumns, total, params.Offset, params.Limit)
}
