package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estetify/clinic-admin/internal/audit"
	"github.com/estetify/clinic-admin/internal/dto"
	"github.com/estetify/clinic-admin/internal/httperr"
	"github.com/estetify/clinic-admin/internal/httpresp"
	"github.com/estetify/clinic-admin/internal/repository"
	"github.com/estetify/clinic-admin/internal/validators"
)

type ProfileHandler struct {
	profiles *repository.ProfileRepository
	audit    *audit.Dispatcher
}

func NewProfileHandler(profiles *repository.ProfileRepository, dispatcher *audit.Dispatcher) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, audit: dispatcher}
}

var profileColumns = []httpresp.Column{
	{Label: "Perfil", Field: "name"},
	{Label: "Ativo", Field: "active_label"},
}

func (h *ProfileHandler) List(c *gin.Context) {
	params := listParams(c, "name")

	profiles, total, err := h.profiles.List(c.Request.Context(), params)
	if err != nil {
		httperr.Internal(c, "Erro ao listar perfis.")
		return
	}

	params.Normalize()

	views := make([]dto.ProfileView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, dto.NewProfileView(profile))
	}

	httpresp.List(c, views, profileColumns, total, params.Offset, params.Limit)
}

func (h *ProfileHandler) Combo(c *gin.Context) {
	profiles, err := h.profiles.Combo(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Erro ao listar perfis.")
		return
	}

	options := make([]dto.ProfileOption, 0, len(profiles))
	for _, profile := range profiles {
		options = append(options, dto.NewProfileOption(profile))
	}

	httpresp.OK(c, options)
}

func (h *ProfileHandler) Create(c *gin.Context) {
	payload, errs := h.parseAndValidate(c)
	if !errs.Empty() {
		httperr.Unprocessable(c, errs)
		return
	}

	profile, err := h.profiles.Create(c.Request.Context(), payload)
	if err != nil {
		httperr.Internal(c, "Erro ao criar perfil.")
		return
	}

	h.dispatch(c, "profile_created", profile.ID)

	httpresp.Mutated(c, http.StatusCreated, "Perfil criado com sucesso!", "profile", dto.NewProfileView(*profile))
}

func (h *ProfileHandler) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Perfil não encontrado.")
		return
	}

	profile, err := h.profiles.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Erro ao buscar perfil.")
		return
	}
	if profile == nil {
		httperr.NotFound(c, "Perfil não encontrado.")
		return
	}

	httpresp.OK(c, dto.NewProfileView(*profile))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Perfil não encontrado.")
		return
	}

	payload, errs := h.parseAndValidate(c)
	if !errs.Empty() {
		httperr.Unprocessable(c, errs)
		return
	}

	profile, err := h.profiles.Update(c.Request.Context(), id, payload)
	if err != nil {
		httperr.Internal(c, "Erro ao atualizar perfil.")
		return
	}
	if profile == nil {
		httperr.NotFound(c, "Perfil não encontrado.")
		return
	}

	h.dispatch(c, "profile_updated", profile.ID)

	httpresp.Mutated(c, http.StatusOK, "Perfil atualizado com sucesso!", "profile", dto.NewProfileView(*profile))
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Perfil não encontrado.")
		return
	}

	deleted, err := h.profiles.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Erro ao remover perfil.")
		return
	}
	if !deleted {
		httperr.NotFound(c, "Perfil não encontrado.")
		return
	}

	h.dispatch(c, "profile_deleted", id)

	httpresp.Message(c, "Perfil removido com sucesso!")
}

func (h *ProfileHandler) parseAndValidate(c *gin.Context) (repository.ProfilePayload, validators.Errors) {
	var payload repository.ProfilePayload

	if isMultipart(c) {
		payload.Name = formStr(c, "name")
		payload.Description = formStr(c, "description")
		payload.Active = formBool(c, "active")
	} else if err := c.ShouldBindJSON(&payload); err != nil {
		return payload, validators.Errors{"payload": {"Dados inválidos."}}
	}

	errs := validators.Errors{}
	if strOrEmpty(payload.Name) == "" {
		errs.Add("name", "O campo Nome é obrigatório.")
	}
	if payload.Active == nil {
		errs.Add("active", "O campo Ativo é obrigatório.")
	}

	return payload, errs
}

func (h *ProfileHandler) dispatch(c *gin.Context, action string, id uint) {
	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   action,
		Entity:   "profile",
		EntityID: &id,
	})
}
