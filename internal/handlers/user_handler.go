package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/estetify/clinic-admin/internal/audit"
	"github.com/estetify/clinic-admin/internal/config"
	"github.com/estetify/clinic-admin/internal/dto"
	"github.com/estetify/clinic-admin/internal/httperr"
	"github.com/estetify/clinic-admin/internal/httpresp"
	"github.com/estetify/clinic-admin/internal/repository"
	"github.com/estetify/clinic-admin/internal/validators"
)

type UserHandler struct {
	users    *repository.UserRepository
	profiles *repository.ProfileRepository
	audit    *audit.Dispatcher
	config   *config.Config
}

func NewUserHandler(
	users *repository.UserRepository,
	profiles *repository.ProfileRepository,
	dispatcher *audit.Dispatcher,
	cfg *config.Config,
) *UserHandler {
	return &UserHandler{users: users, profiles: profiles, audit: dispatcher, config: cfg}
}

var userColumns = []httpresp.Column{
	{Label: "ID", Field: "id"},
	{Label: "Nome", Field: "name"},
	{Label: "Email", Field: "email"},
	{Label: "Criado em", Field: "created_at"},
}

func (h *UserHandler) List(c *gin.Context) {
	params := listParams(c, "name", "email", "cpf", "phone")

	users, total, err := h.users.List(c.Request.Context(), params)
	if err != nil {
		httperr.Internal(c, "Erro ao listar usuários.")
		return
	}

	params.Normalize()

	views := make([]dto.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, dto.NewUserView(user, h.config.AppURL))
	}

	httpresp.List(c, views, userColumns, total, params.Offset, params.Limit)
}

func (h *UserHandler) Create(c *gin.Context) {
	payload, ok := h.parsePayload(c)
	if !ok {
		return
	}

	errs := h.validate(c, payload, 0)
	if !errs.Empty() {
		httperr.Unprocessable(c, errs)
		return
	}

	// sem senha no cadastro, aplica a senha padrão configurada
	if payload.Password == nil || *payload.Password == "" {
		def := h.config.DefaultUserPassword
		payload.Password = &def
	}

	user, err := h.users.Create(c.Request.Context(), payload)
	if err != nil {
		httperr.Internal(c, "Erro ao criar usuário.")
		return
	}

	h.dispatch(c, "user_created", user.ID)

	httpresp.Mutated(c, http.StatusCreated, "Usuário criado com sucesso!", "user", dto.NewUserView(*user, h.config.AppURL))
}

func (h *UserHandler) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Usuário não encontrado.")
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Erro ao buscar usuário.")
		return
	}
	if user == nil {
		httperr.NotFound(c, "Usuário não encontrado.")
		return
	}

	httpresp.OK(c, dto.NewUserView(*user, h.config.AppURL))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Usuário não encontrado.")
		return
	}

	payload, ok := h.parsePayload(c)
	if !ok {
		return
	}

	errs := h.validate(c, payload, id)
	if !errs.Empty() {
		httperr.Unprocessable(c, errs)
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, payload)
	if err != nil {
		httperr.Internal(c, "Erro ao atualizar usuário.")
		return
	}
	if user == nil {
		httperr.NotFound(c, "Usuário não encontrado.")
		return
	}

	h.dispatch(c, "user_updated", user.ID)

	httpresp.Mutated(c, http.StatusOK, "Usuário atualizado com sucesso!", "user", dto.NewUserView(*user, h.config.AppURL))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Usuário não encontrado.")
		return
	}

	deleted, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Erro ao remover usuário.")
		return
	}
	if !deleted {
		httperr.NotFound(c, "Usuário não encontrado.")
		return
	}

	h.dispatch(c, "user_deleted", id)

	httpresp.Message(c, "Usuário removido com sucesso!")
}

func (h *UserHandler) parsePayload(c *gin.Context) (repository.UserPayload, bool) {
	var payload repository.UserPayload

	if isMultipart(c) {
		payload.Name = formStr(c, "name")
		payload.Email = formStr(c, "email")
		payload.CPF = formStr(c, "cpf")
		payload.RG = formStr(c, "rg")
		payload.BirthDate = formStr(c, "birth_date")
		payload.Gender = formStr(c, "gender")
		payload.MaritalStatus = formStr(c, "marital_status")
		payload.Phone = formStr(c, "phone")
		payload.AddressStreet = formStr(c, "address_street")
		payload.AddressNumber = formStr(c, "address_number")
		payload.AddressComplement = formStr(c, "address_complement")
		payload.AddressNeighborhood = formStr(c, "address_neighborhood")
		payload.AddressCity = formStr(c, "address_city")
		payload.AddressState = formStr(c, "address_state")
		payload.AddressZipCode = formStr(c, "address_zip_code")
		payload.Password = formStr(c, "password")
		payload.ProfileID = formUint(c, "profile_id")
		payload.Photo = formFile(c, "photo")
		return payload, true
	}

	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.Unprocessable(c, validators.Errors{"payload": {"Dados inválidos."}})
		return payload, false
	}
	return payload, true
}

func (h *UserHandler) validate(c *gin.Context, p repository.UserPayload, exceptID uint) validators.Errors {
	ctx := c.Request.Context()
	errs := validators.Errors{}

	if strOrEmpty(p.Name) == "" {
		errs.Add("name", "O campo Nome é obrigatório.")
	}

	email := strings.TrimSpace(strOrEmpty(p.Email))
	switch {
	case email == "":
		errs.Add("email", "O campo E-mail é obrigatório.")
	case !validators.IsValidEmail(email):
		errs.Add("email", "O E-mail informado não é válido.")
	default:
		if inUse, err := h.users.EmailInUse(ctx, email, exceptID); err == nil && inUse {
			errs.Add("email", "O E-mail informado já está em uso.")
		}
	}

	cpf := strings.TrimSpace(strOrEmpty(p.CPF))
	switch {
	case cpf == "":
		errs.Add("cpf", "O campo CPF é obrigatório.")
	case !validators.IsValidCPF(cpf):
		errs.Add("cpf", "O CPF informado não é válido.")
	default:
		if inUse, err := h.users.CPFInUse(ctx, cpf, exceptID); err == nil && inUse {
			errs.Add("cpf", "O CPF informado já está em uso.")
		}
	}

	if p.ProfileID == nil || *p.ProfileID == 0 {
		errs.Add("profile_id", "O campo Perfil é obrigatório.")
	} else if exists, err := h.profiles.Exists(ctx, *p.ProfileID); err == nil && !exists {
		errs.Add("profile_id", "O perfil selecionado não existe.")
	}

	return errs
}

func (h *UserHandler) dispatch(c *gin.Context, action string, id uint) {
	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   action,
		Entity:   "user",
		EntityID: &id,
	})
}
