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

type ClientHandler struct {
	clients *repository.ClientRepository
	audit   *audit.Dispatcher
	config  *config.Config
}

func NewClientHandler(clients *repository.ClientRepository, dispatcher *audit.Dispatcher, cfg *config.Config) *ClientHandler {
	return &ClientHandler{clients: clients, audit: dispatcher, config: cfg}
}

var clientColumns = []httpresp.Column{
	{Label: "Nome", Field: "full_name"},
	{Label: "CPF", Field: "cpf"},
	{Label: "Telefone", Field: "phone"},
	{Label: "E-mail", Field: "email"},
	{Label: "Status", Field: "status"},
	{Label: "Data Cadastro", Field: "created_at"},
}

func (h *ClientHandler) List(c *gin.Context) {
	params := listParams(c, "full_name", "cpf", "email", "phone", "status")

	clients, total, err := h.clients.List(c.Request.Context(), params)
	if err != nil {
		httperr.Internal(c, "Erro ao listar clientes.")
		return
	}

	params.Normalize()

	views := make([]dto.ClientView, 0, len(clients))
	for _, client := range clients {
		views = append(views, dto.NewClientView(client, h.config.AppURL))
	}

	httpresp.List(c, views, clientColumns, total, params.Offset, params.Limit)
}

func (h *ClientHandler) Create(c *gin.Context) {
	payload, ok := h.parsePayload(c)
	if !ok {
		return
	}

	errs := h.validate(c, payload, 0)
	if !errs.Empty() {
		httperr.Unprocessable(c, errs)
		return
	}

	client, err := h.clients.Create(c.Request.Context(), payload)
	if err != nil {
		httperr.Internal(c, "Erro ao criar cliente.")
		return
	}

	h.dispatch(c, "client_created", client.ID)

	httpresp.Mutated(c, http.StatusCreated, "Cliente criado com sucesso!", "client", dto.NewClientView(*client, h.config.AppURL))
}

func (h *ClientHandler) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Cliente não encontrado.")
		return
	}

	client, err := h.clients.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Erro ao buscar cliente.")
		return
	}
	if client == nil {
		httperr.NotFound(c, "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, dto.NewClientView(*client, h.config.AppURL))
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Cliente não encontrado.")
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

	client, err := h.clients.Update(c.Request.Context(), id, payload)
	if err != nil {
		httperr.Internal(c, "Erro ao atualizar cliente.")
		return
	}
	if client == nil {
		httperr.NotFound(c, "Cliente não encontrado.")
		return
	}

	h.dispatch(c, "client_updated", client.ID)

	httpresp.Mutated(c, http.StatusOK, "Cliente atualizado com sucesso!", "client", dto.NewClientView(*client, h.config.AppURL))
}

// Delete remove o cliente; os atendimentos dependentes caem junto,
// sem confirmação.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Cliente não encontrado.")
		return
	}

	deleted, err := h.clients.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Erro ao remover cliente.")
		return
	}
	if !deleted {
		httperr.NotFound(c, "Cliente não encontrado.")
		return
	}

	h.dispatch(c, "client_deleted", id)

	httpresp.Message(c, "Cliente removido com sucesso!")
}

func (h *ClientHandler) parsePayload(c *gin.Context) (repository.ClientPayload, bool) {
	var payload repository.ClientPayload

	if isMultipart(c) {
		payload.FullName = formStr(c, "full_name")
		payload.BirthDate = formStr(c, "birth_date")
		payload.Gender = formStr(c, "gender")
		payload.MaritalStatus = formStr(c, "marital_status")
		payload.CPF = formStr(c, "cpf")
		payload.RG = formStr(c, "rg")
		payload.Profession = formStr(c, "profession")
		payload.Nationality = formStr(c, "nationality")
		payload.PlaceOfBirth = formStr(c, "place_of_birth")
		payload.Phone = formStr(c, "phone")
		payload.Landline = formStr(c, "landline")
		payload.Email = formStr(c, "email")
		payload.Whatsapp = formStr(c, "whatsapp")
		payload.ZipCode = formStr(c, "zip_code")
		payload.Address = formStr(c, "address")
		payload.Number = formStr(c, "number")
		payload.Complement = formStr(c, "complement")
		payload.Neighborhood = formStr(c, "neighborhood")
		payload.City = formStr(c, "city")
		payload.State = formStr(c, "state")
		payload.Weight = formFloat(c, "weight")
		payload.Height = formFloat(c, "height")
		payload.ChronicDiseases = formStr(c, "chronic_diseases")
		payload.Allergies = formStr(c, "allergies")
		payload.Medications = formStr(c, "medications")
		payload.PreviousSurgeries = formStr(c, "previous_surgeries")
		payload.FamilyHistory = formStr(c, "family_history")
		payload.PregnantOrBreastfeeding = formBool(c, "pregnant_or_breastfeeding")
		payload.UsesBirthControl = formBool(c, "uses_birth_control")
		payload.Lifestyle = formStr(c, "lifestyle")
		payload.MainComplaint = formStr(c, "main_complaint")
		payload.SkinType = formStr(c, "skin_type")
		payload.HairType = formStr(c, "hair_type")
		payload.TreatmentAreas = formStr(c, "treatment_areas")
		payload.AestheticGoals = formStr(c, "aesthetic_goals")
		payload.Notes = formStr(c, "notes")
		payload.ConsentToTreatment = formBool(c, "consent_to_treatment")
		payload.AcceptsPromotions = formBool(c, "accepts_promotions")
		payload.Status = formStr(c, "status")
		payload.BeforePhoto = formFile(c, "before_photo")
		return payload, true
	}

	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.Unprocessable(c, validators.Errors{"payload": {"Dados inválidos."}})
		return payload, false
	}
	return payload, true
}

func (h *ClientHandler) validate(c *gin.Context, p repository.ClientPayload, exceptID uint) validators.Errors {
	ctx := c.Request.Context()
	errs := validators.Errors{}

	require := func(field string, value *string, message string) {
		if strings.TrimSpace(strOrEmpty(value)) == "" {
			errs.Add(field, message)
		}
	}

	require("full_name", p.FullName, "O campo Nome Completo é obrigatório.")
	require("birth_date", p.BirthDate, "O campo Data de Nascimento é obrigatório.")
	require("gender", p.Gender, "O campo Gênero é obrigatório.")
	require("phone", p.Phone, "O campo Telefone é obrigatório.")
	require("zip_code", p.ZipCode, "O campo CEP é obrigatório.")
	require("address", p.Address, "O campo Endereço é obrigatório.")
	require("number", p.Number, "O campo Número é obrigatório.")
	require("neighborhood", p.Neighborhood, "O campo Bairro é obrigatório.")
	require("city", p.City, "O campo Cidade é obrigatório.")
	require("state", p.State, "O campo Estado é obrigatório.")

	cpf := strings.TrimSpace(strOrEmpty(p.CPF))
	if cpf == "" {
		errs.Add("cpf", "O campo CPF é obrigatório.")
	} else if inUse, err := h.clients.CPFInUse(ctx, cpf, exceptID); err == nil && inUse {
		errs.Add("cpf", "O CPF informado já está em uso.")
	}

	email := strings.TrimSpace(strOrEmpty(p.Email))
	switch {
	case email == "":
		errs.Add("email", "O campo E-mail é obrigatório.")
	case !validators.IsValidEmail(email):
		errs.Add("email", "O E-mail informado não é válido.")
	default:
		if inUse, err := h.clients.EmailInUse(ctx, email, exceptID); err == nil && inUse {
			errs.Add("email", "O E-mail informado já está em uso.")
		}
	}

	status := strOrEmpty(p.Status)
	if status == "" {
		errs.Add("status", "O campo Status é obrigatório.")
	} else if status != "active" && status != "inactive" {
		errs.Add("status", "O status deve ser ativo ou inativo.")
	}

	return errs
}

func (h *ClientHandler) dispatch(c *gin.Context, action string, id uint) {
	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   action,
		Entity:   "client",
		EntityID: &id,
	})
}
