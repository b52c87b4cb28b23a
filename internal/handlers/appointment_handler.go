package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/estetify/clinic-admin/internal/audit"
	"github.com/estetify/clinic-admin/internal/config"
	"github.com/estetify/clinic-admin/internal/dto"
	"github.com/estetify/clinic-admin/internal/httperr"
	"github.com/estetify/clinic-admin/internal/httpresp"
	"github.com/estetify/clinic-admin/internal/payments"
	"github.com/estetify/clinic-admin/internal/repository"
	"github.com/estetify/clinic-admin/internal/validators"
)

type AppointmentHandler struct {
	appointments *repository.AppointmentRepository
	clients      *repository.ClientRepository
	users        *repository.UserRepository
	payments     *payments.MercadoPago
	audit        *audit.Dispatcher
	config       *config.Config
}

func NewAppointmentHandler(
	appointments *repository.AppointmentRepository,
	clients *repository.ClientRepository,
	users *repository.UserRepository,
	mp *payments.MercadoPago,
	dispatcher *audit.Dispatcher,
	cfg *config.Config,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		clients:      clients,
		users:        users,
		payments:     mp,
		audit:        dispatcher,
		config:       cfg,
	}
}

var appointmentColumns = []httpresp.Column{
	{Label: "Cliente", Field: "client.full_name"},
	{Label: "Profissional", Field: "user.name"},
	{Label: "Data", Field: "date_br"},
	{Label: "Hora", Field: "time"},
	{Label: "Procedimento", Field: "procedure"},
	{Label: "Status", Field: "status"},
}

func (h *AppointmentHandler) List(c *gin.Context) {
	params := listParams(c, "client_name", "date", "status")

	appointments, total, err := h.appointments.List(c.Request.Context(), params)
	if err != nil {
		httperr.Internal(c, "Erro ao listar atendimentos.")
		return
	}

	params.Normalize()

	views := make([]dto.AppointmentView, 0, len(appointments))
	for _, appointment := range appointments {
		views = append(views, dto.NewAppointmentView(appointment, h.config.AppURL))
	}

	httpresp.List(c, views, appointmentColumns, total, params.Offset, params.Limit)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	payload, ok := h.parsePayload(c)
	if !ok {
		return
	}

	errs := h.validate(c, payload)
	if !errs.Empty() {
		httperr.Unprocessable(c, errs)
		return
	}

	appointment, err := h.appointments.Create(c.Request.Context(), payload)
	if err != nil {
		httperr.Internal(c, "Erro ao criar atendimento.")
		return
	}

	h.dispatch(c, "appointment_created", appointment.ID)

	httpresp.Mutated(c, http.StatusCreated, "Atendimento criado com sucesso!", "appointment", dto.NewAppointmentView(*appointment, h.config.AppURL))
}

func (h *AppointmentHandler) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Atendimento não encontrado.")
		return
	}

	appointment, err := h.appointments.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Erro ao buscar atendimento.")
		return
	}
	if appointment == nil {
		httperr.NotFound(c, "Atendimento não encontrado.")
		return
	}

	httpresp.OK(c, dto.NewAppointmentView(*appointment, h.config.AppURL))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Atendimento não encontrado.")
		return
	}

	payload, ok := h.parsePayload(c)
	if !ok {
		return
	}

	errs := h.validate(c, payload)
	if !errs.Empty() {
		httperr.Unprocessable(c, errs)
		return
	}

	appointment, err := h.appointments.Update(c.Request.Context(), id, payload)
	if err != nil {
		httperr.Internal(c, "Erro ao atualizar atendimento.")
		return
	}
	if appointment == nil {
		httperr.NotFound(c, "Atendimento não encontrado.")
		return
	}

	h.dispatch(c, "appointment_updated", appointment.ID)

	httpresp.Mutated(c, http.StatusOK, "Atendimento atualizado com sucesso!", "appointment", dto.NewAppointmentView(*appointment, h.config.AppURL))
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Atendimento não encontrado.")
		return
	}

	deleted, err := h.appointments.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Erro ao remover atendimento.")
		return
	}
	if !deleted {
		httperr.NotFound(c, "Atendimento não encontrado.")
		return
	}

	h.dispatch(c, "appointment_deleted", id)

	httpresp.Message(c, "Atendimento removido com sucesso!")
}

// PaymentLink cria uma preferência de checkout no Mercado Pago para o
// atendimento. Exige integração habilitada e preço definido.
func (h *AppointmentHandler) PaymentLink(c *gin.Context) {
	if h.payments == nil {
		httperr.ServiceUnavailable(c, "Integração de pagamentos não configurada.")
		return
	}

	id, ok := paramID(c)
	if !ok {
		httperr.NotFound(c, "Atendimento não encontrado.")
		return
	}

	appointment, err := h.appointments.FindByID(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Erro ao buscar atendimento.")
		return
	}
	if appointment == nil {
		httperr.NotFound(c, "Atendimento não encontrado.")
		return
	}

	link, err := h.payments.CreateAppointmentLink(c.Request.Context(), appointment)
	if errors.Is(err, payments.ErrNoPrice) {
		httperr.Unprocessable(c, validators.Errors{"price": {"O atendimento não possui valor definido."}})
		return
	}
	if err != nil {
		httperr.Internal(c, "Erro ao gerar link de pagamento.")
		return
	}

	h.dispatch(c, "appointment_payment_link", id)

	httpresp.OK(c, gin.H{"payment_url": link})
}

func (h *AppointmentHandler) parsePayload(c *gin.Context) (repository.AppointmentPayload, bool) {
	var payload repository.AppointmentPayload

	if isMultipart(c) {
		payload.ClientID = formUint(c, "client_id")
		payload.UserID = formUint(c, "user_id")
		payload.Date = formStr(c, "date")
		payload.Time = formStr(c, "time")
		payload.Procedure = formStr(c, "procedure")
		payload.Notes = formStr(c, "notes")
		payload.ProductsUsed = formList(c, "products_used")
		payload.Price = formFloat(c, "price")
		payload.Status = formStr(c, "status")
		payload.BeforePhoto = formFile(c, "before_photo")
		payload.AfterPhoto = formFile(c, "after_photo")
		return payload, true
	}

	if err := c.ShouldBindJSON(&payload); err != nil {
		httperr.Unprocessable(c, validators.Errors{"payload": {"Dados inválidos."}})
		return payload, false
	}
	return payload, true
}

func (h *AppointmentHandler) validate(c *gin.Context, p repository.AppointmentPayload) validators.Errors {
	ctx := c.Request.Context()
	errs := validators.Errors{}

	if p.ClientID == nil || *p.ClientID == 0 {
		errs.Add("client_id", "O campo Cliente é obrigatório.")
	} else if exists, err := h.clients.Exists(ctx, *p.ClientID); err == nil && !exists {
		errs.Add("client_id", "O cliente selecionado não existe.")
	}

	if p.UserID == nil || *p.UserID == 0 {
		errs.Add("user_id", "O campo Profissional é obrigatório.")
	} else if exists, err := h.users.Exists(ctx, *p.UserID); err == nil && !exists {
		errs.Add("user_id", "O profissional selecionado não existe.")
	}

	if strings.TrimSpace(strOrEmpty(p.Date)) == "" {
		errs.Add("date", "O campo Data é obrigatório.")
	}
	if strings.TrimSpace(strOrEmpty(p.Procedure)) == "" {
		errs.Add("procedure", "O campo Procedimento é obrigatório.")
	}

	switch strings.TrimSpace(strOrEmpty(p.Status)) {
	case "":
		errs.Add("status", "O campo Status é obrigatório.")
	case "scheduled", "completed", "canceled":
	default:
		errs.Add("status", "O status informado não é válido.")
	}

	return errs
}

func (h *AppointmentHandler) dispatch(c *gin.Context, action string, id uint) {
	h.audit.Dispatch(audit.Event{
		UserID:   currentUserID(c),
		Action:   action,
		Entity:   "appointment",
		EntityID: &id,
	})
}
