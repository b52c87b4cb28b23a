package repository

import (
	"context"
	"mime/multipart"
	"strings"

	"gorm.io/gorm"

	"github.com/estetify/clinic-admin/internal/models"
	"github.com/estetify/clinic-admin/internal/storage"
)

type AppointmentRepository struct {
	db    *gorm.DB
	store storage.Storage
}

func NewAppointmentRepository(db *gorm.DB, store storage.Storage) *AppointmentRepository {
	return &AppointmentRepository{db: db, store: store}
}

var appointmentFilters = []FilterRule{
	{
		Param:  "client_name",
		Column: "clients.full_name",
		Join:   "JOIN clients ON clients.id = appointments.client_id",
	},
	{Param: "date", Column: "appointments.date", Exact: true},
	{Param: "status", Column: "appointments.status", Exact: true},
}

// Mais recentes primeiro; dentro do dia, ordem do horário. Contrato das
// visões de calendário e histórico.
const appointmentOrder = "date DESC, time ASC"

type AppointmentPayload struct {
	ClientID *uint `json:"client_id"`
	UserID   *uint `json:"user_id"`

	Date      *string `json:"date"`
	Time      *string `json:"time"`
	Procedure *string `json:"procedure"`
	Notes     *string `json:"notes"`

	ProductsUsed *[]string `json:"products_used"`
	Price        *float64  `json:"price"`
	Status       *string   `json:"status"`

	BeforePhoto *multipart.FileHeader `json:"-"`
	AfterPhoto  *multipart.FileHeader `json:"-"`
}

// List resolve a página já com Client e User carregados, evitando
// lookups N+1 no mapeamento de apresentação.
func (r *AppointmentRepository) List(ctx context.Context, params ListParams) ([]models.Appointment, int64, error) {
	return ListPage[models.Appointment](
		ctx, r.db, appointmentFilters, params, appointmentOrder,
		"Client", "User",
	)
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	return findByID[models.Appointment](ctx, r.db, id, "Client", "User")
}

func (r *AppointmentRepository) Create(ctx context.Context, p AppointmentPayload) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.applyPayload(ctx, &appointment, p); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(&appointment).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, appointment.ID)
}

func (r *AppointmentRepository) Update(ctx context.Context, id uint, p AppointmentPayload) (*models.Appointment, error) {
	appointment, err := findByID[models.Appointment](ctx, r.db, id)
	if err != nil || appointment == nil {
		return nil, err
	}

	if err := r.applyPayload(ctx, appointment, p); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Save(appointment).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, appointment.ID)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uint) (bool, error) {
	appointment, err := findByID[models.Appointment](ctx, r.db, id)
	if err != nil || appointment == nil {
		return false, err
	}

	if err := r.db.WithContext(ctx).Delete(appointment).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *AppointmentRepository) applyPayload(ctx context.Context, appointment *models.Appointment, p AppointmentPayload) error {
	if p.BeforePhoto != nil {
		path, err := storage.SavePhoto(ctx, r.store, "appointments/before", p.BeforePhoto)
		if err != nil {
			return err
		}
		appointment.BeforePhoto = path
	}
	if p.AfterPhoto != nil {
		path, err := storage.SavePhoto(ctx, r.store, "appointments/after", p.AfterPhoto)
		if err != nil {
			return err
		}
		appointment.AfterPhoto = path
	}

	if p.ClientID != nil {
		appointment.ClientID = *p.ClientID
		appointment.Client = nil
	}
	if p.UserID != nil {
		appointment.UserID = *p.UserID
		appointment.User = nil
	}

	setStr(&appointment.Date, p.Date)

	// hora sempre em HH:MM para ordenação textual e calendar_date
	if p.Time != nil {
		appointment.Time = normalizeTime(*p.Time)
	}
	setStr(&appointment.Procedure, p.Procedure)
	setStr(&appointment.Notes, p.Notes)
	setStr(&appointment.Status, p.Status)

	if p.ProductsUsed != nil {
		appointment.ProductsUsed = models.StringList(*p.ProductsUsed)
	}
	if p.Price != nil {
		appointment.Price = p.Price
	}

	return nil
}

func normalizeTime(hm string) string {
	hm = strings.TrimSpace(hm)
	if strings.Index(hm, ":") == 1 {
		return "0" + hm
	}
	return hm
}
