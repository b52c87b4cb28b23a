package dto

import "github.com/estetify/clinic-admin/internal/models"

type AppointmentView struct {
	ID uint `json:"id"`

	ClientID uint       `json:"client_id"`
	Client   *ClientRef `json:"client,omitempty"`

	UserID uint     `json:"user_id"`
	User   *UserRef `json:"user,omitempty"`

	Date   string `json:"date"`
	DateBR string `json:"date_br"`
	Time   string `json:"time"`

	// Composto YYYY-MM-DDTHH:MM consumido pelo widget de calendário
	CalendarDate string `json:"calendar_date"`

	Procedure string `json:"procedure"`
	Notes     string `json:"notes"`

	BeforePhoto *string `json:"before_photo"`
	AfterPhoto  *string `json:"after_photo"`

	ProductsUsed []string `json:"products_used"`
	Price        *float64 `json:"price"`

	// Status traduzido para exibição (Agendado/Concluído/Cancelado)
	Status string `json:"status"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ClientRef struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
}

type UserRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewAppointmentView(a models.Appointment, baseURL string) AppointmentView {
	view := AppointmentView{
		ID:           a.ID,
		ClientID:     a.ClientID,
		UserID:       a.UserID,
		Date:         a.Date,
		DateBR:       FormatISODateBR(a.Date),
		Time:         a.Time,
		CalendarDate: CalendarDate(a.Date, a.Time),
		Procedure:    a.Procedure,
		Notes:        a.Notes,
		BeforePhoto:  PhotoURL(baseURL, a.BeforePhoto),
		AfterPhoto:   PhotoURL(baseURL, a.AfterPhoto),
		ProductsUsed: a.ProductsUsed,
		Price:        a.Price,
		Status:       AppointmentStatusLabel(a.Status),
		CreatedAt:    FormatDateBR(a.CreatedAt),
		UpdatedAt:    FormatDateBR(a.UpdatedAt),
	}

	if a.Client != nil {
		view.Client = &ClientRef{ID: a.Client.ID, FullName: a.Client.FullName}
	}
	if a.User != nil {
		view.User = &UserRef{ID: a.User.ID, Name: a.User.Name}
	}

	return view
}
