package dto

import "github.com/estetify/clinic-admin/internal/models"

type ProfileView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	ActiveLabel string `json:"active_label"`
	CreatedAt   string `json:"created_at"`
}

func NewProfileView(p models.Profile) ProfileView {
	label := "Não"
	if p.Active {
		label = "Sim"
	}

	return ProfileView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Active:      p.Active,
		ActiveLabel: label,
		CreatedAt:   FormatDateBR(p.CreatedAt),
	}
}

// Item do combo de perfis ativos
type ProfileOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewProfileOption(p models.Profile) ProfileOption {
	return ProfileOption{ID: p.ID, Name: p.Name}
}
