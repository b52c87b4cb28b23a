package dto

import "github.com/estetify/clinic-admin/internal/models"

// A senha nunca aparece aqui: o UserView é a única forma serializada
// de um usuário.
type UserView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
	RG    string `json:"rg"`

	BirthDate     string `json:"birth_date"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"marital_status"`
	Phone         string `json:"phone"`

	AddressStreet       string `json:"address_street"`
	AddressNumber       string `json:"address_number"`
	AddressComplement   string `json:"address_complement"`
	AddressNeighborhood string `json:"address_neighborhood"`
	AddressCity         string `json:"address_city"`
	AddressState        string `json:"address_state"`
	AddressZipCode      string `json:"address_zip_code"`

	Photo *string `json:"photo"`

	ProfileID uint        `json:"profile_id"`
	Profile   *ProfileRef `json:"profile,omitempty"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ProfileRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewUserView(u models.User, baseURL string) UserView {
	view := UserView{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		CPF:                 u.CPF,
		RG:                  u.RG,
		BirthDate:           u.BirthDate,
		Gender:              u.Gender,
		MaritalStatus:       u.MaritalStatus,
		Phone:               u.Phone,
		AddressStreet:       u.AddressStreet,
		AddressNumber:       u.AddressNumber,
		AddressComplement:   u.AddressComplement,
		AddressNeighborhood: u.AddressNeighborhood,
		AddressCity:         u.AddressCity,
		AddressState:        u.AddressState,
		AddressZipCode:      u.AddressZipCode,
		Photo:               PhotoURL(baseURL, u.Photo),
		ProfileID:           u.ProfileID,
		CreatedAt:           FormatDateBR(u.CreatedAt),
		UpdatedAt:           FormatDateBR(u.UpdatedAt),
	}

	if u.Profile != nil {
		view.Profile = &ProfileRef{ID: u.Profile.ID, Name: u.Profile.Name}
	}

	return view
}
