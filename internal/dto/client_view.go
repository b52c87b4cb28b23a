package dto

import "github.com/estetify/clinic-admin/internal/models"

type ClientView struct {
	ID uint `json:"id"`

	FullName      string `json:"full_name"`
	BirthDate     string `json:"birth_date"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"marital_status"`
	CPF           string `json:"cpf"`
	RG            string `json:"rg"`
	Profession    string `json:"profession"`
	Nationality   string `json:"nationality"`
	PlaceOfBirth  string `json:"place_of_birth"`

	Phone    string `json:"phone"`
	Landline string `json:"landline"`
	Email    string `json:"email"`
	Whatsapp string `json:"whatsapp"`

	ZipCode      string `json:"zip_code"`
	Address      string `json:"address"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`

	Weight                  *float64 `json:"weight"`
	Height                  *float64 `json:"height"`
	ChronicDiseases         string   `json:"chronic_diseases"`
	Allergies               string   `json:"allergies"`
	Medications             string   `json:"medications"`
	PreviousSurgeries       string   `json:"previous_surgeries"`
	FamilyHistory           string   `json:"family_history"`
	PregnantOrBreastfeeding *bool    `json:"pregnant_or_breastfeeding"`
	UsesBirthControl        *bool    `json:"uses_birth_control"`
	Lifestyle               string   `json:"lifestyle"`
	MainComplaint           string   `json:"main_complaint"`

	SkinType       string  `json:"skin_type"`
	HairType       string  `json:"hair_type"`
	TreatmentAreas string  `json:"treatment_areas"`
	AestheticGoals string  `json:"aesthetic_goals"`
	BeforePhoto    *string `json:"before_photo"`

	Notes              string `json:"notes"`
	ConsentToTreatment *bool  `json:"consent_to_treatment"`
	AcceptsPromotions  bool   `json:"accepts_promotions"`

	// Status traduzido para exibição (Ativo/Inativo)
	Status string `json:"status"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func NewClientView(c models.Client, baseURL string) ClientView {
	return ClientView{
		ID:                      c.ID,
		FullName:                c.FullName,
		BirthDate:               c.BirthDate,
		Gender:                  c.Gender,
		MaritalStatus:           c.MaritalStatus,
		CPF:                     c.CPF,
		RG:                      c.RG,
		Profession:              c.Profession,
		Nationality:             c.Nationality,
		PlaceOfBirth:            c.PlaceOfBirth,
		Phone:                   c.Phone,
		Landline:                c.Landline,
		Email:                   c.Email,
		Whatsapp:                c.Whatsapp,
		ZipCode:                 c.ZipCode,
		Address:                 c.Address,
		Number:                  c.Number,
		Complement:              c.Complement,
		Neighborhood:            c.Neighborhood,
		City:                    c.City,
		State:                   c.State,
		Weight:                  c.Weight,
		Height:                  c.Height,
		ChronicDiseases:         c.ChronicDiseases,
		Allergies:               c.Allergies,
		Medications:             c.Medications,
		PreviousSurgeries:       c.PreviousSurgeries,
		FamilyHistory:           c.FamilyHistory,
		PregnantOrBreastfeeding: c.PregnantOrBreastfeeding,
		UsesBirthControl:        c.UsesBirthControl,
		Lifestyle:               c.Lifestyle,
		MainComplaint:           c.MainComplaint,
		SkinType:                c.SkinType,
		HairType:                c.HairType,
		TreatmentAreas:          c.TreatmentAreas,
		AestheticGoals:          c.AestheticGoals,
		BeforePhoto:             PhotoURL(baseURL, c.BeforePhoto),
		Notes:                   c.Notes,
		ConsentToTreatment:      c.ConsentToTreatment,
		AcceptsPromotions:       c.AcceptsPromotions,
		Status:                  ClientStatusLabel(c.Status),
		CreatedAt:               FormatDateBR(c.CreatedAt),
		UpdatedAt:               FormatDateBR(c.UpdatedAt),
	}
}
