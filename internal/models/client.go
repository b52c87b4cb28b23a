package models

import "time"

// Ficha completa do paciente: dados pessoais, contato, endereço,
// anamnese e histórico estético
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Informações pessoais
	FullName      string `gorm:"size:255;not null" json:"full_name"`
	BirthDate     string `gorm:"size:10;not null" json:"birth_date"`
	Gender        string `gorm:"size:20;not null" json:"gender"`
	MaritalStatus string `gorm:"size:50" json:"marital_status"`
	CPF           string `gorm:"size:20;uniqueIndex;not null" json:"cpf"`
	RG            string `gorm:"size:30" json:"rg"`
	Profession    string `gorm:"size:100" json:"profession"`
	Nationality   string `gorm:"size:50" json:"nationality"`
	PlaceOfBirth  string `gorm:"size:100" json:"place_of_birth"`

	// Contato
	Phone    string `gorm:"size:20;not null" json:"phone"`
	Landline string `gorm:"size:20" json:"landline"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Whatsapp string `gorm:"size:20" json:"whatsapp"`

	// Endereço
	ZipCode      string `gorm:"size:10;not null" json:"zip_code"`
	Address      string `gorm:"size:255;not null" json:"address"`
	Number       string `gorm:"size:20;not null" json:"number"`
	Complement   string `gorm:"size:100" json:"complement"`
	Neighborhood string `gorm:"size:100;not null" json:"neighborhood"`
	City         string `gorm:"size:100;not null" json:"city"`
	State        string `gorm:"size:2;not null" json:"state"`

	// Informações de saúde
	Weight                  *float64 `json:"weight"`
	Height                  *float64 `json:"height"`
	ChronicDiseases         string   `gorm:"type:text" json:"chronic_diseases"`
	Allergies               string   `gorm:"type:text" json:"allergies"`
	Medications             string   `gorm:"type:text" json:"medications"`
	PreviousSurgeries       string   `gorm:"type:text" json:"previous_surgeries"`
	FamilyHistory           string   `gorm:"type:text" json:"family_history"`
	PregnantOrBreastfeeding *bool    `json:"pregnant_or_breastfeeding"`
	UsesBirthControl        *bool    `json:"uses_birth_control"`
	Lifestyle               string   `gorm:"type:text" json:"lifestyle"`
	MainComplaint           string   `gorm:"type:text" json:"main_complaint"`

	// Informações estéticas
	SkinType       string `gorm:"size:50" json:"skin_type"`
	HairType       string `gorm:"size:50" json:"hair_type"`
	TreatmentAreas string `gorm:"type:text" json:"treatment_areas"`
	AestheticGoals string `gorm:"type:text" json:"aesthetic_goals"`
	BeforePhoto    string `gorm:"size:255" json:"before_photo"`

	// Administrativo
	Notes              string `gorm:"type:text" json:"notes"`
	ConsentToTreatment *bool  `json:"consent_to_treatment"`
	AcceptsPromotions  bool   `gorm:"default:false" json:"accepts_promotions"`
	Status             string `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
