package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	CPF   string `gorm:"size:20;uniqueIndex;not null" json:"cpf"`
	RG    string `gorm:"size:20" json:"rg"`

	BirthDate     string `gorm:"size:10" json:"birth_date"`
	Gender        string `gorm:"size:20" json:"gender"`
	MaritalStatus string `gorm:"size:50" json:"marital_status"`
	Phone         string `gorm:"size:20" json:"phone"`

	AddressStreet       string `gorm:"size:255" json:"address_street"`
	AddressNumber       string `gorm:"size:20" json:"address_number"`
	AddressComplement   string `gorm:"size:255" json:"address_complement"`
	AddressNeighborhood string `gorm:"size:255" json:"address_neighborhood"`
	AddressCity         string `gorm:"size:255" json:"address_city"`
	AddressState        string `gorm:"size:255" json:"address_state"`
	AddressZipCode      string `gorm:"size:20" json:"address_zip_code"`

	Password string `gorm:"size:255;not null" json:"-"`
	Photo    string `gorm:"size:255" json:"photo"`

	ProfileID uint     `json:"profile_id"`
	Profile   *Profile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"profile,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
