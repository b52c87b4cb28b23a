package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint    `gorm:"not null" json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client,omitempty"`

	UserID uint  `gorm:"not null" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	Procedure string `gorm:"size:255;not null" json:"procedure"`
	Notes     string `gorm:"type:text" json:"notes"`

	BeforePhoto string `gorm:"size:255" json:"before_photo"`
	AfterPhoto  string `gorm:"size:255" json:"after_photo"`

	ProductsUsed StringList `gorm:"type:text" json:"products_used"`
	Price        *float64   `json:"price"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
