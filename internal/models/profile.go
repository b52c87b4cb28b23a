package models

import "time"

// Perfil de acesso atribuído aos usuários do sistema
type Profile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	// sem default no schema: o zero value de bool impediria criar
	// perfis inativos via gorm
	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
