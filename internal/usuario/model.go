package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario é um operador do painel administrativo.
type Usuario struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Nome    string `gorm:"size:255;not null" json:"nome"`
	Email   string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Senha   string `gorm:"size:255;not null" json:"-"`
	IsAdmin bool   `gorm:"not null;default:false" json:"isAdmin"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}
