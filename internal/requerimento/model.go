package requerimento

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Requerimento é um chamado/desenvolvimento apontado contra o banco de horas
// de uma empresa. O mês de cobrança define em qual cálculo as horas entram;
// enquanto não marcado como enviado, o apontamento aparece apenas como
// "em desenvolvimento" e não consome saldo.
type Requerimento struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	EmpresaID   uint            `gorm:"not null;index" json:"empresaId"`
	Titulo      string          `gorm:"size:255;not null" json:"titulo"`
	Horas       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"horas"`
	Tickets     int             `gorm:"not null;default:0" json:"tickets"`
	MesCobranca int             `gorm:"not null;index" json:"mesCobranca"`
	AnoCobranca int             `gorm:"not null;index" json:"anoCobranca"`
	Enviado     bool            `gorm:"not null;default:false" json:"enviado"`
	DataEnvio   *time.Time      `json:"dataEnvio,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}
