package empresa

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Empresa representa um cliente com contrato de suporte ativo.
// Baseline de horas e percentual de repasse não vivem aqui: são controlados
// pelo histórico de vigências e nunca editados em linha.
type Empresa struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Nome            string          `gorm:"size:255;not null" json:"nome"`
	CNPJ            string          `gorm:"size:18;uniqueIndex" json:"cnpj"`
	TipoFaturamento string          `gorm:"size:50;not null;default:'mensal'" json:"tipoFaturamento"`
	ValorHoraTicket decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"valorHoraTicket"`
	Ativo           bool            `gorm:"not null;default:true" json:"ativo"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}
