package versao

import (
	"time"

	"github.com/shopspring/decimal"
)

// Versao é a fotografia imutável de um cálculo mensal tirada imediatamente
// antes de ele ser sobrescrito. Log append-only por calculo_id: nenhuma
// componente atualiza ou remove uma versão depois de criada.
type Versao struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CalculoID uint `gorm:"not null;index" json:"calculoId"`
	EmpresaID uint `gorm:"not null;index" json:"empresaId"`
	Mes       int  `gorm:"not null" json:"mes"`
	Ano       int  `gorm:"not null" json:"ano"`

	HorasConsumidas           decimal.Decimal `gorm:"type:decimal(10,2)" json:"horasConsumidas"`
	TicketsConsumidos         int             `json:"ticketsConsumidos"`
	BaselineAplicado          decimal.Decimal `gorm:"type:decimal(10,2)" json:"baselineAplicado"`
	PercentualRepasseAplicado decimal.Decimal `gorm:"type:decimal(5,2)" json:"percentualRepasseAplicado"`
	ReajusteAplicado          decimal.Decimal `gorm:"type:decimal(10,2)" json:"reajusteAplicado"`
	SaldoAnterior             decimal.Decimal `gorm:"type:decimal(10,2)" json:"saldoAnterior"`
	Saldo                     decimal.Decimal `gorm:"type:decimal(10,2)" json:"saldo"`
	ExcedenteHoras            decimal.Decimal `gorm:"type:decimal(10,2)" json:"excedenteHoras"`
	ExcedenteValor            decimal.Decimal `gorm:"type:decimal(12,2)" json:"excedenteValor"`
	Status                    string          `gorm:"size:20" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}
