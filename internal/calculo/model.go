package calculo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de um cálculo mensal.
const (
	StatusSucesso = "sucesso"
	StatusErro    = "erro"
)

// CalculoMensal é o fechamento do banco de horas de uma empresa em um mês.
// Uma linha lógica por (empresa, mes, ano); nunca apagada, apenas
// sobrescrita — e toda sobrescrita é precedida de um snapshot em Versao.
type CalculoMensal struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	EmpresaID uint `gorm:"not null;uniqueIndex:idx_calculo_empresa_mes" json:"empresaId"`
	Mes       int  `gorm:"not null;uniqueIndex:idx_calculo_empresa_mes" json:"mes"`
	Ano       int  `gorm:"not null;uniqueIndex:idx_calculo_empresa_mes" json:"ano"`

	HorasConsumidas           decimal.Decimal `gorm:"type:decimal(10,2)" json:"horasConsumidas"`
	TicketsConsumidos         int             `json:"ticketsConsumidos"`
	BaselineAplicado          decimal.Decimal `gorm:"type:decimal(10,2)" json:"baselineAplicado"`
	PercentualRepasseAplicado decimal.Decimal `gorm:"type:decimal(5,2)" json:"percentualRepasseAplicado"`
	ReajusteAplicado          decimal.Decimal `gorm:"type:decimal(10,2)" json:"reajusteAplicado"`
	SaldoAnterior             decimal.Decimal `gorm:"type:decimal(10,2)" json:"saldoAnterior"`
	Saldo                     decimal.Decimal `gorm:"type:decimal(10,2)" json:"saldo"`
	ExcedenteHoras            decimal.Decimal `gorm:"type:decimal(10,2)" json:"excedenteHoras"`
	ExcedenteValor            decimal.Decimal `gorm:"type:decimal(12,2)" json:"excedenteValor"`

	// Apontamentos com mês de cobrança definido mas ainda não enviados.
	// Informativo: não entram no consumo.
	HorasEmDesenvolvimento   decimal.Decimal `gorm:"type:decimal(10,2)" json:"horasEmDesenvolvimento"`
	TicketsEmDesenvolvimento int             `json:"ticketsEmDesenvolvimento"`

	Status       string `gorm:"size:20;not null" json:"status"`
	MensagemErro string `gorm:"size:1000" json:"mensagemErro,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ErroCalculo identifica a falha de cálculo de um mês com contexto suficiente
// para nova tentativa manual. A linha anterior do mês permanece intacta.
type ErroCalculo struct {
	EmpresaID uint
	Mes       int
	Ano       int
	Causa     error
}

func (e *ErroCalculo) Error() string {
	return fmt.Sprintf("erro ao calcular banco de horas da empresa %d em %02d/%d: %v", e.EmpresaID, e.Mes, e.Ano, e.Causa)
}

func (e *ErroCalculo) Unwrap() error {
	return e.Causa
}
