package reajuste

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de reajuste.
const (
	TipoPositivo = "positivo"
	TipoNegativo = "negativo"
)

var (
	// ErrValorInvalido indica reajuste com valor zerado ou negativo.
	ErrValorInvalido = errors.New("valor do reajuste deve ser maior que zero")
	// ErrTipoInvalido indica tipo fora de {positivo, negativo}.
	ErrTipoInvalido = errors.New("tipo do reajuste deve ser positivo ou negativo")
)

// Reajuste é um ajuste manual aplicado ao saldo de um mês, independente do
// consumo normal. Nunca é excluído: a desativação (ativo=false) preserva o
// histórico e permite reexecutar a cadeia de cálculos.
type Reajuste struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	EmpresaID  uint            `gorm:"not null;index" json:"empresaId"`
	Valor      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valor"`
	Tipo       string          `gorm:"size:10;not null" json:"tipo"`
	Mes        int             `gorm:"not null" json:"mes"`
	Ano        int             `gorm:"not null" json:"ano"`
	Observacao string          `gorm:"size:1000" json:"observacao"`
	Ativo      bool            `gorm:"not null;default:true" json:"ativo"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
