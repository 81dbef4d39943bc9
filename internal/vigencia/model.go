package vigencia

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrVigenciaNaoEncontrada indica que nenhuma vigência cobre a data de referência.
	// O chamador deve tratar o período como sem taxa definida, não como falha fatal.
	ErrVigenciaNaoEncontrada = errors.New("nenhuma vigência encontrada para a data de referência")
	// ErrVigenciaAmbigua indica sobreposição de vigências no histórico.
	// Invariante violado a montante; a resolução nunca escolhe uma em silêncio.
	ErrVigenciaAmbigua = errors.New("mais de uma vigência cobre a data de referência")
	// ErrVigenciaSobreposta indica tentativa de criar vigência que intersecta o histórico.
	ErrVigenciaSobreposta = errors.New("vigência sobrepõe período já existente")
)

// VigenciaBaseline registra o baseline contratado de uma empresa durante
// o intervalo [data_inicio, data_fim). Registros fechados são imutáveis;
// no máximo um registro por empresa fica aberto (data_fim nula).
type VigenciaBaseline struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	EmpresaID       uint            `gorm:"not null;index" json:"empresaId"`
	BaselineHoras   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"baselineHoras"`
	BaselineTickets int             `gorm:"not null;default:0" json:"baselineTickets"`
	DataInicio      time.Time       `gorm:"not null;index" json:"dataInicio"`
	DataFim         *time.Time      `json:"dataFim,omitempty"`
	Motivo          string          `gorm:"size:255" json:"motivo"`
	Observacao      string          `gorm:"size:1000" json:"observacao"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Periodo devolve o intervalo de efetividade da vigência.
func (v VigenciaBaseline) Periodo() (time.Time, *time.Time) {
	return v.DataInicio, v.DataFim
}

// VigenciaRepasse registra o percentual de repasse vigente, com o mesmo
// ciclo de vida e invariante de não-sobreposição do baseline.
type VigenciaRepasse struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	EmpresaID         uint            `gorm:"not null;index" json:"empresaId"`
	PercentualRepasse decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentualRepasse"`
	DataInicio        time.Time       `gorm:"not null;index" json:"dataInicio"`
	DataFim           *time.Time      `json:"dataFim,omitempty"`
	Motivo            string          `gorm:"size:255" json:"motivo"`
	Observacao        string          `gorm:"size:1000" json:"observacao"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// Periodo devolve o intervalo de efetividade da vigência.
func (v VigenciaRepasse) Periodo() (time.Time, *time.Time) {
	return v.DataInicio, v.DataFim
}
