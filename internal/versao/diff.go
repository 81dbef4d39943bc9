package versao

import "github.com/shopspring/decimal"

// CampoModificado descreve uma diferença de valor entre duas versões.
type CampoModificado struct {
	Campo       string `json:"campo"`
	ValorAntigo string `json:"valorAntigo"`
	ValorNovo   string `json:"valorNovo"`
}

// Diferencas é o resultado da comparação campo a campo de duas versões.
// Derivado, nunca persistido.
type Diferencas struct {
	CamposModificados []CampoModificado `json:"camposModificados"`
}

// Comparar compara as duas versões sobre os campos rastreados do cálculo
// e devolve apenas os que diferem. Decimais comparados por valor
// (100 e 100.00 são iguais), nunca por representação.
func Comparar(de, para *Versao) Diferencas {
	var diff Diferencas

	compararDecimal := func(campo string, antigo, novo decimal.Decimal) {
		if !antigo.Equal(novo) {
			diff.CamposModificados = append(diff.CamposModificados, CampoModificado{
				Campo:       campo,
				ValorAntigo: antigo.String(),
				ValorNovo:   novo.String(),
			})
		}
	}

	compararDecimal("saldo", de.Saldo, para.Saldo)
	compararDecimal("baseline_aplicado", de.BaselineAplicado, para.BaselineAplicado)
	compararDecimal("horas_consumidas", de.HorasConsumidas, para.HorasConsumidas)
	compararDecimal("excedente_horas", de.ExcedenteHoras, para.ExcedenteHoras)
	compararDecimal("excedente_valor", de.ExcedenteValor, para.ExcedenteValor)
	compararDecimal("reajuste_aplicado", de.ReajusteAplicado, para.ReajusteAplicado)
	compararDecimal("saldo_anterior", de.SaldoAnterior, para.SaldoAnterior)
	if de.Status != para.Status {
		diff.CamposModificados = append(diff.CamposModificados, CampoModificado{
			Campo:       "status",
			ValorAntigo: de.Status,
			ValorNovo:   para.Status,
		})
	}
	return diff
}
