package vigencia_test

import (
	"testing"
	"time"

	"github.com/NexusGestao/api-bancohoras/internal/vigencia"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func baselineVigencia(empresaID uint, horas int64, inicio time.Time, fim *time.Time) vigencia.VigenciaBaseline {
	return vigencia.VigenciaBaseline{
		EmpresaID:     empresaID,
		BaselineHoras: decimal.NewFromInt(horas),
		DataInicio:    inicio,
		DataFim:       fim,
	}
}

func TestResolverVigente_SelecionaPorIntervalo(t *testing.T) {
	// Histórico: baseline 100 de jan a jun/2024, baseline 150 aberta a partir de jul.
	fimPrimeira := dia(2024, time.July, 1)
	historico := []vigencia.VigenciaBaseline{
		baselineVigencia(1, 100, dia(2024, time.January, 1), &fimPrimeira),
		baselineVigencia(1, 150, dia(2024, time.July, 1), nil),
	}

	v, err := vigencia.ResolverVigente(historico, dia(2024, time.May, 15))
	require.NoError(t, err)
	assert.True(t, v.BaselineHoras.Equal(decimal.NewFromInt(100)), "maio cai na primeira vigência")

	v, err = vigencia.ResolverVigente(historico, dia(2024, time.August, 1))
	require.NoError(t, err)
	assert.True(t, v.BaselineHoras.Equal(decimal.NewFromInt(150)), "agosto cai na vigência aberta")

	_, err = vigencia.ResolverVigente(historico, dia(2023, time.December, 31))
	assert.ErrorIs(t, err, vigencia.ErrVigenciaNaoEncontrada, "antes do histórico não há vigência")
}

func TestResolverVigente_LimiteDeTroca(t *testing.T) {
	// data_fim é exclusivo: no dia da troca vale a vigência nova.
	fimPrimeira := dia(2024, time.July, 1)
	historico := []vigencia.VigenciaBaseline{
		baselineVigencia(1, 100, dia(2024, time.January, 1), &fimPrimeira),
		baselineVigencia(1, 150, dia(2024, time.July, 1), nil),
	}

	v, err := vigencia.ResolverVigente(historico, dia(2024, time.July, 1))
	require.NoError(t, err)
	assert.True(t, v.BaselineHoras.Equal(decimal.NewFromInt(150)))

	v, err = vigencia.ResolverVigente(historico, dia(2024, time.June, 30))
	require.NoError(t, err)
	assert.True(t, v.BaselineHoras.Equal(decimal.NewFromInt(100)))
}

func TestResolverVigente_SobreposicaoEhAmbigua(t *testing.T) {
	// Invariante violado a montante: duas vigências cobrem a mesma data.
	// A resolução não escolhe uma em silêncio.
	historico := []vigencia.VigenciaBaseline{
		baselineVigencia(1, 100, dia(2024, time.January, 1), nil),
		baselineVigencia(1, 150, dia(2024, time.March, 1), nil),
	}

	_, err := vigencia.ResolverVigente(historico, dia(2024, time.April, 10))
	assert.ErrorIs(t, err, vigencia.ErrVigenciaAmbigua)
}

func TestResolverVigente_HistoricoVazio(t *testing.T) {
	_, err := vigencia.ResolverVigente([]vigencia.VigenciaBaseline{}, dia(2024, time.January, 1))
	assert.ErrorIs(t, err, vigencia.ErrVigenciaNaoEncontrada)
}
