package versao_test

import (
	"testing"

	"github.com/NexusGestao/api-bancohoras/internal/versao"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func versaoBase() versao.Versao {
	return versao.Versao{
		CalculoID:        1,
		EmpresaID:        1,
		Mes:              3,
		Ano:              2024,
		HorasConsumidas:  decimal.NewFromInt(90),
		BaselineAplicado: decimal.NewFromInt(100),
		Saldo:            decimal.NewFromInt(10),
		Status:           "sucesso",
	}
}

func TestComparar_ApenasCamposAlterados(t *testing.T) {
	de := versaoBase()
	para := versaoBase()
	para.Saldo = decimal.NewFromInt(30)
	para.ReajusteAplicado = decimal.NewFromInt(20)

	diff := versao.Comparar(&de, &para)
	require.Len(t, diff.CamposModificados, 2)

	campos := map[string]versao.CampoModificado{}
	for _, c := range diff.CamposModificados {
		campos[c.Campo] = c
	}
	assert.Equal(t, "10", campos["saldo"].ValorAntigo)
	assert.Equal(t, "30", campos["saldo"].ValorNovo)
	assert.Equal(t, "0", campos["reajuste_aplicado"].ValorAntigo)
	assert.Equal(t, "20", campos["reajuste_aplicado"].ValorNovo)
}

func TestComparar_IgualdadePorValorNaoPorRepresentacao(t *testing.T) {
	de := versaoBase()
	para := versaoBase()
	// 10 e 10.00 são o mesmo valor; a representação não gera diferença.
	para.Saldo = decimal.RequireFromString("10.00")

	diff := versao.Comparar(&de, &para)
	assert.Empty(t, diff.CamposModificados)
}

func TestComparar_StatusEhRastreado(t *testing.T) {
	de := versaoBase()
	para := versaoBase()
	para.Status = "erro"

	diff := versao.Comparar(&de, &para)
	require.Len(t, diff.CamposModificados, 1)
	assert.Equal(t, "status", diff.CamposModificados[0].Campo)
	assert.Equal(t, "sucesso", diff.CamposModificados[0].ValorAntigo)
	assert.Equal(t, "erro", diff.CamposModificados[0].ValorNovo)
}
