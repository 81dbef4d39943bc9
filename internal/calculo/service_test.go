package calculo_test

import (
	"context"
	"testing"
	"time"

	"github.com/NexusGestao/api-bancohoras/internal/calculo"
	"github.com/NexusGestao/api-bancohoras/internal/empresa"
	"github.com/NexusGestao/api-bancohoras/internal/notificacao"
	"github.com/NexusGestao/api-bancohoras/internal/reajuste"
	"github.com/NexusGestao/api-bancohoras/internal/requerimento"
	"github.com/NexusGestao/api-bancohoras/internal/versao"
	"github.com/NexusGestao/api-bancohoras/internal/vigencia"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ambiente struct {
	db            *gorm.DB
	svc           *calculo.Service
	eventos       *notificacao.EntregadorMemoria
	empresas      *empresa.Repository
	vigencias     *vigencia.Repository
	requerimentos *requerimento.Repository
	reajustes     *reajuste.Repository
	calculos      *calculo.Repository
	versoes       *versao.Repository
}

func novoAmbiente(t *testing.T) *ambiente {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&empresa.Empresa{},
		&vigencia.VigenciaBaseline{},
		&vigencia.VigenciaRepasse{},
		&requerimento.Requerimento{},
		&reajuste.Reajuste{},
		&calculo.CalculoMensal{},
		&versao.Versao{},
	))

	eventos := &notificacao.EntregadorMemoria{}
	amb := &ambiente{
		db:            db,
		eventos:       eventos,
		empresas:      empresa.NewRepository(db),
		vigencias:     vigencia.NewRepository(db),
		requerimentos: requerimento.NewRepository(db),
		reajustes:     reajuste.NewRepository(db),
		calculos:      calculo.NewRepository(db),
		versoes:       versao.NewRepository(db),
	}
	amb.svc = calculo.NewService(amb.calculos, amb.empresas, amb.vigencias,
		amb.requerimentos, amb.reajustes, amb.versoes, notificacao.NovoEmissor(eventos))
	// Relógio fixo em 15/04/2024 para faixas "até o mês corrente" determinísticas.
	amb.svc.Agora = func() time.Time {
		return time.Date(2024, time.April, 15, 12, 0, 0, 0, time.UTC)
	}
	return amb
}

func (a *ambiente) novaEmpresa(t *testing.T, valorHoraTicket int64) *empresa.Empresa {
	e := &empresa.Empresa{
		Nome:            "Cliente Exemplo",
		CNPJ:            "11222333000144",
		TipoFaturamento: "mensal",
		ValorHoraTicket: decimal.NewFromInt(valorHoraTicket),
		Ativo:           true,
	}
	require.NoError(t, a.empresas.Create(context.Background(), e))
	return e
}

func (a *ambiente) novaBaseline(t *testing.T, empresaID uint, horas int64, inicio time.Time) {
	v := vigencia.VigenciaBaseline{
		EmpresaID:     empresaID,
		BaselineHoras: decimal.NewFromInt(horas),
		DataInicio:    inicio,
		Motivo:        "contrato",
	}
	require.NoError(t, a.vigencias.CriarBaseline(context.Background(), &v))
}

func (a *ambiente) novoRepasse(t *testing.T, empresaID uint, percentual int64, inicio time.Time) {
	v := vigencia.VigenciaRepasse{
		EmpresaID:         empresaID,
		PercentualRepasse: decimal.NewFromInt(percentual),
		DataInicio:        inicio,
		Motivo:            "contrato",
	}
	require.NoError(t, a.vigencias.CriarRepasse(context.Background(), &v))
}

func (a *ambiente) consumo(t *testing.T, empresaID uint, mes, ano int, horas string) {
	agora := time.Date(ano, time.Month(mes), 10, 0, 0, 0, 0, time.UTC)
	req := requerimento.Requerimento{
		EmpresaID:   empresaID,
		Titulo:      "chamado",
		Horas:       decimal.RequireFromString(horas),
		MesCobranca: mes,
		AnoCobranca: ano,
		Enviado:     true,
		DataEnvio:   &agora,
	}
	require.NoError(t, a.requerimentos.Create(context.Background(), &req))
}

func inicioDe2024() time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func TestCalcularMes_PrimeiroMesSemAnterior(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	emp := amb.novaEmpresa(t, 150)
	amb.novaBaseline(t, emp.ID, 100, inicioDe2024())
	amb.novoRepasse(t, emp.ID, 10, inicioDe2024())
	amb.consumo(t, emp.ID, 1, 2024, "90")

	calc, err := amb.svc.CalcularMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, err)

	assert.True(t, calc.SaldoAnterior.IsZero(), "primeiro mês não carrega saldo")
	assert.True(t, calc.Saldo.Equal(decimal.NewFromInt(10)), "saldo = 0 + 100 - 90, obtido %s", calc.Saldo)
	assert.True(t, calc.ExcedenteHoras.IsZero())
	assert.Equal(t, calculo.StatusSucesso, calc.Status)

	// Primeiro cálculo do mês: não havia estado a preservar.
	versoes, err := amb.versoes.ListarPorMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, err)
	assert.Empty(t, versoes)
	assert.NotEmpty(t, amb.eventos.PorTipo(notificacao.TipoCalculoSucesso))
}

func TestCalcularMes_SaldoCarregaParaFrente(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	emp := amb.novaEmpresa(t, 150)
	amb.novaBaseline(t, emp.ID, 100, inicioDe2024())
	amb.consumo(t, emp.ID, 1, 2024, "90")
	amb.consumo(t, emp.ID, 2, 2024, "105")

	_, err := amb.svc.CalcularMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, err)
	fev, err := amb.svc.CalcularMes(ctx, emp.ID, 2, 2024)
	require.NoError(t, err)

	assert.True(t, fev.SaldoAnterior.Equal(decimal.NewFromInt(10)))
	assert.True(t, fev.Saldo.Equal(decimal.NewFromInt(5)), "saldo = 10 + 100 - 105, obtido %s", fev.Saldo)
}

func TestCalcularMes_RecalculoIdempotente(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	emp := amb.novaEmpresa(t, 150)
	amb.novaBaseline(t, emp.ID, 100, inicioDe2024())
	amb.consumo(t, emp.ID, 1, 2024, "90")

	primeiro, err := amb.svc.CalcularMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, err)
	segundo, err := amb.svc.CalcularMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, err)

	assert.True(t, primeiro.Saldo.Equal(segundo.Saldo))
	assert.True(t, primeiro.ExcedenteHoras.Equal(segundo.ExcedenteHoras))
	assert.True(t, primeiro.ExcedenteValor.Equal(segundo.ExcedenteValor))

	// A sobrescrita gera snapshot, mas sem nenhuma mudança de dado a diferença é vazia.
	versoes, err := amb.versoes.ListarPorMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, err)
	require.Len(t, versoes, 1)
	diff := versao.Comparar(&versoes[0], versaoDe(segundo))
	assert.Empty(t, diff.CamposModificados)
}

func TestCalcularMes_ExcedenteViraTicketsFaturaveis(t *testing.T) {
	// Baseline 100h, consumo 130h, sem saldo anterior nem reajustes:
	// saldo -30, excedente 30h ao valor-hora de 150.
	amb := novoAmbiente(t)
	ctx := context.Background()
	emp := amb.novaEmpresa(t, 150)
	amb.novaBaseline(t, emp.ID, 100, inicioDe2024())
	amb.consumo(t, emp.ID, 1, 2024, "130")

	calc, err := amb.svc.CalcularMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, err)

	assert.True(t, calc.Saldo.Equal(decimal.NewFromInt(-30)), "saldo obtido %s", calc.Saldo)
	assert.True(t, calc.ExcedenteHoras.Equal(decimal.NewFromInt(30)))
	assert.True(t, calc.ExcedenteValor.Equal(decimal.NewFromInt(4500)), "30h x R$150, obtido %s", calc.ExcedenteValor)

	negativos := amb.eventos.PorTipo(notificacao.TipoSaldoNegativo)
	require.Len(t, negativos, 1)
	excedentes := amb.eventos.PorTipo(notificacao.TipoExcedenteGerado)
	require.Len(t, excedentes, 1)
	assert.Contains(t, excedentes[0].Mensagem, "30:00")
	assert.Contains(t, excedentes[0].Mensagem, "4500.00")
}

func TestCalcularMes_TaxaAusenteNaoEhFatal(t *testing.T) {
	// Sem vigência alguma o cálculo segue com baseline zero,
	// sempre produzindo resultado visível.
	amb := novoAmbiente(t)
	ctx := context.Background()
	emp := amb.novaEmpresa(t, 150)
	amb.consumo(t, emp.ID, 1, 2024, "40")

	calc, err := amb.svc.CalcularMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, err)

	assert.True(t, calc.BaselineAplicado.IsZero())
	assert.True(t, calc.Saldo.Equal(decimal.NewFromInt(-40)))
	assert.Equal(t, calculo.StatusSucesso, calc.Status)

	avisos := amb.eventos.PorTipo(notificacao.TipoTaxaAusente)
	assert.Len(t, avisos, 2, "um aviso para baseline, outro para repasse")
}

func TestCalcularMes_VigenciaAmbiguaAbortaSemEscrever(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	emp := amb.novaEmpresa(t, 150)
	// Sobreposição inserida direto no banco, contornando a validação do repositório.
	require.NoError(t, amb.db.Create(&vigencia.VigenciaBaseline{
		EmpresaID: emp.ID, BaselineHoras: decimal.NewFromInt(100), DataInicio: inicioDe2024(),
	}).Error)
	require.NoError(t, amb.db.Create(&vigencia.VigenciaBaseline{
		EmpresaID: emp.ID, BaselineHoras: decimal.NewFromInt(120), DataInicio: inicioDe2024(),
	}).Error)

	_, err := amb.svc.CalcularMes(ctx, emp.ID, 1, 2024)
	require.Error(t, err)

	var erroCalc *calculo.ErroCalculo
	require.ErrorAs(t, err, &erroCalc)
	assert.Equal(t, emp.ID, erroCalc.EmpresaID)
	assert.ErrorIs(t, err, vigencia.ErrVigenciaAmbigua)

	existente, buscaErr := amb.calculos.BuscarPorMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, buscaErr)
	assert.Nil(t, existente, "nenhuma linha é escrita quando o cálculo falha")
	assert.NotEmpty(t, amb.eventos.PorTipo(notificacao.TipoCalculoErro))
}

func TestCalcularMes_FalhaPreservaEstadoAnterior(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	emp := amb.novaEmpresa(t, 150)
	amb.novaBaseline(t, emp.ID, 100, inicioDe2024())
	amb.consumo(t, emp.ID, 1, 2024, "90")

	antes, err := amb.svc.CalcularMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, err)

	// Vigência sobreposta entra depois do primeiro fechamento.
	require.NoError(t, amb.db.Create(&vigencia.VigenciaBaseline{
		EmpresaID: emp.ID, BaselineHoras: decimal.NewFromInt(120), DataInicio: inicioDe2024(),
	}).Error)

	_, err = amb.svc.CalcularMes(ctx, emp.ID, 1, 2024)
	require.Error(t, err)

	depois, err := amb.calculos.BuscarPorMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, err)
	require.NotNil(t, depois)
	assert.True(t, depois.Saldo.Equal(antes.Saldo), "linha anterior intacta após falha")

	versoes, err := amb.versoes.ListarPorMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, err)
	assert.Empty(t, versoes, "falha não gera snapshot")
}

func TestVersoes_LogAppendOnly(t *testing.T) {
	// N recálculos do mesmo mês deixam exatamente N-1 versões,
	// cada uma com o estado imediatamente anterior à sobrescrita.
	amb := novoAmbiente(t)
	ctx := context.Background()
	emp := amb.novaEmpresa(t, 150)
	amb.novaBaseline(t, emp.ID, 100, inicioDe2024())
	amb.consumo(t, emp.ID, 1, 2024, "90")

	const n = 4
	for i := 0; i < n; i++ {
		_, err := amb.svc.CalcularMes(ctx, emp.ID, 1, 2024)
		require.NoError(t, err)
	}

	versoes, err := amb.versoes.ListarPorMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, err)
	require.Len(t, versoes, n-1)
	for _, v := range versoes {
		assert.True(t, v.Saldo.Equal(decimal.NewFromInt(10)))
	}
}

func TestCalcularMes_RequerimentoNaoEnviadoFicaEmDesenvolvimento(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	emp := amb.novaEmpresa(t, 150)
	amb.novaBaseline(t, emp.ID, 100, inicioDe2024())
	amb.consumo(t, emp.ID, 1, 2024, "60")

	// Apontado para janeiro mas ainda não enviado: não consome saldo.
	pendente := requerimento.Requerimento{
		EmpresaID:   emp.ID,
		Titulo:      "em desenvolvimento",
		Horas:       decimal.NewFromInt(25),
		MesCobranca: 1,
		AnoCobranca: 2024,
	}
	require.NoError(t, amb.requerimentos.Create(ctx, &pendente))

	calc, err := amb.svc.CalcularMes(ctx, emp.ID, 1, 2024)
	require.NoError(t, err)

	assert.True(t, calc.HorasConsumidas.Equal(decimal.NewFromInt(60)))
	assert.True(t, calc.Saldo.Equal(decimal.NewFromInt(40)))
	assert.True(t, calc.HorasEmDesenvolvimento.Equal(decimal.NewFromInt(25)))
}

func TestRecalcularPeriodo_ContagemDeMeses(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	emp := amb.novaEmpresa(t, 150)
	amb.novaBaseline(t, emp.ID, 100, inicioDe2024())

	recalculados, esperados, err := amb.svc.RecalcularPeriodo(ctx, emp.ID, 1, 2024, 4, 2024)
	require.NoError(t, err)
	assert.Equal(t, 4, esperados)
	assert.Equal(t, 4, recalculados)

	// Faixa invertida recalcula apenas o mês inicial.
	recalculados, esperados, err = amb.svc.RecalcularPeriodo(ctx, emp.ID, 6, 2024, 1, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, esperados)
	assert.Equal(t, 1, recalculados)
}

func TestCalcularMes_AvisaFimDePeriodoProximo(t *testing.T) {
	amb := novoAmbiente(t)
	ctx := context.Background()
	emp := amb.novaEmpresa(t, 150)
	amb.novaBaseline(t, emp.ID, 100, inicioDe2024())
	// Nova vigência a partir de maio fecha a anterior em 01/05;
	// com o relógio em 15/04 faltam menos de 30 dias.
	amb.novaBaseline(t, emp.ID, 120, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))

	_, err := amb.svc.CalcularMes(ctx, emp.ID, 4, 2024)
	require.NoError(t, err)
	assert.NotEmpty(t, amb.eventos.PorTipo(notificacao.TipoFimPeriodoProximo))
}

// versaoDe espelha o estado corrente do cálculo no formato de versão,
// para comparação campo a campo nos testes.
func versaoDe(c *calculo.CalculoMensal) *versao.Versao {
	return &versao.Versao{
		CalculoID:                 c.ID,
		EmpresaID:                 c.EmpresaID,
		Mes:                       c.Mes,
		Ano:                       c.Ano,
		HorasConsumidas:           c.HorasConsumidas,
		TicketsConsumidos:         c.TicketsConsumidos,
		BaselineAplicado:          c.BaselineAplicado,
		PercentualRepasseAplicado: c.PercentualRepasseAplicado,
		ReajusteAplicado:          c.ReajusteAplicado,
		SaldoAnterior:             c.SaldoAnterior,
		Saldo:                     c.Saldo,
		ExcedenteHoras:            c.ExcedenteHoras,
		ExcedenteValor:            c.ExcedenteValor,
		Status:                    c.Status,
	}
}
