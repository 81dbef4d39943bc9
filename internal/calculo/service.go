package calculo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/NexusGestao/api-bancohoras/internal/empresa"
	"github.com/NexusGestao/api-bancohoras/internal/notificacao"
	"github.com/NexusGestao/api-bancohoras/internal/versao"
	"github.com/NexusGestao/api-bancohoras/internal/vigencia"
	"github.com/shopspring/decimal"
)

// FonteConsumo fornece o consumo apontado contra o banco de horas do mês.
type FonteConsumo interface {
	BuscarConsumo(ctx context.Context, empresaID uint, mes, ano int) (horas decimal.Decimal, tickets int, err error)
	BuscarEmDesenvolvimento(ctx context.Context, empresaID uint, mes, ano int) (horas decimal.Decimal, tickets int, err error)
}

// FonteReajustes fornece o delta líquido dos reajustes ativos do mês.
type FonteReajustes interface {
	SaldoAtivosDoMes(ctx context.Context, empresaID uint, mes, ano int) (decimal.Decimal, error)
}

// Service é a calculadora mensal do banco de horas. O recálculo de uma
// empresa é serializado por mutex próprio: o saldo carrega de um mês para o
// outro e duas cascatas intercaladas corromperiam a cadeia.
type Service struct {
	Repo      *Repository
	Empresas  *empresa.Repository
	Vigencias *vigencia.Repository
	Consumo   FonteConsumo
	Reajustes FonteReajustes
	Versoes   *versao.Repository
	Emissor   *notificacao.Emissor

	// Agora permite fixar o relógio nos testes.
	Agora func() time.Time

	mu     sync.Mutex
	travas map[uint]*sync.Mutex
}

// NewService monta a calculadora com todas as dependências.
func NewService(repo *Repository, empresas *empresa.Repository, vigencias *vigencia.Repository,
	consumo FonteConsumo, reajustes FonteReajustes, versoes *versao.Repository,
	emissor *notificacao.Emissor) *Service {
	return &Service{
		Repo:      repo,
		Empresas:  empresas,
		Vigencias: vigencias,
		Consumo:   consumo,
		Reajustes: reajustes,
		Versoes:   versoes,
		Emissor:   emissor,
		Agora:     time.Now,
		travas:    make(map[uint]*sync.Mutex),
	}
}

func (s *Service) trava(empresaID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.travas[empresaID]
	if !ok {
		m = &sync.Mutex{}
		s.travas[empresaID] = m
	}
	return m
}

// CalcularMes recalcula o fechamento de um único mês.
func (s *Service) CalcularMes(ctx context.Context, empresaID uint, mes, ano int) (*CalculoMensal, error) {
	m := s.trava(empresaID)
	m.Lock()
	defer m.Unlock()
	return s.calcularMes(ctx, empresaID, mes, ano)
}

// RecalcularPeriodo recalcula o intervalo fechado de meses em ordem
// cronológica — o saldo carrega para frente. A cascata para no primeiro mês
// que falhar; o retorno informa quantos meses foram recalculados contra
// quantos eram esperados, para o chamador detectar cascata travada.
func (s *Service) RecalcularPeriodo(ctx context.Context, empresaID uint, deMes, deAno, ateMes, ateAno int) (recalculados, esperados int, err error) {
	if !antesOuIgual(deMes, deAno, ateMes, ateAno) {
		ateMes, ateAno = deMes, deAno
	}
	esperados = contarMeses(deMes, deAno, ateMes, ateAno)

	m := s.trava(empresaID)
	m.Lock()
	defer m.Unlock()

	mesAtual, anoAtual := deMes, deAno
	for antesOuIgual(mesAtual, anoAtual, ateMes, ateAno) {
		if _, err = s.calcularMes(ctx, empresaID, mesAtual, anoAtual); err != nil {
			return recalculados, esperados, err
		}
		recalculados++
		mesAtual, anoAtual = mesSeguinte(mesAtual, anoAtual)
	}
	return recalculados, esperados, nil
}

// RecalcularAteAtual recalcula do mês informado até o mês corrente.
func (s *Service) RecalcularAteAtual(ctx context.Context, empresaID uint, deMes, deAno int) (recalculados, esperados int, err error) {
	agora := s.Agora()
	return s.RecalcularPeriodo(ctx, empresaID, deMes, deAno, int(agora.Month()), agora.Year())
}

// calcularMes executa o fechamento com a trava da empresa já adquirida.
// Qualquer falha deixa a linha anterior do mês intacta.
func (s *Service) calcularMes(ctx context.Context, empresaID uint, mes, ano int) (*CalculoMensal, error) {
	nome := fmt.Sprintf("empresa %d", empresaID)
	emp, err := s.Empresas.FindByID(ctx, empresaID)
	if err != nil {
		return nil, s.falha(nome, empresaID, mes, ano, fmt.Errorf("empresa não encontrada: %w", err))
	}
	nome = emp.Nome

	referencia := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)

	// Baseline vigente no primeiro dia do mês. Ausência não é fatal:
	// o cálculo segue com baseline zero e o aviso de taxa ausente é emitido.
	baselines, err := s.Vigencias.ListarBaseline(ctx, empresaID)
	if err != nil {
		return nil, s.falha(nome, empresaID, mes, ano, err)
	}
	baselineHoras := decimal.Zero
	var fimBaseline *time.Time
	vb, err := vigencia.ResolverVigente(baselines, referencia)
	switch {
	case err == nil:
		baselineHoras = vb.BaselineHoras
		fimBaseline = vb.DataFim
	case errors.Is(err, vigencia.ErrVigenciaNaoEncontrada):
		s.Emissor.TaxaAusente(nome, mes, ano, "baseline")
	default:
		return nil, s.falha(nome, empresaID, mes, ano, err)
	}

	repasses, err := s.Vigencias.ListarRepasse(ctx, empresaID)
	if err != nil {
		return nil, s.falha(nome, empresaID, mes, ano, err)
	}
	percentualRepasse := decimal.Zero
	vr, err := vigencia.ResolverVigente(repasses, referencia)
	switch {
	case err == nil:
		percentualRepasse = vr.PercentualRepasse
	case errors.Is(err, vigencia.ErrVigenciaNaoEncontrada):
		s.Emissor.TaxaAusente(nome, mes, ano, "repasse")
	default:
		return nil, s.falha(nome, empresaID, mes, ano, err)
	}

	horasConsumidas, ticketsConsumidos, err := s.Consumo.BuscarConsumo(ctx, empresaID, mes, ano)
	if err != nil {
		return nil, s.falha(nome, empresaID, mes, ano, fmt.Errorf("erro ao agregar consumo: %w", err))
	}
	horasDev, ticketsDev, err := s.Consumo.BuscarEmDesenvolvimento(ctx, empresaID, mes, ano)
	if err != nil {
		return nil, s.falha(nome, empresaID, mes, ano, fmt.Errorf("erro ao agregar requerimentos em desenvolvimento: %w", err))
	}

	reajusteDelta, err := s.Reajustes.SaldoAtivosDoMes(ctx, empresaID, mes, ano)
	if err != nil {
		return nil, s.falha(nome, empresaID, mes, ano, fmt.Errorf("erro ao buscar reajustes: %w", err))
	}

	mesAnt, anoAnt := mesAnterior(mes, ano)
	anterior, err := s.Repo.BuscarPorMes(ctx, empresaID, mesAnt, anoAnt)
	if err != nil {
		return nil, s.falha(nome, empresaID, mes, ano, err)
	}
	saldoAnterior := decimal.Zero
	if anterior != nil {
		saldoAnterior = anterior.Saldo
	}

	saldo := saldoAnterior.Add(baselineHoras).Sub(horasConsumidas).Add(reajusteDelta)

	// Excedente: a parcela do consumo que o baseline mais o saldo carregado
	// não cobrem vira tickets faturáveis ao valor-hora da empresa.
	excedenteHoras := decimal.Zero
	if saldo.IsNegative() {
		excedenteHoras = saldo.Neg()
	}
	excedenteValor := excedenteHoras.Mul(emp.ValorHoraTicket)

	novo := &CalculoMensal{
		EmpresaID:                 empresaID,
		Mes:                       mes,
		Ano:                       ano,
		HorasConsumidas:           horasConsumidas,
		TicketsConsumidos:         ticketsConsumidos,
		BaselineAplicado:          baselineHoras,
		PercentualRepasseAplicado: percentualRepasse,
		ReajusteAplicado:          reajusteDelta,
		SaldoAnterior:             saldoAnterior,
		Saldo:                     saldo,
		ExcedenteHoras:            excedenteHoras,
		ExcedenteValor:            excedenteValor,
		HorasEmDesenvolvimento:    horasDev,
		TicketsEmDesenvolvimento:  ticketsDev,
		Status:                    StatusSucesso,
	}

	existente, err := s.Repo.BuscarPorMes(ctx, empresaID, mes, ano)
	if err != nil {
		return nil, s.falha(nome, empresaID, mes, ano, err)
	}
	var snap *versao.Versao
	if existente != nil {
		novo.ID = existente.ID
		novo.CreatedAt = existente.CreatedAt
		snap = snapshotDe(existente)
	}

	if err := s.Repo.SobrescreverComSnapshot(ctx, novo, snap); err != nil {
		return nil, s.falha(nome, empresaID, mes, ano, fmt.Errorf("erro ao persistir cálculo: %w", err))
	}

	if saldo.IsNegative() {
		s.Emissor.SaldoNegativo(nome, mes, ano, saldo)
	}
	if excedenteHoras.IsPositive() {
		s.Emissor.ExcedenteGerado(nome, mes, ano, excedenteHoras, excedenteValor)
	}
	if fimBaseline != nil {
		restante := fimBaseline.Sub(s.Agora())
		if restante >= 0 && restante <= 30*24*time.Hour {
			s.Emissor.FimPeriodoProximo(nome, *fimBaseline)
		}
	}
	s.Emissor.CalculoSucesso(nome, mes, ano)

	return novo, nil
}

func (s *Service) falha(nome string, empresaID uint, mes, ano int, causa error) error {
	s.Emissor.CalculoErro(nome, mes, ano, causa.Error())
	return &ErroCalculo{EmpresaID: empresaID, Mes: mes, Ano: ano, Causa: causa}
}

// snapshotDe copia o estado corrente do cálculo para uma versão imutável.
func snapshotDe(c *CalculoMensal) *versao.Versao {
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
