package reajuste

import (
	"context"

	"github.com/NexusGestao/api-bancohoras/internal/calculo"
	"github.com/NexusGestao/api-bancohoras/internal/empresa"
	"github.com/NexusGestao/api-bancohoras/internal/notificacao"
	"github.com/shopspring/decimal"
)

// ResultadoCascata reporta quantos meses a cascata de recálculo cobriu.
type ResultadoCascata struct {
	MesesRecalculados int `json:"mesesRecalculados"`
	MesesEsperados    int `json:"mesesEsperados"`
}

// Manager cria e desativa reajustes. Toda mutação dispara o recálculo do mês
// afetado e de todos os meses seguintes da empresa — o saldo carrega para
// frente. A falha de um mês interrompe a cascata sem reverter o reajuste,
// que já foi persistido; o resultado informa o avanço obtido.
type Manager struct {
	Repo     *Repository
	Empresas *empresa.Repository
	Calculos *calculo.Service
	Emissor  *notificacao.Emissor
}

// NewManager cria um novo Manager
func NewManager(repo *Repository, empresas *empresa.Repository, calculos *calculo.Service, emissor *notificacao.Emissor) *Manager {
	return &Manager{Repo: repo, Empresas: empresas, Calculos: calculos, Emissor: emissor}
}

// Criar valida e insere o reajuste como ativo e recalcula de mes/ano até o
// mês corrente. A validação acontece antes de qualquer escrita.
func (m *Manager) Criar(ctx context.Context, empresaID uint, valor decimal.Decimal, tipo string, mes, ano int, observacao string) (*Reajuste, ResultadoCascata, error) {
	if !valor.IsPositive() {
		return nil, ResultadoCascata{}, ErrValorInvalido
	}
	if tipo != TipoPositivo && tipo != TipoNegativo {
		return nil, ResultadoCascata{}, ErrTipoInvalido
	}

	rj := &Reajuste{
		EmpresaID:  empresaID,
		Valor:      valor,
		Tipo:       tipo,
		Mes:        mes,
		Ano:        ano,
		Observacao: observacao,
		Ativo:      true,
	}
	if err := m.Repo.Create(ctx, rj); err != nil {
		return nil, ResultadoCascata{}, err
	}

	if emp, err := m.Empresas.FindByID(ctx, empresaID); err == nil {
		m.Emissor.ReajusteCriado(emp.Nome, tipo, valor, mes, ano)
	}

	recalculados, esperados, err := m.Calculos.RecalcularAteAtual(ctx, empresaID, mes, ano)
	return rj, ResultadoCascata{MesesRecalculados: recalculados, MesesEsperados: esperados}, err
}

// Desativar marca o reajuste como inativo e reexecuta a mesma cascata a
// partir do mês original do reajuste.
func (m *Manager) Desativar(ctx context.Context, id uint) (*Reajuste, ResultadoCascata, error) {
	rj, err := m.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, ResultadoCascata{}, err
	}
	if err := m.Repo.Desativar(ctx, id); err != nil {
		return nil, ResultadoCascata{}, err
	}
	rj.Ativo = false

	recalculados, esperados, err := m.Calculos.RecalcularAteAtual(ctx, rj.EmpresaID, rj.Mes, rj.Ano)
	return rj, ResultadoCascata{MesesRecalculados: recalculados, MesesEsperados: esperados}, err
}
