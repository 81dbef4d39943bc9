package notificacao

import (
	"fmt"
	"time"

	"github.com/NexusGestao/api-bancohoras/internal/utils"
	"github.com/shopspring/decimal"
)

// Emissor formata os eventos de domínio do banco de horas e os repassa
// ao entregador configurado. Um método por tipo de evento.
type Emissor struct {
	entregador Entregador
}

// NovoEmissor cria um emissor sobre o entregador informado.
func NovoEmissor(entregador Entregador) *Emissor {
	return &Emissor{entregador: entregador}
}

func (e *Emissor) SaldoNegativo(empresa string, mes, ano int, saldo decimal.Decimal) {
	e.entregador.Entregar(Evento{
		Tipo:     TipoSaldoNegativo,
		Titulo:   "Saldo negativo",
		Mensagem: fmt.Sprintf("%s fechou %02d/%d com saldo de %s", empresa, mes, ano, utils.FormatarHoras(saldo)),
		Empresa:  empresa,
		Mes:      mes,
		Ano:      ano,
	})
}

func (e *Emissor) ExcedenteGerado(empresa string, mes, ano int, horas, valor decimal.Decimal) {
	e.entregador.Entregar(Evento{
		Tipo:     TipoExcedenteGerado,
		Titulo:   "Excedente gerado",
		Mensagem: fmt.Sprintf("%s excedeu %s em %02d/%d (R$ %s)", empresa, utils.FormatarHoras(horas), mes, ano, valor.StringFixed(2)),
		Empresa:  empresa,
		Mes:      mes,
		Ano:      ano,
	})
}

func (e *Emissor) TaxaAusente(empresa string, mes, ano int, tipoVigencia string) {
	e.entregador.Entregar(Evento{
		Tipo:     TipoTaxaAusente,
		Titulo:   "Taxa ausente",
		Mensagem: fmt.Sprintf("%s não possui vigência de %s para %02d/%d; cálculo seguiu com valor zero", empresa, tipoVigencia, mes, ano),
		Empresa:  empresa,
		Mes:      mes,
		Ano:      ano,
	})
}

func (e *Emissor) FimPeriodoProximo(empresa string, dataFim time.Time) {
	e.entregador.Entregar(Evento{
		Tipo:     TipoFimPeriodoProximo,
		Titulo:   "Fim de período próximo",
		Mensagem: fmt.Sprintf("A vigência contratual de %s termina em %s", empresa, dataFim.Format("02/01/2006")),
		Empresa:  empresa,
	})
}

func (e *Emissor) ReajusteCriado(empresa, tipo string, valor decimal.Decimal, mes, ano int) {
	e.entregador.Entregar(Evento{
		Tipo:     TipoReajusteCriado,
		Titulo:   "Reajuste criado",
		Mensagem: fmt.Sprintf("Reajuste %s de %s aplicado a %s em %02d/%d", tipo, utils.FormatarHoras(valor), empresa, mes, ano),
		Empresa:  empresa,
		Mes:      mes,
		Ano:      ano,
	})
}

func (e *Emissor) CalculoSucesso(empresa string, mes, ano int) {
	e.entregador.Entregar(Evento{
		Tipo:     TipoCalculoSucesso,
		Titulo:   "Cálculo concluído",
		Mensagem: fmt.Sprintf("Banco de horas de %s recalculado para %02d/%d", empresa, mes, ano),
		Empresa:  empresa,
		Mes:      mes,
		Ano:      ano,
	})
}

func (e *Emissor) CalculoErro(empresa string, mes, ano int, motivo string) {
	e.entregador.Entregar(Evento{
		Tipo:     TipoCalculoErro,
		Titulo:   "Falha no cálculo",
		Mensagem: fmt.Sprintf("Não foi possível recalcular %s em %02d/%d: %s", empresa, mes, ano, motivo),
		Empresa:  empresa,
		Mes:      mes,
		Ano:      ano,
	})
}

func (e *Emissor) Info(mensagem string)    { e.generico(TipoInfo, "Informação", mensagem) }
func (e *Emissor) Aviso(mensagem string)   { e.generico(TipoAviso, "Aviso", mensagem) }
func (e *Emissor) Sucesso(mensagem string) { e.generico(TipoSucesso, "Sucesso", mensagem) }
func (e *Emissor) Erro(mensagem string)    { e.generico(TipoErro, "Erro", mensagem) }

func (e *Emissor) generico(tipo, titulo, mensagem string) {
	e.entregador.Entregar(Evento{Tipo: tipo, Titulo: titulo, Mensagem: mensagem})
}
