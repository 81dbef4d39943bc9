package notificacao

import "sync"

// Tipos de evento de domínio emitidos pelo banco de horas.
const (
	TipoSaldoNegativo     = "saldo-negativo"
	TipoExcedenteGerado   = "excedente-gerado"
	TipoTaxaAusente       = "taxa-ausente"
	TipoFimPeriodoProximo = "fim-periodo-proximo"
	TipoReajusteCriado    = "reajuste-criado"
	TipoCalculoSucesso    = "calculo-sucesso"
	TipoCalculoErro       = "calculo-erro"
	TipoInfo              = "info"
	TipoAviso             = "aviso"
	TipoSucesso           = "sucesso"
	TipoErro              = "erro"
)

// Evento é uma notificação de domínio já decidida pela regra de negócio.
// O emissor apenas formata e encaminha; nenhuma decisão acontece aqui.
type Evento struct {
	Tipo     string `json:"tipo"`
	Titulo   string `json:"titulo"`
	Mensagem string `json:"mensagem"`
	Empresa  string `json:"empresa,omitempty"`
	Mes      int    `json:"mes,omitempty"`
	Ano      int    `json:"ano,omitempty"`
}

// Entregador encaminha eventos para o colaborador de apresentação
// (webhook do painel, toasts). Fire-and-forget: o núcleo não consome retorno.
type Entregador interface {
	Entregar(evento Evento)
}

// EntregadorNulo descarta eventos. Útil quando nenhum webhook está configurado.
type EntregadorNulo struct{}

func (EntregadorNulo) Entregar(Evento) {}

// EntregadorMemoria acumula eventos em memória para inspeção em testes
// e no modo de desenvolvimento.
type EntregadorMemoria struct {
	mu      sync.Mutex
	eventos []Evento
}

func (e *EntregadorMemoria) Entregar(evento Evento) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.eventos = append(e.eventos, evento)
}

// Eventos devolve uma cópia dos eventos entregues até aqui.
func (e *EntregadorMemoria) Eventos() []Evento {
	e.mu.Lock()
	defer e.mu.Unlock()
	copia := make([]Evento, len(e.eventos))
	copy(copia, e.eventos)
	return copia
}

// PorTipo devolve os eventos entregues com o tipo informado.
func (e *EntregadorMemoria) PorTipo(tipo string) []Evento {
	var filtrados []Evento
	for _, ev := range e.Eventos() {
		if ev.Tipo == tipo {
			filtrados = append(filtrados, ev)
		}
	}
	return filtrados
}
