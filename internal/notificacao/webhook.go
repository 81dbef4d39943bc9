package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// EntregadorWebhook envia cada evento como POST JSON para o painel de alertas.
// A entrega roda em goroutine própria com backoff exponencial limitado;
// falha de entrega nunca interrompe o fluxo de negócio.
type EntregadorWebhook struct {
	URL        string
	Cliente    *http.Client
	Tentativas int
}

// NovoEntregadorWebhook cria o entregador com 3 tentativas e timeout de 10s.
func NovoEntregadorWebhook(url string) *EntregadorWebhook {
	return &EntregadorWebhook{
		URL:        url,
		Cliente:    &http.Client{Timeout: 10 * time.Second},
		Tentativas: 3,
	}
}

func (e *EntregadorWebhook) Entregar(evento Evento) {
	go e.enviar(evento)
}

func (e *EntregadorWebhook) enviar(evento Evento) {
	body, err := json.Marshal(evento)
	if err != nil {
		log.Printf("notificacao: erro ao serializar evento %s: %v", evento.Tipo, err)
		return
	}

	espera := time.Second
	for tentativa := 1; tentativa <= e.Tentativas; tentativa++ {
		resp, err := e.Cliente.Post(e.URL, "application/json", bytes.NewReader(body))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode < 300 {
				return
			}
			log.Printf("notificacao: webhook respondeu %d para evento %s (tentativa %d)", resp.StatusCode, evento.Tipo, tentativa)
		} else {
			log.Printf("notificacao: erro ao enviar webhook para evento %s (tentativa %d): %v", evento.Tipo, tentativa, err)
		}
		if tentativa < e.Tentativas {
			time.Sleep(espera)
			espera *= 2
		}
	}
}
