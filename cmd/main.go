package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/NexusGestao/api-bancohoras/internal/auth"
	"github.com/NexusGestao/api-bancohoras/internal/calculo"
	"github.com/NexusGestao/api-bancohoras/internal/empresa"
	"github.com/NexusGestao/api-bancohoras/internal/notificacao"
	"github.com/NexusGestao/api-bancohoras/internal/reajuste"
	"github.com/NexusGestao/api-bancohoras/internal/requerimento"
	"github.com/NexusGestao/api-bancohoras/internal/usuario"
	"github.com/NexusGestao/api-bancohoras/internal/utils/db"
	"github.com/NexusGestao/api-bancohoras/internal/versao"
	"github.com/NexusGestao/api-bancohoras/internal/vigencia"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET não definida")
	}

	database, err := db.ObterDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&empresa.Empresa{},
		&vigencia.VigenciaBaseline{},
		&vigencia.VigenciaRepasse{},
		&requerimento.Requerimento{},
		&reajuste.Reajuste{},
		&calculo.CalculoMensal{},
		&versao.Versao{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Notificações: webhook do painel quando configurado, descarte caso contrário
	var entregador notificacao.Entregador = notificacao.EntregadorNulo{}
	if url := os.Getenv("WEBHOOK_NOTIFICACAO_URL"); url != "" {
		entregador = notificacao.NovoEntregadorWebhook(url)
	}
	emissor := notificacao.NovoEmissor(entregador)

	// Repositórios
	usuarioRepo := usuario.NewRepository(database)
	empresaRepo := empresa.NewRepository(database)
	vigenciaRepo := vigencia.NewRepository(database)
	requerimentoRepo := requerimento.NewRepository(database)
	reajusteRepo := reajuste.NewRepository(database)
	calculoRepo := calculo.NewRepository(database)
	versaoRepo := versao.NewRepository(database)

	// Serviços
	calculoService := calculo.NewService(calculoRepo, empresaRepo, vigenciaRepo,
		requerimentoRepo, reajusteRepo, versaoRepo, emissor)
	reajusteManager := reajuste.NewManager(reajusteRepo, empresaRepo, calculoService, emissor)

	// Handlers
	usuarioHandler := usuario.NewHandler(usuarioRepo)
	empresaHandler := empresa.NewHandler(empresaRepo)
	vigenciaHandler := vigencia.NewHandler(vigenciaRepo)
	requerimentoHandler := requerimento.NewHandler(requerimentoRepo)
	reajusteHandler := reajuste.NewHandler(reajusteRepo, reajusteManager)
	calculoHandler := calculo.NewHandler(calculoRepo, calculoService)
	versaoHandler := versao.NewHandler(versaoRepo)

	// Router
	r := mux.NewRouter()
	r.HandleFunc("/login", auth.LoginHandler(database)).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Rotas de usuários (somente admin)
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/usuarios", usuarioHandler.Create).Methods("POST")

	// Rotas de empresas
	api.HandleFunc("/empresas", empresaHandler.Create).Methods("POST")
	api.HandleFunc("/empresas", empresaHandler.List).Methods("GET")
	api.HandleFunc("/empresas/{id}", empresaHandler.Get).Methods("GET")
	api.HandleFunc("/empresas/{id}", empresaHandler.Update).Methods("PUT")
	api.HandleFunc("/empresas/{id}", empresaHandler.Delete).Methods("DELETE")

	// Rotas de vigências
	api.HandleFunc("/empresas/{id}/vigencias-baseline", vigenciaHandler.CreateBaseline).Methods("POST")
	api.HandleFunc("/empresas/{id}/vigencias-baseline", vigenciaHandler.ListBaseline).Methods("GET")
	api.HandleFunc("/empresas/{id}/vigencias-repasse", vigenciaHandler.CreateRepasse).Methods("POST")
	api.HandleFunc("/empresas/{id}/vigencias-repasse", vigenciaHandler.ListRepasse).Methods("GET")

	// Rotas de requerimentos
	api.HandleFunc("/empresas/{id}/requerimentos", requerimentoHandler.Create).Methods("POST")
	api.HandleFunc("/empresas/{id}/requerimentos", requerimentoHandler.List).Methods("GET")
	api.HandleFunc("/requerimentos/{id}/enviar", requerimentoHandler.MarcarEnviado).Methods("PATCH")

	// Rotas do banco de horas
	api.HandleFunc("/empresas/{id}/banco-de-horas", calculoHandler.List).Methods("GET")
	api.HandleFunc("/empresas/{id}/calculos/{ano}/{mes}", calculoHandler.Recalcular).Methods("POST")
	api.HandleFunc("/empresas/{id}/calculos/{ano}/{mes}", calculoHandler.Get).Methods("GET")
	api.HandleFunc("/empresas/{id}/recalcular", calculoHandler.RecalcularPeriodo).Methods("POST")

	// Rotas de reajustes
	api.HandleFunc("/empresas/{id}/reajustes", reajusteHandler.Create).Methods("POST")
	api.HandleFunc("/empresas/{id}/reajustes", reajusteHandler.List).Methods("GET")
	api.HandleFunc("/reajustes/{id}/desativar", reajusteHandler.Desativar).Methods("PATCH")

	// Rotas de versões
	api.HandleFunc("/empresas/{id}/calculos/{ano}/{mes}/versoes", versaoHandler.List).Methods("GET")
	api.HandleFunc("/versoes/comparar", versaoHandler.Comparar).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}
	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
