package requerimento

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// Handler gerencia rotas de requerimentos
type Handler struct {
	Repo     *Repository
	Validate *validator.Validate
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo, Validate: validator.New()}
}

// Create trata POST /empresas/{id}/requerimentos
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto CreateRequerimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	req := Requerimento{
		EmpresaID:   uint(empresaID),
		Titulo:      dto.Titulo,
		Horas:       decimal.NewFromFloat(dto.Horas),
		Tickets:     dto.Tickets,
		MesCobranca: dto.MesCobranca,
		AnoCobranca: dto.AnoCobranca,
	}
	if err := h.Repo.Create(r.Context(), &req); err != nil {
		http.Error(w, "Erro ao criar requerimento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(req)
}

// List trata GET /empresas/{id}/requerimentos?mes=&ano=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	mes, _ := strconv.Atoi(r.URL.Query().Get("mes"))
	ano, _ := strconv.Atoi(r.URL.Query().Get("ano"))
	if mes < 1 || mes > 12 || ano == 0 {
		http.Error(w, "Parâmetros mes e ano são obrigatórios", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListByEmpresa(r.Context(), uint(empresaID), mes, ano)
	if err != nil {
		http.Error(w, "Erro ao buscar requerimentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// MarcarEnviado trata PATCH /requerimentos/{id}/enviar
func (h *Handler) MarcarEnviado(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de requerimento inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repo.FindByID(r.Context(), uint(id)); err != nil {
		http.Error(w, "Requerimento não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.MarcarEnviado(r.Context(), uint(id), time.Now()); err != nil {
		http.Error(w, "Erro ao marcar envio", http.StatusInternalServerError)
		return
	}
	req, err := h.Repo.FindByID(r.Context(), uint(id))
	if err != nil {
		http.Error(w, "Erro ao recarregar requerimento", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(req)
}
