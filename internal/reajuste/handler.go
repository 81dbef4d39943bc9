package reajuste

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// Handler gerencia rotas de reajustes
type Handler struct {
	Repo     *Repository
	Manager  *Manager
	Validate *validator.Validate
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository, manager *Manager) *Handler {
	return &Handler{Repo: repo, Manager: manager, Validate: validator.New()}
}

// Create trata POST /empresas/{id}/reajustes
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto CreateReajusteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	rj, cascata, err := h.Manager.Criar(r.Context(), uint(empresaID),
		decimal.NewFromFloat(dto.Valor), dto.Tipo, dto.Mes, dto.Ano, dto.Observacao)
	if err != nil {
		if errors.Is(err, ErrValorInvalido) || errors.Is(err, ErrTipoInvalido) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if rj == nil {
			http.Error(w, "Erro ao criar reajuste", http.StatusInternalServerError)
			return
		}
		// Reajuste persistido, cascata interrompida: devolve o avanço parcial.
		resp := ReajusteComCascataDTO{Reajuste: rj, Cascata: cascata, Erro: err.Error()}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMultiStatus)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(ReajusteComCascataDTO{Reajuste: rj, Cascata: cascata})
}

// List trata GET /empresas/{id}/reajustes
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListByEmpresa(r.Context(), uint(empresaID))
	if err != nil {
		http.Error(w, "Erro ao buscar reajustes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Desativar trata PATCH /reajustes/{id}/desativar
func (h *Handler) Desativar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de reajuste inválido", http.StatusBadRequest)
		return
	}

	rj, cascata, err := h.Manager.Desativar(r.Context(), uint(id))
	if err != nil {
		if rj == nil {
			http.Error(w, "Reajuste não encontrado", http.StatusNotFound)
			return
		}
		resp := ReajusteComCascataDTO{Reajuste: rj, Cascata: cascata, Erro: err.Error()}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMultiStatus)
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ReajusteComCascataDTO{Reajuste: rj, Cascata: cascata})
}
