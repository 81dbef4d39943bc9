package empresa

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// Handler gerencia rotas de empresas
type Handler struct {
	Repo     *Repository
	Validate *validator.Validate
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo, Validate: validator.New()}
}

// Create trata POST /empresas
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto CreateEmpresaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	e := Empresa{
		Nome:            dto.Nome,
		CNPJ:            dto.CNPJ,
		TipoFaturamento: dto.TipoFaturamento,
		ValorHoraTicket: decimal.NewFromFloat(dto.ValorHoraTicket),
		Ativo:           true,
	}
	if e.TipoFaturamento == "" {
		e.TipoFaturamento = "mensal"
	}

	if err := h.Repo.Create(r.Context(), &e); err != nil {
		http.Error(w, "Erro ao criar empresa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(e)
}

// List trata GET /empresas
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	somenteAtivas := r.URL.Query().Get("ativas") == "true"
	list, err := h.Repo.ListAll(r.Context(), somenteAtivas)
	if err != nil {
		http.Error(w, "Erro ao buscar empresas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Get trata GET /empresas/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.FindByID(r.Context(), uint(id))
	if err != nil {
		http.Error(w, "Empresa não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// Update trata PUT /empresas/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.FindByID(r.Context(), uint(id))
	if err != nil {
		http.Error(w, "Empresa não encontrada", http.StatusNotFound)
		return
	}

	var dto CreateEmpresaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	e.Nome = dto.Nome
	e.CNPJ = dto.CNPJ
	if dto.TipoFaturamento != "" {
		e.TipoFaturamento = dto.TipoFaturamento
	}
	e.ValorHoraTicket = decimal.NewFromFloat(dto.ValorHoraTicket)

	if err := h.Repo.Update(r.Context(), e); err != nil {
		http.Error(w, "Erro ao atualizar empresa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(e)
}

// Delete trata DELETE /empresas/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.FindByID(r.Context(), uint(id))
	if err != nil {
		http.Error(w, "Empresa não encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(r.Context(), e); err != nil {
		http.Error(w, "Erro ao remover empresa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
