package vigencia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// Handler gerencia rotas dos históricos de vigência
type Handler struct {
	Repo     *Repository
	Validate *validator.Validate
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo, Validate: validator.New()}
}

func parseData(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// CreateBaseline trata POST /empresas/{id}/vigencias-baseline
func (h *Handler) CreateBaseline(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto CreateBaselineDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	inicio, err := parseData(dto.DataInicio)
	if err != nil {
		http.Error(w, "dataInicio inválida", http.StatusBadRequest)
		return
	}
	var fim *time.Time
	if dto.DataFim != "" {
		f, err := parseData(dto.DataFim)
		if err != nil {
			http.Error(w, "dataFim inválida", http.StatusBadRequest)
			return
		}
		fim = &f
	}

	v := VigenciaBaseline{
		EmpresaID:       uint(empresaID),
		BaselineHoras:   decimal.NewFromFloat(dto.BaselineHoras),
		BaselineTickets: dto.BaselineTickets,
		DataInicio:      inicio,
		DataFim:         fim,
		Motivo:          dto.Motivo,
		Observacao:      dto.Observacao,
	}
	if err := h.Repo.CriarBaseline(r.Context(), &v); err != nil {
		if errors.Is(err, ErrVigenciaSobreposta) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao criar vigência", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}

// ListBaseline trata GET /empresas/{id}/vigencias-baseline
func (h *Handler) ListBaseline(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListarBaseline(r.Context(), uint(empresaID))
	if err != nil {
		http.Error(w, "Erro ao buscar vigências", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// CreateRepasse trata POST /empresas/{id}/vigencias-repasse
func (h *Handler) CreateRepasse(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto CreateRepasseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	inicio, err := parseData(dto.DataInicio)
	if err != nil {
		http.Error(w, "dataInicio inválida", http.StatusBadRequest)
		return
	}
	var fim *time.Time
	if dto.DataFim != "" {
		f, err := parseData(dto.DataFim)
		if err != nil {
			http.Error(w, "dataFim inválida", http.StatusBadRequest)
			return
		}
		fim = &f
	}

	v := VigenciaRepasse{
		EmpresaID:         uint(empresaID),
		PercentualRepasse: decimal.NewFromFloat(dto.PercentualRepasse),
		DataInicio:        inicio,
		DataFim:           fim,
		Motivo:            dto.Motivo,
		Observacao:        dto.Observacao,
	}
	if err := h.Repo.CriarRepasse(r.Context(), &v); err != nil {
		if errors.Is(err, ErrVigenciaSobreposta) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "Erro ao criar vigência", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}

// ListRepasse trata GET /empresas/{id}/vigencias-repasse
func (h *Handler) ListRepasse(w http.ResponseWriter, r *http.Request) {
	empresaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListarRepasse(r.Context(), uint(empresaID))
	if err != nil {
		http.Error(w, "Erro ao buscar vigências", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}
