package calculo

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas do banco de horas
type Handler struct {
	Repo    *Repository
	Service *Service
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository, service *Service) *Handler {
	return &Handler{Repo: repo, Service: service}
}

func mesAno(r *http.Request) (empresaID uint, mes, ano int, ok bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		return 0, 0, 0, false
	}
	ano, err1 := strconv.Atoi(vars["ano"])
	mes, err2 := strconv.Atoi(vars["mes"])
	if err1 != nil || err2 != nil || mes < 1 || mes > 12 {
		return 0, 0, 0, false
	}
	return uint(id), mes, ano, true
}

// Recalcular trata POST /empresas/{id}/calculos/{ano}/{mes}
func (h *Handler) Recalcular(w http.ResponseWriter, r *http.Request) {
	empresaID, mes, ano, ok := mesAno(r)
	if !ok {
		http.Error(w, "Empresa, mês ou ano inválidos", http.StatusBadRequest)
		return
	}
	calc, err := h.Service.CalcularMes(r.Context(), empresaID, mes, ano)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(calc)
}

// Get trata GET /empresas/{id}/calculos/{ano}/{mes}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	empresaID, mes, ano, ok := mesAno(r)
	if !ok {
		http.Error(w, "Empresa, mês ou ano inválidos", http.StatusBadRequest)
		return
	}
	calc, err := h.Repo.BuscarPorMes(r.Context(), empresaID, mes, ano)
	if err != nil {
		http.Error(w, "Erro ao buscar cálculo", http.StatusInternalServerError)
		return
	}
	if calc == nil {
		http.Error(w, "Cálculo não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(calc)
}

// List trata GET /empresas/{id}/banco-de-horas
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.ListByEmpresa(r.Context(), uint(id))
	if err != nil {
		http.Error(w, "Erro ao buscar cálculos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// RecalcularPeriodo trata POST /empresas/{id}/recalcular
// Operação nomeada de recálculo em faixa: o escopo da cascata fica explícito
// e testável fora da ação de UI que a dispara.
func (h *Handler) RecalcularPeriodo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto RecalcularPeriodoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.DeMes < 1 || dto.DeMes > 12 || dto.DeAno == 0 {
		http.Error(w, "deMes e deAno são obrigatórios", http.StatusBadRequest)
		return
	}

	var recalculados, esperados int
	if dto.AteAno != 0 {
		recalculados, esperados, err = h.Service.RecalcularPeriodo(r.Context(), uint(id), dto.DeMes, dto.DeAno, dto.AteMes, dto.AteAno)
	} else {
		recalculados, esperados, err = h.Service.RecalcularAteAtual(r.Context(), uint(id), dto.DeMes, dto.DeAno)
	}

	resp := ResultadoCascataDTO{MesesRecalculados: recalculados, MesesEsperados: esperados}
	if err != nil {
		resp.Erro = err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
	_ = json.NewEncoder(w).Encode(resp)
}
