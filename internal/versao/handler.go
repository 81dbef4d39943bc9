package versao

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler gerencia rotas de versões de cálculo
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// List trata GET /empresas/{id}/calculos/{ano}/{mes}/versoes
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	empresaID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "ID de empresa inválido", http.StatusBadRequest)
		return
	}
	ano, err1 := strconv.Atoi(vars["ano"])
	mes, err2 := strconv.Atoi(vars["mes"])
	if err1 != nil || err2 != nil || mes < 1 || mes > 12 {
		http.Error(w, "Mês/ano inválidos", http.StatusBadRequest)
		return
	}

	list, err := h.Repo.ListarPorMes(r.Context(), uint(empresaID), mes, ano)
	if err != nil {
		http.Error(w, "Erro ao buscar versões", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Comparar trata GET /versoes/comparar?de=&para=
func (h *Handler) Comparar(w http.ResponseWriter, r *http.Request) {
	deID, err1 := strconv.Atoi(r.URL.Query().Get("de"))
	paraID, err2 := strconv.Atoi(r.URL.Query().Get("para"))
	if err1 != nil || err2 != nil {
		http.Error(w, "Parâmetros de e para são obrigatórios", http.StatusBadRequest)
		return
	}

	de, err := h.Repo.FindByID(r.Context(), uint(deID))
	if err != nil {
		http.Error(w, "Versão de origem não encontrada", http.StatusNotFound)
		return
	}
	para, err := h.Repo.FindByID(r.Context(), uint(paraID))
	if err != nil {
		http.Error(w, "Versão de destino não encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Comparar(de, para))
}
