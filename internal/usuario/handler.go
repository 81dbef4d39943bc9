package usuario

import (
	"encoding/json"
	"net/http"

	"github.com/NexusGestao/api-bancohoras/internal/utils"
	"github.com/go-playground/validator/v10"
)

// CreateUsuarioDTO é o payload de criação de usuário.
type CreateUsuarioDTO struct {
	Nome    string `json:"nome" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Senha   string `json:"senha" validate:"required,min=8"`
	IsAdmin bool   `json:"isAdmin"`
}

// Handler gerencia rotas de usuários
type Handler struct {
	Repo     *Repository
	Validate *validator.Validate
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo, Validate: validator.New()}
}

// Create trata POST /usuarios (somente admin)
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto CreateUsuarioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := h.Validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: "+err.Error(), http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(dto.Senha)
	if err != nil {
		http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
		return
	}
	u := Usuario{Nome: dto.Nome, Email: dto.Email, Senha: hash, IsAdmin: dto.IsAdmin}
	if err := h.Repo.Create(r.Context(), &u); err != nil {
		http.Error(w, "Erro ao criar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(u)
}
