package auth

import (
	"encoding/json"
	"net/http"

	"github.com/NexusGestao/api-bancohoras/internal/usuario"
	"github.com/NexusGestao/api-bancohoras/internal/utils"
	"gorm.io/gorm"
)

// LoginHandler autentica por e-mail/senha e devolve o token de acesso.
func LoginHandler(db *gorm.DB) http.HandlerFunc {
	repo := usuario.NewRepository(db)
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req struct {
			Email string `json:"email"`
			Senha string `json:"senha"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "JSON mal formado", http.StatusBadRequest)
			return
		}

		u, err := repo.FindByEmail(r.Context(), req.Email)
		if err != nil {
			http.Error(w, "Usuário ou senha inválidos", http.StatusUnauthorized)
			return
		}
		if !utils.VerificarSenha(u.Senha, req.Senha) {
			http.Error(w, "Usuário ou senha inválidos", http.StatusUnauthorized)
			return
		}

		token, err := GerarToken(u.ID, u.IsAdmin)
		if err != nil {
			http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"token":   token,
			"usuario": u,
		})
	}
}
