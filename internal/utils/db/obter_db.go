package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// ObterDB monta a conexão a partir das variáveis de ambiente.
func ObterDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	porta, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		porta = 5432
	}
	nomeBanco := os.Getenv("DB_NAME")
	secretID := os.Getenv("DB_SECRET_ID")
	return ConectarBanco(uint(porta), host, nomeBanco, secretID)
}
