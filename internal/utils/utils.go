package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// HashSenha gera um hash bcrypt para a senha informada.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarSenha compara hash bcrypt com a senha em texto puro.
func VerificarSenha(hash, senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	return err == nil
}

// GerarSenhaTemporaria gera uma senha aleatória segura de 12 caracteres.
func GerarSenhaTemporaria() (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length := 12
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		result[i] = chars[num.Int64()]
	}
	return string(result), nil
}

// FormatarHoras converte um valor decimal de horas para o formato "HH:MM".
// Valores negativos recebem o sinal na frente: -2.5 vira "-02:30".
func FormatarHoras(horas decimal.Decimal) string {
	sinal := ""
	if horas.IsNegative() {
		sinal = "-"
		horas = horas.Abs()
	}
	inteiras := horas.IntPart()
	minutos := horas.Sub(decimal.NewFromInt(inteiras)).Mul(decimal.NewFromInt(60)).Round(0).IntPart()
	if minutos >= 60 {
		inteiras++
		minutos -= 60
	}
	return fmt.Sprintf("%s%02d:%02d", sinal, inteiras, minutos)
}
