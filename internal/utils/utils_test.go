package utils_test

import (
	"testing"

	"github.com/NexusGestao/api-bancohoras/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatarHoras(t *testing.T) {
	casos := []struct {
		horas    string
		esperado string
	}{
		{"30", "30:00"},
		{"2.5", "02:30"},
		{"-2.5", "-02:30"},
		{"0", "00:00"},
		{"0.25", "00:15"},
		{"100.75", "100:45"},
	}
	for _, c := range casos {
		d := decimal.RequireFromString(c.horas)
		assert.Equal(t, c.esperado, utils.FormatarHoras(d), "horas=%s", c.horas)
	}
}

func TestHashEVerificarSenha(t *testing.T) {
	hash, err := utils.HashSenha("segredo-forte")
	assert.NoError(t, err)
	assert.True(t, utils.VerificarSenha(hash, "segredo-forte"))
	assert.False(t, utils.VerificarSenha(hash, "senha-errada"))
}
