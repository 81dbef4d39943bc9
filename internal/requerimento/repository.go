package requerimento

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Requerimento
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo requerimento
func (r *Repository) Create(ctx context.Context, req *Requerimento) error {
	return r.DB.WithContext(ctx).Create(req).Error
}

// ListByEmpresa retorna os requerimentos de uma empresa em um mês de cobrança
func (r *Repository) ListByEmpresa(ctx context.Context, empresaID uint, mes, ano int) ([]Requerimento, error) {
	var list []Requerimento
	err := r.DB.WithContext(ctx).
		Where("empresa_id = ? AND mes_cobranca = ? AND ano_cobranca = ?", empresaID, mes, ano).
		Order("created_at").
		Find(&list).Error
	return list, err
}

// FindByID retorna um requerimento pelo ID
func (r *Repository) FindByID(ctx context.Context, id uint) (*Requerimento, error) {
	var req Requerimento
	if err := r.DB.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// MarcarEnviado marca o requerimento como enviado; a partir daí ele consome saldo
func (r *Repository) MarcarEnviado(ctx context.Context, id uint, quando time.Time) error {
	return r.DB.WithContext(ctx).Model(&Requerimento{}).Where("id = ?", id).
		Updates(map[string]interface{}{"enviado": true, "data_envio": quando}).Error
}

// BuscarConsumo soma horas e tickets dos requerimentos já enviados no mês.
// A soma é feita em Go com decimal para não depender da aritmética do banco.
func (r *Repository) BuscarConsumo(ctx context.Context, empresaID uint, mes, ano int) (decimal.Decimal, int, error) {
	return r.somar(ctx, empresaID, mes, ano, true)
}

// BuscarEmDesenvolvimento soma os apontamentos ainda não enviados do mês.
// Valor informativo: não entra no consumo do cálculo.
func (r *Repository) BuscarEmDesenvolvimento(ctx context.Context, empresaID uint, mes, ano int) (decimal.Decimal, int, error) {
	return r.somar(ctx, empresaID, mes, ano, false)
}

func (r *Repository) somar(ctx context.Context, empresaID uint, mes, ano int, enviado bool) (decimal.Decimal, int, error) {
	var list []Requerimento
	err := r.DB.WithContext(ctx).
		Where("empresa_id = ? AND mes_cobranca = ? AND ano_cobranca = ? AND enviado = ?", empresaID, mes, ano, enviado).
		Find(&list).Error
	if err != nil {
		return decimal.Zero, 0, err
	}
	horas := decimal.Zero
	tickets := 0
	for _, req := range list {
		horas = horas.Add(req.Horas)
		tickets += req.Tickets
	}
	return horas, tickets, nil
}
