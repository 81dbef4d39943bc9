package reajuste

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Reajuste
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo reajuste
func (r *Repository) Create(ctx context.Context, rj *Reajuste) error {
	return r.DB.WithContext(ctx).Create(rj).Error
}

// FindByID retorna um reajuste pelo ID
func (r *Repository) FindByID(ctx context.Context, id uint) (*Reajuste, error) {
	var rj Reajuste
	if err := r.DB.WithContext(ctx).First(&rj, id).Error; err != nil {
		return nil, err
	}
	return &rj, nil
}

// ListByEmpresa retorna os reajustes de uma empresa, mais recentes primeiro
func (r *Repository) ListByEmpresa(ctx context.Context, empresaID uint) ([]Reajuste, error) {
	var list []Reajuste
	err := r.DB.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("ano DESC, mes DESC, id DESC").
		Find(&list).Error
	return list, err
}

// Desativar marca o reajuste como inativo, preservando a linha para auditoria
func (r *Repository) Desativar(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Model(&Reajuste{}).Where("id = ?", id).
		Update("ativo", false).Error
}

// SaldoAtivosDoMes soma os reajustes ativos do mês em um único delta líquido:
// positivos somam, negativos subtraem.
func (r *Repository) SaldoAtivosDoMes(ctx context.Context, empresaID uint, mes, ano int) (decimal.Decimal, error) {
	var list []Reajuste
	err := r.DB.WithContext(ctx).
		Where("empresa_id = ? AND mes = ? AND ano = ? AND ativo = ?", empresaID, mes, ano, true).
		Find(&list).Error
	if err != nil {
		return decimal.Zero, err
	}
	delta := decimal.Zero
	for _, rj := range list {
		if rj.Tipo == TipoNegativo {
			delta = delta.Sub(rj.Valor)
		} else {
			delta = delta.Add(rj.Valor)
		}
	}
	return delta, nil
}
