package calculo

import (
	"context"
	"errors"

	"github.com/NexusGestao/api-bancohoras/internal/versao"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para CalculoMensal
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorMes retorna o cálculo do mês, ou nil quando ainda não existe
func (r *Repository) BuscarPorMes(ctx context.Context, empresaID uint, mes, ano int) (*CalculoMensal, error) {
	var c CalculoMensal
	err := r.DB.WithContext(ctx).
		Where("empresa_id = ? AND mes = ? AND ano = ?", empresaID, mes, ano).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// ListByEmpresa retorna todos os fechamentos da empresa em ordem cronológica
func (r *Repository) ListByEmpresa(ctx context.Context, empresaID uint) ([]CalculoMensal, error) {
	var list []CalculoMensal
	err := r.DB.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("ano, mes").
		Find(&list).Error
	return list, err
}

// SobrescreverComSnapshot grava o cálculo e, quando há estado anterior,
// insere o snapshot na mesma transação — a sobrescrita nunca é observável
// sem a versão correspondente.
func (r *Repository) SobrescreverComSnapshot(ctx context.Context, c *CalculoMensal, snap *versao.Versao) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if snap != nil {
			if err := tx.Create(snap).Error; err != nil {
				return err
			}
		}
		if c.ID != 0 {
			return tx.Save(c).Error
		}
		return tx.Create(c).Error
	})
}
