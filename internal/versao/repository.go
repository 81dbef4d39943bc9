package versao

import (
	"context"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Versao.
// Só existe criação e leitura; o log é append-only.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma nova versão
func (r *Repository) Create(ctx context.Context, v *Versao) error {
	return r.DB.WithContext(ctx).Create(v).Error
}

// ListarPorMes retorna as versões de um mês da empresa, da mais nova à mais antiga
func (r *Repository) ListarPorMes(ctx context.Context, empresaID uint, mes, ano int) ([]Versao, error) {
	var list []Versao
	err := r.DB.WithContext(ctx).
		Where("empresa_id = ? AND mes = ? AND ano = ?", empresaID, mes, ano).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

// FindByID retorna uma versão pelo ID
func (r *Repository) FindByID(ctx context.Context, id uint) (*Versao, error) {
	var v Versao
	if err := r.DB.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}
