package empresa

import (
	"context"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Empresa
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere uma nova empresa
func (r *Repository) Create(ctx context.Context, e *Empresa) error {
	return r.DB.WithContext(ctx).Create(e).Error
}

// FindByID retorna uma empresa pelo ID
func (r *Repository) FindByID(ctx context.Context, id uint) (*Empresa, error) {
	var e Empresa
	if err := r.DB.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListAll retorna todas as empresas, opcionalmente só as ativas
func (r *Repository) ListAll(ctx context.Context, somenteAtivas bool) ([]Empresa, error) {
	var list []Empresa
	q := r.DB.WithContext(ctx)
	if somenteAtivas {
		q = q.Where("ativo = ?", true)
	}
	err := q.Order("nome").Find(&list).Error
	return list, err
}

// Update salva alterações em uma empresa existente
func (r *Repository) Update(ctx context.Context, e *Empresa) error {
	return r.DB.WithContext(ctx).Save(e).Error
}

// Delete remove a empresa (soft delete via gorm.DeletedAt)
func (r *Repository) Delete(ctx context.Context, e *Empresa) error {
	return r.DB.WithContext(ctx).Delete(e).Error
}
