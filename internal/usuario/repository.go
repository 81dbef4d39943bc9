package usuario

import (
	"context"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Usuario
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo usuário
func (r *Repository) Create(ctx context.Context, u *Usuario) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

// FindByEmail retorna o usuário pelo e-mail
func (r *Repository) FindByEmail(ctx context.Context, email string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByID retorna o usuário pelo ID
func (r *Repository) FindByID(ctx context.Context, id uint) (*Usuario, error) {
	var u Usuario
	if err := r.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
