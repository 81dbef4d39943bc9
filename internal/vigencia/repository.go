package vigencia

import (
	"context"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para os históricos de vigência
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CriarBaseline insere uma nova vigência de baseline. A vigência aberta da
// empresa, se existir, é fechada em data_inicio da nova (fim exclusivo);
// interseção com vigências já fechadas é rejeitada com ErrVigenciaSobreposta.
func (r *Repository) CriarBaseline(ctx context.Context, v *VigenciaBaseline) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existentes []VigenciaBaseline
		if err := tx.Where("empresa_id = ?", v.EmpresaID).Find(&existentes).Error; err != nil {
			return err
		}
		for _, e := range existentes {
			if e.DataFim == nil {
				// Vigência aberta: só pode ser sucedida, nunca antecedida.
				if !v.DataInicio.After(e.DataInicio) {
					return ErrVigenciaSobreposta
				}
				if err := tx.Model(&VigenciaBaseline{}).Where("id = ?", e.ID).
					Update("data_fim", v.DataInicio).Error; err != nil {
					return err
				}
				continue
			}
			if sobrepoe(v.DataInicio, v.DataFim, e.DataInicio, e.DataFim) {
				return ErrVigenciaSobreposta
			}
		}
		return tx.Create(v).Error
	})
}

// ListarBaseline retorna o histórico de baseline da empresa, da mais antiga à mais nova
func (r *Repository) ListarBaseline(ctx context.Context, empresaID uint) ([]VigenciaBaseline, error) {
	var list []VigenciaBaseline
	err := r.DB.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("data_inicio").
		Find(&list).Error
	return list, err
}

// CriarRepasse insere uma nova vigência de repasse com o mesmo ciclo de vida do baseline
func (r *Repository) CriarRepasse(ctx context.Context, v *VigenciaRepasse) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existentes []VigenciaRepasse
		if err := tx.Where("empresa_id = ?", v.EmpresaID).Find(&existentes).Error; err != nil {
			return err
		}
		for _, e := range existentes {
			if e.DataFim == nil {
				if !v.DataInicio.After(e.DataInicio) {
					return ErrVigenciaSobreposta
				}
				if err := tx.Model(&VigenciaRepasse{}).Where("id = ?", e.ID).
					Update("data_fim", v.DataInicio).Error; err != nil {
					return err
				}
				continue
			}
			if sobrepoe(v.DataInicio, v.DataFim, e.DataInicio, e.DataFim) {
				return ErrVigenciaSobreposta
			}
		}
		return tx.Create(v).Error
	})
}

// ListarRepasse retorna o histórico de repasse da empresa, da mais antiga à mais nova
func (r *Repository) ListarRepasse(ctx context.Context, empresaID uint) ([]VigenciaRepasse, error) {
	var list []VigenciaRepasse
	err := r.DB.WithContext(ctx).
		Where("empresa_id = ?", empresaID).
		Order("data_inicio").
		Find(&list).Error
	return list, err
}
