package repository

import (
	"context"

	"gorm.io/gorm"

	"pandimaja/internal/model"
)

// TootajaRepository defines persistence operations for employees. It is
// the principal store of the auth flows; uniqueness of kood is enforced by
// the table's unique index, not by this interface.
type TootajaRepository interface {
	Create(ctx context.Context, tootaja *model.Tootaja) error
	FindByID(ctx context.Context, id uint) (*model.Tootaja, error)
	FindByKood(ctx context.Context, kood string) (*model.Tootaja, error)
	List(ctx context.Context) ([]model.Tootaja, error)
}

type tootajaRepository struct {
	db *gorm.DB
}

// NewTootajaRepository builds a GORM-backed repository.
func NewTootajaRepository(db *gorm.DB) TootajaRepository {
	return &tootajaRepository{db: db}
}

func (r *tootajaRepository) Create(ctx context.Context, tootaja *model.Tootaja) error {
	return r.db.WithContext(ctx).Create(tootaja).Error
}

func (r *tootajaRepository) FindByID(ctx context.Context, id uint) (*model.Tootaja, error) {
	var tootaja model.Tootaja
	if err := r.db.WithContext(ctx).Preload("Role").First(&tootaja, id).Error; err != nil {
		return nil, err
	}
	return &tootaja, nil
}

func (r *tootajaRepository) FindByKood(ctx context.Context, kood string) (*model.Tootaja, error) {
	var tootaja model.Tootaja
	if err := r.db.WithContext(ctx).Where("kood = ?", kood).First(&tootaja).Error; err != nil {
		return nil, err
	}
	return &tootaja, nil
}

func (r *tootajaRepository) List(ctx context.Context) ([]model.Tootaja, error) {
	var tootajad []model.Tootaja
	if err := r.db.WithContext(ctx).Preload("Role").Find(&tootajad).Error; err != nil {
		return nil, err
	}
	return tootajad, nil
}
