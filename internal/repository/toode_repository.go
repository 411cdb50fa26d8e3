package repository

import (
	"context"

	"gorm.io/gorm"

	"pandimaja/internal/model"
)

// ToodeRepository defines persistence operations for products.
type ToodeRepository interface {
	Create(ctx context.Context, toode *model.Toode) error
	FindByID(ctx context.Context, id uint) (*model.Toode, error)
	List(ctx context.Context) ([]model.Toode, error)
	SearchByNimetus(ctx context.Context, nimetus string) ([]model.Toode, error)
	ListByStatus(ctx context.Context, statusID uint) ([]model.Toode, error)
	Update(ctx context.Context, toode *model.Toode) error
	Delete(ctx context.Context, id uint) error
}

type toodeRepository struct {
	db *gorm.DB
}

// NewToodeRepository builds a GORM-backed repository.
func NewToodeRepository(db *gorm.DB) ToodeRepository {
	return &toodeRepository{db: db}
}

func (r *toodeRepository) Create(ctx context.Context, toode *model.Toode) error {
	return r.db.WithContext(ctx).Create(toode).Error
}

func (r *toodeRepository) FindByID(ctx context.Context, id uint) (*model.Toode, error) {
	var toode model.Toode
	if err := r.db.WithContext(ctx).First(&toode, id).Error; err != nil {
		return nil, err
	}
	return &toode, nil
}

func (r *toodeRepository) List(ctx context.Context) ([]model.Toode, error) {
	var tooted []model.Toode
	if err := r.db.WithContext(ctx).Find(&tooted).Error; err != nil {
		return nil, err
	}
	return tooted, nil
}

func (r *toodeRepository) SearchByNimetus(ctx context.Context, nimetus string) ([]model.Toode, error) {
	var tooted []model.Toode
	if err := r.db.WithContext(ctx).Where("nimetus LIKE ?", "%"+nimetus+"%").Find(&tooted).Error; err != nil {
		return nil, err
	}
	return tooted, nil
}

func (r *toodeRepository) ListByStatus(ctx context.Context, statusID uint) ([]model.Toode, error) {
	var tooted []model.Toode
	if err := r.db.WithContext(ctx).Where("status_id = ?", statusID).Find(&tooted).Error; err != nil {
		return nil, err
	}
	return tooted, nil
}

func (r *toodeRepository) Update(ctx context.Context, toode *model.Toode) error {
	return r.db.WithContext(ctx).Save(toode).Error
}

func (r *toodeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Toode{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
