package repository

import (
	"context"

	"gorm.io/gorm"

	"pandimaja/internal/model"
)

// LepingRepository defines persistence operations for pawn contracts.
type LepingRepository interface {
	Create(ctx context.Context, leping *model.Leping) error
	FindByID(ctx context.Context, id uint) (*model.Leping, error)
	// List loads all contracts with their klient, toode and tootaja rows.
	List(ctx context.Context) ([]model.Leping, error)
	Update(ctx context.Context, leping *model.Leping) error
	Delete(ctx context.Context, id uint) error
}

type lepingRepository struct {
	db *gorm.DB
}

// NewLepingRepository builds a GORM-backed repository.
func NewLepingRepository(db *gorm.DB) LepingRepository {
	return &lepingRepository{db: db}
}

func (r *lepingRepository) Create(ctx context.Context, leping *model.Leping) error {
	return r.db.WithContext(ctx).Create(leping).Error
}

func (r *lepingRepository) FindByID(ctx context.Context, id uint) (*model.Leping, error) {
	var leping model.Leping
	if err := r.db.WithContext(ctx).First(&leping, id).Error; err != nil {
		return nil, err
	}
	return &leping, nil
}

func (r *lepingRepository) List(ctx context.Context) ([]model.Leping, error) {
	var lepingud []model.Leping
	err := r.db.WithContext(ctx).
		Preload("Klient").
		Preload("Toode").
		Preload("Tootaja").
		Find(&lepingud).Error
	if err != nil {
		return nil, err
	}
	return lepingud, nil
}

func (r *lepingRepository) Update(ctx context.Context, leping *model.Leping) error {
	return r.db.WithContext(ctx).Save(leping).Error
}

func (r *lepingRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Leping{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
