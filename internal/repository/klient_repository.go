package repository

import (
	"context"

	"gorm.io/gorm"

	"pandimaja/internal/model"
)

// KlientSearch holds the optional filters of the client search endpoint.
// Empty fields are ignored.
type KlientSearch struct {
	Nimi          string
	Perekonnanimi string
	Kood          string
}

// KlientRepository defines persistence operations for clients.
type KlientRepository interface {
	Create(ctx context.Context, klient *model.Klient) error
	FindByID(ctx context.Context, id uint) (*model.Klient, error)
	List(ctx context.Context) ([]model.Klient, error)
	Search(ctx context.Context, filter KlientSearch) ([]model.Klient, error)
	Update(ctx context.Context, klient *model.Klient) error
}

type klientRepository struct {
	db *gorm.DB
}

// NewKlientRepository builds a GORM-backed repository.
func NewKlientRepository(db *gorm.DB) KlientRepository {
	return &klientRepository{db: db}
}

func (r *klientRepository) Create(ctx context.Context, klient *model.Klient) error {
	return r.db.WithContext(ctx).Create(klient).Error
}

func (r *klientRepository) FindByID(ctx context.Context, id uint) (*model.Klient, error) {
	var klient model.Klient
	if err := r.db.WithContext(ctx).First(&klient, id).Error; err != nil {
		return nil, err
	}
	return &klient, nil
}

func (r *klientRepository) List(ctx context.Context) ([]model.Klient, error) {
	var klients []model.Klient
	if err := r.db.WithContext(ctx).Find(&klients).Error; err != nil {
		return nil, err
	}
	return klients, nil
}

func (r *klientRepository) Search(ctx context.Context, filter KlientSearch) ([]model.Klient, error) {
	q := r.db.WithContext(ctx)
	if filter.Nimi != "" {
		q = q.Where("nimi LIKE ?", "%"+filter.Nimi+"%")
	}
	if filter.Perekonnanimi != "" {
		q = q.Where("perekonnanimi LIKE ?", "%"+filter.Perekonnanimi+"%")
	}
	if filter.Kood != "" {
		q = q.Where("kood = ?", filter.Kood)
	}

	var klients []model.Klient
	if err := q.Find(&klients).Error; err != nil {
		return nil, err
	}
	return klients, nil
}

func (r *klientRepository) Update(ctx context.Context, klient *model.Klient) error {
	return r.db.WithContext(ctx).Save(klient).Error
}
