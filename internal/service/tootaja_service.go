package service

import (
	"context"

	"gorm.io/gorm"

	"pandimaja/internal/errors"
	"pandimaja/internal/model"
	"pandimaja/internal/repository"
)

// TootajaService exposes employee lookups for the admin surface.
// Employee creation goes through AuthService.Register only.
type TootajaService interface {
	Get(ctx context.Context, id uint) (*model.Tootaja, error)
	List(ctx context.Context) ([]model.Tootaja, error)
}

type tootajaService struct {
	repo repository.TootajaRepository
}

// NewTootajaService builds a TootajaService.
func NewTootajaService(repo repository.TootajaRepository) TootajaService {
	return &tootajaService{repo: repo}
}

func (s *tootajaService) Get(ctx context.Context, id uint) (*model.Tootaja, error) {
	tootaja, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTootajaNotFound
		}
		return nil, err
	}
	return tootaja, nil
}

func (s *tootajaService) List(ctx context.Context) ([]model.Tootaja, error) {
	return s.repo.List(ctx)
}
