package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"pandimaja/internal/cache"
	"pandimaja/internal/errors"
	"pandimaja/internal/model"
	"pandimaja/internal/repository"
)

const toodeCacheTTL = 5 * time.Minute

// ToodeService exposes product operations.
type ToodeService interface {
	Create(ctx context.Context, toode *model.Toode) (*model.Toode, error)
	Get(ctx context.Context, id uint) (*model.Toode, error)
	List(ctx context.Context) ([]model.Toode, error)
	SearchByNimetus(ctx context.Context, nimetus string) ([]model.Toode, error)
	ListByStatus(ctx context.Context, statusID uint) ([]model.Toode, error)
	Update(ctx context.Context, id uint, toode *model.Toode) (*model.Toode, error)
	Delete(ctx context.Context, id uint) error
	// SetImage records the stored image filename of a product.
	SetImage(ctx context.Context, id uint, filename string) (*model.Toode, error)
}

type toodeService struct {
	repo  repository.ToodeRepository
	cache *cache.Client
}

// NewToodeService builds a ToodeService with repository and cache.
func NewToodeService(repo repository.ToodeRepository, cache *cache.Client) ToodeService {
	return &toodeService{repo: repo, cache: cache}
}

func (s *toodeService) cacheKey(id uint) string {
	return fmt.Sprintf("toode:%d", id)
}

func (s *toodeService) Create(ctx context.Context, toode *model.Toode) (*model.Toode, error) {
	if err := s.repo.Create(ctx, toode); err != nil {
		return nil, err
	}
	return toode, nil
}

func (s *toodeService) Get(ctx context.Context, id uint) (*model.Toode, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Toode
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	toode, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrToodeNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(toode); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, toodeCacheTTL)
	}
	return toode, nil
}

func (s *toodeService) List(ctx context.Context) ([]model.Toode, error) {
	return s.repo.List(ctx)
}

func (s *toodeService) SearchByNimetus(ctx context.Context, nimetus string) ([]model.Toode, error) {
	return s.repo.SearchByNimetus(ctx, nimetus)
}

func (s *toodeService) ListByStatus(ctx context.Context, statusID uint) ([]model.Toode, error) {
	return s.repo.ListByStatus(ctx, statusID)
}

func (s *toodeService) Update(ctx context.Context, id uint, toode *model.Toode) (*model.Toode, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrToodeNotFound
		}
		return nil, err
	}

	existing.Nimetus = toode.Nimetus
	existing.Kirjaldus = toode.Kirjaldus
	existing.StatusID = toode.StatusID
	existing.Hind = toode.Hind
	if toode.Image != "" {
		existing.Image = toode.Image
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return existing, nil
}

func (s *toodeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrToodeNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

func (s *toodeService) SetImage(ctx context.Context, id uint, filename string) (*model.Toode, error) {
	toode, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrToodeNotFound
		}
		return nil, err
	}

	toode.Image = filename
	if err := s.repo.Update(ctx, toode); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return toode, nil
}
