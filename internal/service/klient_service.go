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

const klientCacheTTL = 5 * time.Minute

// KlientUpdate holds the optional fields of a partial client update.
// Nil fields are left untouched.
type KlientUpdate struct {
	Nimi          *string
	Perekonnanimi *string
	Tel           *string
	Aadres        *string
	Status        *model.KlientStatus
}

// KlientService exposes client operations.
type KlientService interface {
	Create(ctx context.Context, klient *model.Klient) (*model.Klient, error)
	Get(ctx context.Context, id uint) (*model.Klient, error)
	List(ctx context.Context) ([]model.Klient, error)
	Search(ctx context.Context, filter repository.KlientSearch) ([]model.Klient, error)
	Update(ctx context.Context, id uint, update KlientUpdate) (*model.Klient, error)
}

type klientService struct {
	repo  repository.KlientRepository
	cache *cache.Client
}

// NewKlientService builds a KlientService with repository and cache.
func NewKlientService(repo repository.KlientRepository, cache *cache.Client) KlientService {
	return &klientService{repo: repo, cache: cache}
}

func (s *klientService) cacheKey(id uint) string {
	return fmt.Sprintf("klient:%d", id)
}

func (s *klientService) Create(ctx context.Context, klient *model.Klient) (*model.Klient, error) {
	if klient.Status == "" {
		klient.Status = model.KlientStatusActive
	}
	if !klient.Status.Valid() {
		return nil, errors.ErrInvalidStatus
	}
	if err := s.repo.Create(ctx, klient); err != nil {
		return nil, err
	}
	return klient, nil
}

func (s *klientService) Get(ctx context.Context, id uint) (*model.Klient, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Klient
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	klient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrKlientNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(klient); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, klientCacheTTL)
	}
	return klient, nil
}

func (s *klientService) List(ctx context.Context) ([]model.Klient, error) {
	return s.repo.List(ctx)
}

func (s *klientService) Search(ctx context.Context, filter repository.KlientSearch) ([]model.Klient, error) {
	return s.repo.Search(ctx, filter)
}

func (s *klientService) Update(ctx context.Context, id uint, update KlientUpdate) (*model.Klient, error) {
	klient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrKlientNotFound
		}
		return nil, err
	}

	if update.Nimi != nil {
		klient.Nimi = *update.Nimi
	}
	if update.Perekonnanimi != nil {
		klient.Perekonnanimi = *update.Perekonnanimi
	}
	if update.Tel != nil {
		klient.Tel = *update.Tel
	}
	if update.Aadres != nil {
		klient.Aadres = *update.Aadres
	}
	if update.Status != nil {
		if !update.Status.Valid() {
			return nil, errors.ErrInvalidStatus
		}
		klient.Status = *update.Status
	}

	if err := s.repo.Update(ctx, klient); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return klient, nil
}
