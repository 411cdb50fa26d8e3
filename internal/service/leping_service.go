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

const lepingCacheTTL = 5 * time.Minute

// LepingService exposes pawn contract operations.
type LepingService interface {
	Create(ctx context.Context, leping *model.Leping) (*model.Leping, error)
	Get(ctx context.Context, id uint) (*model.Leping, error)
	List(ctx context.Context) ([]model.Leping, error)
	Update(ctx context.Context, id uint, leping *model.Leping) (*model.Leping, error)
	Delete(ctx context.Context, id uint) error
}

type lepingService struct {
	repo  repository.LepingRepository
	cache *cache.Client
}

// NewLepingService builds a LepingService with repository and cache.
func NewLepingService(repo repository.LepingRepository, cache *cache.Client) LepingService {
	return &lepingService{repo: repo, cache: cache}
}

func (s *lepingService) cacheKey(id uint) string {
	return fmt.Sprintf("leping:%d", id)
}

func (s *lepingService) Create(ctx context.Context, leping *model.Leping) (*model.Leping, error) {
	if err := ValidateLeping(leping); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, leping); err != nil {
		return nil, err
	}
	return leping, nil
}

func (s *lepingService) Get(ctx context.Context, id uint) (*model.Leping, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Leping
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	leping, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrLepingNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(leping); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, lepingCacheTTL)
	}
	return leping, nil
}

func (s *lepingService) List(ctx context.Context) ([]model.Leping, error) {
	return s.repo.List(ctx)
}

func (s *lepingService) Update(ctx context.Context, id uint, leping *model.Leping) (*model.Leping, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrLepingNotFound
		}
		return nil, err
	}

	if leping.Date != nil {
		existing.Date = leping.Date
	}
	if leping.DateValjaOstud != nil {
		existing.DateValjaOstud = leping.DateValjaOstud
	}
	if !leping.PantHind.IsZero() {
		existing.PantHind = leping.PantHind
	}
	if !leping.ValjaOstudHind.IsZero() {
		existing.ValjaOstudHind = leping.ValjaOstudHind
	}
	if !leping.Ostuhind.IsZero() {
		existing.Ostuhind = leping.Ostuhind
	}
	if !leping.Muugihind.IsZero() {
		existing.Muugihind = leping.Muugihind
	}
	if leping.LepingType != "" {
		existing.LepingType = leping.LepingType
	}

	if err := ValidateLeping(existing); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return existing, nil
}

func (s *lepingService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrLepingNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
