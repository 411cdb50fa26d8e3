package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pandimaja/internal/auth"
	"pandimaja/internal/model"
	"pandimaja/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when kood or password is incorrect.
	// Unknown kood and wrong password yield this same error so callers
	// cannot enumerate login codes.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrKoodTaken is returned when registering with an existing kood.
	ErrKoodTaken = errors.New("tootaja with this kood already exists")
)

// RegisterInput carries the profile fields of a new employee.
type RegisterInput struct {
	Nimi          string
	Perekonnanimi string
	Kood          string
	Tel           string
	Aadres        string
	Pass          string
	RoleID        uint
}

// AuthService handles employee registration and login.
type AuthService interface {
	// Register creates a new employee and returns its id. The plaintext
	// password is hashed before it reaches the store and is never returned.
	Register(ctx context.Context, input RegisterInput) (uint, error)
	// Login verifies credentials and issues a session token.
	Login(ctx context.Context, kood, pass string) (string, error)
}

type authService struct {
	tootajaRepo repository.TootajaRepository
	roleRepo    repository.RoleRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(tootajaRepo repository.TootajaRepository, roleRepo repository.RoleRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		tootajaRepo: tootajaRepo,
		roleRepo:    roleRepo,
		jwtService:  jwtService,
	}
}

// Register creates a new employee with a hashed password.
func (s *authService) Register(ctx context.Context, input RegisterInput) (uint, error) {
	// Best-effort pre-check; the unique index on kood is the authority
	// for concurrent registrations.
	existing, err := s.tootajaRepo.FindByKood(ctx, input.Kood)
	if err == nil && existing != nil {
		return 0, ErrKoodTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("check tootaja existence: %w", err)
	}

	// The role reference must resolve before the insert; a dangling role
	// id would otherwise poison every later authorization check.
	if _, err := s.roleRepo.FindByID(ctx, input.RoleID); err != nil {
		return 0, fmt.Errorf("resolve role %d: %w", input.RoleID, err)
	}

	hashed, err := auth.HashPassword(input.Pass)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	tootaja := &model.Tootaja{
		Nimi:          input.Nimi,
		Perekonnanimi: input.Perekonnanimi,
		Kood:          input.Kood,
		Tel:           input.Tel,
		Aadres:        input.Aadres,
		PassHash:      hashed,
		RoleID:        input.RoleID,
	}

	if err := s.tootajaRepo.Create(ctx, tootaja); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent registration with the same kood.
			return 0, ErrKoodTaken
		}
		return 0, fmt.Errorf("create tootaja: %w", err)
	}

	return tootaja.TootajaID, nil
}

// Login authenticates an employee and returns a signed session token.
func (s *authService) Login(ctx context.Context, kood, pass string) (string, error) {
	tootaja, err := s.tootajaRepo.FindByKood(ctx, kood)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		// A store outage is not a credentials failure; let it surface as
		// a server error.
		return "", fmt.Errorf("find tootaja: %w", err)
	}

	if !auth.CheckPassword(pass, tootaja.PassHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(tootaja.TootajaID, tootaja.RoleID)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}
