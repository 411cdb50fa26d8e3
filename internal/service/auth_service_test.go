package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"pandimaja/internal/auth"
	"pandimaja/internal/model"
)

// MockTootajaRepository is a mock implementation of TootajaRepository.
type MockTootajaRepository struct {
	mock.Mock
}

func (m *MockTootajaRepository) Create(ctx context.Context, tootaja *model.Tootaja) error {
	args := m.Called(ctx, tootaja)
	return args.Error(0)
}

func (m *MockTootajaRepository) FindByID(ctx context.Context, id uint) (*model.Tootaja, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tootaja), args.Error(1)
}

func (m *MockTootajaRepository) FindByKood(ctx context.Context, kood string) (*model.Tootaja, error) {
	args := m.Called(ctx, kood)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tootaja), args.Error(1)
}

func (m *MockTootajaRepository) List(ctx context.Context) ([]model.Tootaja, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Tootaja), args.Error(1)
}

// MockRoleRepository is a mock implementation of RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id uint) (*model.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]model.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

// userRole is returned by role lookups in the happy paths.
var userRole = &model.Role{RoleID: uint(auth.RoleUser), RoleName: "user"}

func registerInput(kood string) RegisterInput {
	return RegisterInput{
		Nimi:          "Mari",
		Perekonnanimi: "Maasikas",
		Kood:          kood,
		Pass:          "secret",
		RoleID:        uint(auth.RoleUser),
	}
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		input         RegisterInput
		setupMock     func(*MockTootajaRepository, *MockRoleRepository)
		expectedError error
	}{
		{
			name:  "successful registration",
			input: registerInput("E001"),
			setupMock: func(m *MockTootajaRepository, mRole *MockRoleRepository) {
				m.On("FindByKood", mock.Anything, "E001").Return(nil, gorm.ErrRecordNotFound)
				mRole.On("FindByID", mock.Anything, uint(auth.RoleUser)).Return(userRole, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Tootaja")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Tootaja).TootajaID = 7
				})
			},
			expectedError: nil,
		},
		{
			name:  "kood already exists",
			input: registerInput("E001"),
			setupMock: func(m *MockTootajaRepository, mRole *MockRoleRepository) {
				m.On("FindByKood", mock.Anything, "E001").Return(&model.Tootaja{Kood: "E001"}, nil)
			},
			expectedError: ErrKoodTaken,
		},
		{
			name:  "lost race on unique index",
			input: registerInput("E002"),
			setupMock: func(m *MockTootajaRepository, mRole *MockRoleRepository) {
				m.On("FindByKood", mock.Anything, "E002").Return(nil, gorm.ErrRecordNotFound)
				mRole.On("FindByID", mock.Anything, uint(auth.RoleUser)).Return(userRole, nil)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Tootaja")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: ErrKoodTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTootajaRepository)
			mockRoleRepo := new(MockRoleRepository)
			tt.setupMock(mockRepo, mockRoleRepo)

			jwtService := auth.NewJWTService("test-secret", time.Hour)
			service := NewAuthService(mockRepo, mockRoleRepo, jwtService)

			userID, err := service.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Zero(t, userID)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, userID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_NeverStoresPlaintext(t *testing.T) {
	mockRepo := new(MockTootajaRepository)
	mockRepo.On("FindByKood", mock.Anything, "E001").Return(nil, gorm.ErrRecordNotFound)

	var stored *model.Tootaja
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Tootaja")).Return(nil).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*model.Tootaja)
	})

	mockRoleRepo := new(MockRoleRepository)
	mockRoleRepo.On("FindByID", mock.Anything, uint(auth.RoleUser)).Return(userRole, nil)

	jwtService := auth.NewJWTService("test-secret", time.Hour)
	service := NewAuthService(mockRepo, mockRoleRepo, jwtService)

	_, err := service.Register(context.Background(), registerInput("E001"))
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.NotEqual(t, "secret", stored.PassHash)
	assert.True(t, auth.CheckPassword("secret", stored.PassHash))
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := auth.HashPassword("secret")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		kood          string
		pass          string
		setupMock     func(*MockTootajaRepository)
		expectedError error
	}{
		{
			name: "successful login",
			kood: "E001",
			pass: "secret",
			setupMock: func(m *MockTootajaRepository) {
				m.On("FindByKood", mock.Anything, "E001").Return(&model.Tootaja{
					TootajaID: 7,
					Kood:      "E001",
					PassHash:  hashed,
					RoleID:    uint(auth.RoleUser),
				}, nil)
			},
			expectedError: nil,
		},
		{
			name: "unknown kood",
			kood: "NOPE",
			pass: "secret",
			setupMock: func(m *MockTootajaRepository) {
				m.On("FindByKood", mock.Anything, "NOPE").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			kood: "E001",
			pass: "wrong",
			setupMock: func(m *MockTootajaRepository) {
				m.On("FindByKood", mock.Anything, "E001").Return(&model.Tootaja{
					TootajaID: 7,
					Kood:      "E001",
					PassHash:  hashed,
					RoleID:    uint(auth.RoleUser),
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTootajaRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret", time.Hour)
			service := NewAuthService(mockRepo, new(MockRoleRepository), jwtService)

			token, err := service.Login(context.Background(), tt.kood, tt.pass)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				// The issued token must carry the principal and role back out.
				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, uint(7), claims.TootajaID)
				assert.Equal(t, uint(auth.RoleUser), claims.RoleID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_StoreOutageIsNotACredentialsFailure(t *testing.T) {
	mockRepo := new(MockTootajaRepository)
	mockRepo.On("FindByKood", mock.Anything, "E001").Return(nil, errors.New("dial tcp 127.0.0.1:3306: connect: connection refused"))

	jwtService := auth.NewJWTService("test-secret", time.Hour)
	service := NewAuthService(mockRepo, new(MockRoleRepository), jwtService)

	token, err := service.Login(context.Background(), "E001", "secret")
	assert.Empty(t, token)
	assert.Error(t, err)
	// Only an absent record may be reported as bad credentials; anything
	// else must reach the handler's server-error path.
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_FailurePathsIndistinguishable(t *testing.T) {
	hashed, err := auth.HashPassword("secret")
	assert.NoError(t, err)

	mockRepo := new(MockTootajaRepository)
	mockRepo.On("FindByKood", mock.Anything, "NOPE").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByKood", mock.Anything, "E001").Return(&model.Tootaja{
		TootajaID: 7,
		Kood:      "E001",
		PassHash:  hashed,
		RoleID:    uint(auth.RoleUser),
	}, nil)

	jwtService := auth.NewJWTService("test-secret", time.Hour)
	service := NewAuthService(mockRepo, new(MockRoleRepository), jwtService)

	_, errUnknown := service.Login(context.Background(), "NOPE", "secret")
	_, errWrongPass := service.Login(context.Background(), "E001", "wrong")

	// A caller probing for login codes must not be able to tell these apart.
	assert.Equal(t, errUnknown, errWrongPass)
	assert.Equal(t, ErrInvalidCredentials, errUnknown)
}
