package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pandimaja/internal/auth"
	"pandimaja/internal/handler"
	"pandimaja/internal/model"
	"pandimaja/internal/repository"
	"pandimaja/internal/service"
)

// fakeTootajaRepo is an in-memory principal store. Its map insert under a
// mutex mirrors the unique-index guarantee of the real table.
type fakeTootajaRepo struct {
	mu     sync.Mutex
	nextID uint
	byKood map[string]*model.Tootaja
}

func newFakeTootajaRepo() *fakeTootajaRepo {
	return &fakeTootajaRepo{byKood: make(map[string]*model.Tootaja)}
}

func (r *fakeTootajaRepo) Create(_ context.Context, tootaja *model.Tootaja) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byKood[tootaja.Kood]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	tootaja.TootajaID = r.nextID
	r.byKood[tootaja.Kood] = tootaja
	return nil
}

func (r *fakeTootajaRepo) FindByID(_ context.Context, id uint) (*model.Tootaja, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tootaja := range r.byKood {
		if tootaja.TootajaID == id {
			return tootaja, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTootajaRepo) FindByKood(_ context.Context, kood string) (*model.Tootaja, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tootaja, ok := r.byKood[kood]; ok {
		return tootaja, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTootajaRepo) List(_ context.Context) ([]model.Tootaja, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Tootaja, 0, len(r.byKood))
	for _, tootaja := range r.byKood {
		out = append(out, *tootaja)
	}
	return out, nil
}

// fakeRoleRepo resolves only the two seeded roles.
type fakeRoleRepo struct{}

func (fakeRoleRepo) FindByID(_ context.Context, id uint) (*model.Role, error) {
	switch auth.Role(id) {
	case auth.RoleAdmin:
		return &model.Role{RoleID: id, RoleName: "admin"}, nil
	case auth.RoleUser:
		return &model.Role{RoleID: id, RoleName: "user"}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (fakeRoleRepo) List(context.Context) ([]model.Role, error) {
	return []model.Role{
		{RoleID: uint(auth.RoleAdmin), RoleName: "admin"},
		{RoleID: uint(auth.RoleUser), RoleName: "user"},
	}, nil
}

// fakeKlientRepo holds no data; the scenario only lists it.
type fakeKlientRepo struct{}

func (fakeKlientRepo) Create(context.Context, *model.Klient) error { return nil }
func (fakeKlientRepo) FindByID(context.Context, uint) (*model.Klient, error) {
	return nil, gorm.ErrRecordNotFound
}
func (fakeKlientRepo) List(context.Context) ([]model.Klient, error) { return []model.Klient{}, nil }
func (fakeKlientRepo) Search(context.Context, repository.KlientSearch) ([]model.Klient, error) {
	return []model.Klient{}, nil
}
func (fakeKlientRepo) Update(context.Context, *model.Klient) error { return nil }

type fakeToodeRepo struct{}

func (fakeToodeRepo) Create(context.Context, *model.Toode) error { return nil }
func (fakeToodeRepo) FindByID(context.Context, uint) (*model.Toode, error) {
	return nil, gorm.ErrRecordNotFound
}
func (fakeToodeRepo) List(context.Context) ([]model.Toode, error) { return []model.Toode{}, nil }
func (fakeToodeRepo) SearchByNimetus(context.Context, string) ([]model.Toode, error) {
	return []model.Toode{}, nil
}
func (fakeToodeRepo) ListByStatus(context.Context, uint) ([]model.Toode, error) {
	return []model.Toode{}, nil
}
func (fakeToodeRepo) Update(context.Context, *model.Toode) error { return nil }
func (fakeToodeRepo) Delete(context.Context, uint) error         { return nil }

type fakeLepingRepo struct{}

func (fakeLepingRepo) Create(context.Context, *model.Leping) error { return nil }
func (fakeLepingRepo) FindByID(context.Context, uint) (*model.Leping, error) {
	return nil, gorm.ErrRecordNotFound
}
func (fakeLepingRepo) List(context.Context) ([]model.Leping, error) { return []model.Leping{}, nil }
func (fakeLepingRepo) Update(context.Context, *model.Leping) error  { return nil }
func (fakeLepingRepo) Delete(context.Context, uint) error           { return gorm.ErrRecordNotFound }

func newTestApp(t *testing.T) *echo.Echo {
	t.Helper()

	jwtService := auth.NewJWTService("test-secret", time.Hour)

	authService := service.NewAuthService(newFakeTootajaRepo(), fakeRoleRepo{}, jwtService)
	klientService := service.NewKlientService(fakeKlientRepo{}, nil)
	toodeService := service.NewToodeService(fakeToodeRepo{}, nil)
	lepingService := service.NewLepingService(fakeLepingRepo{}, nil)
	tootajaService := service.NewTootajaService(newFakeTootajaRepo())

	e := echo.New()
	Register(
		e,
		jwtService,
		handler.NewAuthHandler(authService),
		handler.NewKlientHandler(klientService),
		handler.NewToodeHandler(toodeService, t.TempDir()),
		handler.NewLepingHandler(lepingService),
		handler.NewTootajaHandler(tootajaService),
	)
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func getWithToken(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterLoginAuthorizeScenario(t *testing.T) {
	e := newTestApp(t)

	// Register a regular employee.
	rec := postJSON(e, "/api/auth/register", `{"nimi":"Test","perekonnanimi":"Tester","kood":"T1","pass":"secret","role_id":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered struct {
		Message string `json:"message"`
		UserID  uint   `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.NotZero(t, registered.UserID)

	// Registering the same kood again fails with the duplicate message.
	rec = postJSON(e, "/api/auth/register", `{"nimi":"Test","perekonnanimi":"Tester","kood":"T1","pass":"other","role_id":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")

	// Wrong password: generic rejection.
	rec = postJSON(e, "/api/auth/login", `{"kood":"T1","pass":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials.")

	// Unknown kood: byte-for-byte the same rejection.
	recUnknown := postJSON(e, "/api/auth/login", `{"kood":"NOBODY","pass":"wrong"}`)
	assert.Equal(t, rec.Code, recUnknown.Code)
	assert.Equal(t, rec.Body.String(), recUnknown.Body.String())

	// Correct credentials yield a token.
	rec = postJSON(e, "/api/auth/login", `{"kood":"T1","pass":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	// The token opens employee-level routes.
	rec = getWithToken(e, "/api/klient", login.Token)
	assert.Equal(t, http.StatusOK, rec.Code)

	// But not admin-only ones: the principal is known, just underprivileged.
	rec = getWithToken(e, "/api/tootaja", login.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Without a token nothing past the gate is reachable.
	rec = getWithToken(e, "/api/klient", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMissingFieldsAreClientErrors(t *testing.T) {
	e := newTestApp(t)

	rec := postJSON(e, "/api/auth/register", `{"nimi":"Test"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please fill all required fields.")

	rec = postJSON(e, "/api/auth/login", `{"kood":"T1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please fill all fields.")
}
