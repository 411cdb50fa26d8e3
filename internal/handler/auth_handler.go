package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pandimaja/internal/errors"
	"pandimaja/internal/service"
)

// AuthHandler handles the public authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents an employee registration request.
type RegisterRequest struct {
	Nimi          string `json:"nimi" validate:"required"`
	Perekonnanimi string `json:"perekonnanimi" validate:"required"`
	Kood          string `json:"kood" validate:"required"`
	Tel           string `json:"tel"`
	Aadres        string `json:"aadres"`
	Pass          string `json:"pass" validate:"required"`
	RoleID        uint   `json:"role_id" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Kood string `json:"kood" validate:"required"`
	Pass string `json:"pass" validate:"required"`
}

// RegisterResponse represents a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Register godoc
// @Summary Register a new employee
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "Please fill all required fields.",
			Code:  "MISSING_FIELDS",
		})
	}

	userID, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Nimi:          req.Nimi,
		Perekonnanimi: req.Perekonnanimi,
		Kood:          req.Kood,
		Tel:           req.Tel,
		Aadres:        req.Aadres,
		Pass:          req.Pass,
		RoleID:        req.RoleID,
	})
	if err != nil {
		if err == service.ErrKoodTaken {
			// Registration deliberately discloses the collision; login never does.
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "User with this kood already exists.",
				Code:  "KOOD_TAKEN",
			})
		}
		c.Logger().Errorf("register: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "Server error during registration.",
			Code:  "REGISTRATION_FAILED",
		})
	}

	return c.JSON(http.StatusCreated, RegisterResponse{
		Message: "User registered successfully!",
		UserID:  userID,
	})
}

// Login godoc
// @Summary Login with kood and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "Please fill all fields.",
			Code:  "MISSING_FIELDS",
		})
	}

	token, err := h.authService.Login(c.Request().Context(), req.Kood, req.Pass)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "Invalid credentials.",
				Code:  "INVALID_CREDENTIALS",
			})
		}
		c.Logger().Errorf("login: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "Server error during login.",
			Code:  "LOGIN_FAILED",
		})
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token})
}
