package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pandimaja/internal/errors"
	"pandimaja/internal/service"
)

// TootajaHandler handles the admin-only employee endpoints.
type TootajaHandler struct {
	tootajaService service.TootajaService
}

// NewTootajaHandler creates a new employee handler.
func NewTootajaHandler(tootajaService service.TootajaService) *TootajaHandler {
	return &TootajaHandler{tootajaService: tootajaService}
}

// List godoc
// @Summary List all employees
// @Tags tootaja
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Tootaja
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /tootaja [get]
func (h *TootajaHandler) List(c echo.Context) error {
	tootajad, err := h.tootajaService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tootajad)
}

// Get godoc
// @Summary Get an employee by ID
// @Tags tootaja
// @Produce json
// @Security BearerAuth
// @Param id path int true "Employee ID"
// @Success 200 {object} model.Tootaja
// @Failure 404 {object} errors.ErrorResponse
// @Router /tootaja/{id} [get]
func (h *TootajaHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	tootaja, err := h.tootajaService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tootaja)
}
