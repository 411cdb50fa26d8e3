package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pandimaja/internal/errors"
	"pandimaja/internal/model"
	"pandimaja/internal/repository"
	"pandimaja/internal/service"
)

// KlientHandler handles client endpoints.
type KlientHandler struct {
	klientService service.KlientService
}

// NewKlientHandler creates a new client handler.
func NewKlientHandler(klientService service.KlientService) *KlientHandler {
	return &KlientHandler{klientService: klientService}
}

// CreateKlientRequest represents a client creation request.
type CreateKlientRequest struct {
	Nimi          string `json:"nimi" validate:"required"`
	Perekonnanimi string `json:"perekonnanimi" validate:"required"`
	Kood          string `json:"kood" validate:"required"`
	Tel           string `json:"tel"`
	Aadres        string `json:"aadres"`
	Status        string `json:"status" validate:"omitempty,oneof=active blocked"`
}

// UpdateKlientRequest represents a partial client update.
type UpdateKlientRequest struct {
	Nimi          *string `json:"nimi"`
	Perekonnanimi *string `json:"perekonnanimi"`
	Tel           *string `json:"tel"`
	Aadres        *string `json:"aadres"`
	Status        *string `json:"status" validate:"omitempty,oneof=active blocked"`
}

// Create godoc
// @Summary Add a new client
// @Tags klient
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateKlientRequest true "Client data"
// @Success 201 {object} model.Klient
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /klient [post]
func (h *KlientHandler) Create(c echo.Context) error {
	var req CreateKlientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}

	klient, err := h.klientService.Create(c.Request().Context(), &model.Klient{
		Nimi:          req.Nimi,
		Perekonnanimi: req.Perekonnanimi,
		Kood:          req.Kood,
		Tel:           req.Tel,
		Aadres:        req.Aadres,
		Status:        model.KlientStatus(req.Status),
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, klient)
}

// List godoc
// @Summary List all clients
// @Tags klient
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Klient
// @Router /klient [get]
func (h *KlientHandler) List(c echo.Context) error {
	klients, err := h.klientService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, klients)
}

// Search godoc
// @Summary Search clients by name, surname or kood
// @Tags klient
// @Produce json
// @Security BearerAuth
// @Param nimi query string false "First name"
// @Param perekonnanimi query string false "Surname"
// @Param kood query string false "Personal code"
// @Success 200 {array} model.Klient
// @Router /klient/search [get]
func (h *KlientHandler) Search(c echo.Context) error {
	filter := repository.KlientSearch{
		Nimi:          c.QueryParam("nimi"),
		Perekonnanimi: c.QueryParam("perekonnanimi"),
		Kood:          c.QueryParam("kood"),
	}

	klients, err := h.klientService.Search(c.Request().Context(), filter)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, klients)
}

// Get godoc
// @Summary Get a client by ID
// @Tags klient
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Success 200 {object} model.Klient
// @Failure 404 {object} errors.ErrorResponse
// @Router /klient/{id} [get]
func (h *KlientHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	klient, err := h.klientService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, klient)
}

// Update godoc
// @Summary Update a client
// @Tags klient
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client ID"
// @Param request body UpdateKlientRequest true "Fields to update"
// @Success 200 {object} model.Klient
// @Failure 404 {object} errors.ErrorResponse
// @Router /klient/{id} [patch]
func (h *KlientHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateKlientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}

	update := service.KlientUpdate{
		Nimi:          req.Nimi,
		Perekonnanimi: req.Perekonnanimi,
		Tel:           req.Tel,
		Aadres:        req.Aadres,
	}
	if req.Status != nil {
		status := model.KlientStatus(*req.Status)
		update.Status = &status
	}

	klient, err := h.klientService.Update(c.Request().Context(), id, update)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, klient)
}

// parseIDParam reads the :id path parameter as an unsigned integer.
func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
