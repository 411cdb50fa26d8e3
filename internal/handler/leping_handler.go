package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"pandimaja/internal/errors"
	"pandimaja/internal/model"
	"pandimaja/internal/service"
)

// dateLayout is the wire format of leping date fields.
const dateLayout = "2006-01-02"

// LepingHandler handles pawn contract endpoints.
type LepingHandler struct {
	lepingService service.LepingService
}

// NewLepingHandler creates a new contract handler.
func NewLepingHandler(lepingService service.LepingService) *LepingHandler {
	return &LepingHandler{lepingService: lepingService}
}

// LepingRequest represents a contract create/update request. Dates use the
// YYYY-MM-DD format.
type LepingRequest struct {
	KlientID       uint            `json:"klient_id" validate:"required"`
	ToodeID        uint            `json:"toode_id" validate:"required"`
	TootajaID      uint            `json:"tootaja_id" validate:"required"`
	Date           string          `json:"date"`
	DateValjaOstud string          `json:"date_valja_ostud"`
	PantHind       decimal.Decimal `json:"pant_hind"`
	ValjaOstudHind decimal.Decimal `json:"valja_ostud_hind"`
	Ostuhind       decimal.Decimal `json:"ostuhind"`
	Muugihind      decimal.Decimal `json:"muugihind"`
	LepingType     string          `json:"leping_type"`
}

// toModel converts the request into a Leping, parsing date fields.
func (r *LepingRequest) toModel() (*model.Leping, error) {
	leping := &model.Leping{
		KlientID:       r.KlientID,
		ToodeID:        r.ToodeID,
		TootajaID:      r.TootajaID,
		PantHind:       r.PantHind,
		ValjaOstudHind: r.ValjaOstudHind,
		Ostuhind:       r.Ostuhind,
		Muugihind:      r.Muugihind,
		LepingType:     r.LepingType,
	}

	if r.Date != "" {
		d, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return nil, err
		}
		leping.Date = &d
	}
	if r.DateValjaOstud != "" {
		d, err := time.Parse(dateLayout, r.DateValjaOstud)
		if err != nil {
			return nil, err
		}
		leping.DateValjaOstud = &d
	}

	return leping, nil
}

// Create godoc
// @Summary Create a new pawn contract
// @Tags leping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LepingRequest true "Contract data"
// @Success 201 {object} model.Leping
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /leping [post]
func (h *LepingHandler) Create(c echo.Context) error {
	var req LepingRequest
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

	leping, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
			Code:  "INVALID_DATE",
		})
	}

	created, err := h.lepingService.Create(c.Request().Context(), leping)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List all contracts with client, product and employee data
// @Tags leping
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Leping
// @Router /leping [get]
func (h *LepingHandler) List(c echo.Context) error {
	lepingud, err := h.lepingService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, lepingud)
}

// Get godoc
// @Summary Get a contract by ID
// @Tags leping
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contract ID"
// @Success 200 {object} model.Leping
// @Failure 404 {object} errors.ErrorResponse
// @Router /leping/{id} [get]
func (h *LepingHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	leping, err := h.lepingService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, leping)
}

// Update godoc
// @Summary Update a contract
// @Tags leping
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contract ID"
// @Param request body LepingRequest true "Fields to update"
// @Success 200 {object} model.Leping
// @Failure 404 {object} errors.ErrorResponse
// @Router /leping/{id} [put]
func (h *LepingHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req LepingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	leping, err := req.toModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
			Code:  "INVALID_DATE",
		})
	}

	updated, err := h.lepingService.Update(c.Request().Context(), id, leping)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a contract
// @Tags leping
// @Security BearerAuth
// @Param id path int true "Contract ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.ErrorResponse
// @Router /leping/{id} [delete]
func (h *LepingHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.lepingService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
