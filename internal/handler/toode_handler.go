package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"pandimaja/internal/errors"
	"pandimaja/internal/model"
	"pandimaja/internal/service"
)

// ToodeHandler handles product endpoints.
type ToodeHandler struct {
	toodeService service.ToodeService
	uploadDir    string
}

// NewToodeHandler creates a new product handler. Uploaded images land in
// uploadDir under a generated filename.
func NewToodeHandler(toodeService service.ToodeService, uploadDir string) *ToodeHandler {
	return &ToodeHandler{toodeService: toodeService, uploadDir: uploadDir}
}

// ToodeRequest represents a product create/update request.
type ToodeRequest struct {
	Nimetus   string          `json:"nimetus" validate:"required"`
	Kirjaldus string          `json:"kirjaldus"`
	StatusID  uint            `json:"status_id" validate:"required"`
	Image     string          `json:"image"`
	Hind      decimal.Decimal `json:"hind" validate:"required"`
}

// Create godoc
// @Summary Create a new product
// @Tags toode
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ToodeRequest true "Product data"
// @Success 201 {object} model.Toode
// @Failure 400 {object} errors.ErrorResponse
// @Router /toode [post]
func (h *ToodeHandler) Create(c echo.Context) error {
	var req ToodeRequest
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

	toode, err := h.toodeService.Create(c.Request().Context(), &model.Toode{
		Nimetus:   req.Nimetus,
		Kirjaldus: req.Kirjaldus,
		StatusID:  req.StatusID,
		Image:     req.Image,
		Hind:      req.Hind,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, toode)
}

// List godoc
// @Summary List all products
// @Tags toode
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Toode
// @Router /toode [get]
func (h *ToodeHandler) List(c echo.Context) error {
	tooted, err := h.toodeService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tooted)
}

// Search godoc
// @Summary Search products by name
// @Tags toode
// @Produce json
// @Security BearerAuth
// @Param nimetus query string true "Product name"
// @Success 200 {array} model.Toode
// @Router /toode/search [get]
func (h *ToodeHandler) Search(c echo.Context) error {
	nimetus := c.QueryParam("nimetus")
	if nimetus == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "nimetus query parameter is required",
			Code:  "MISSING_QUERY",
		})
	}

	tooted, err := h.toodeService.SearchByNimetus(c.Request().Context(), nimetus)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tooted)
}

// Get godoc
// @Summary Get a product by ID
// @Tags toode
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} model.Toode
// @Failure 404 {object} errors.ErrorResponse
// @Router /toode/{id} [get]
func (h *ToodeHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	toode, err := h.toodeService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toode)
}

// Update godoc
// @Summary Update a product
// @Tags toode
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body ToodeRequest true "Product data"
// @Success 200 {object} model.Toode
// @Failure 404 {object} errors.ErrorResponse
// @Router /toode/{id} [put]
func (h *ToodeHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req ToodeRequest
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

	toode, err := h.toodeService.Update(c.Request().Context(), id, &model.Toode{
		Nimetus:   req.Nimetus,
		Kirjaldus: req.Kirjaldus,
		StatusID:  req.StatusID,
		Image:     req.Image,
		Hind:      req.Hind,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toode)
}

// Delete godoc
// @Summary Delete a product
// @Tags toode
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.ErrorResponse
// @Router /toode/{id} [delete]
func (h *ToodeHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.toodeService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// ListByStatus godoc
// @Summary List products with a given status
// @Tags toode
// @Produce json
// @Security BearerAuth
// @Param status_id path int true "Status ID"
// @Success 200 {array} model.Toode
// @Router /toode/status/{status_id} [get]
func (h *ToodeHandler) ListByStatus(c echo.Context) error {
	statusID, err := strconv.ParseUint(c.Param("status_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid status id",
			Code:  "INVALID_ID",
		})
	}

	tooted, err := h.toodeService.ListByStatus(c.Request().Context(), uint(statusID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, tooted)
}

// UploadImage godoc
// @Summary Upload a product image
// @Tags toode
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param image formData file true "Image file"
// @Success 200 {object} model.Toode
// @Failure 404 {object} errors.ErrorResponse
// @Router /toode/{id}/image [post]
func (h *ToodeHandler) UploadImage(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "image file is required",
			Code:  "MISSING_FILE",
		})
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "cannot read uploaded file",
			Code:  "INVALID_FILE",
		})
	}
	defer src.Close()

	// Store under a random name so uploads cannot collide or traverse paths.
	filename := uuid.New().String() + filepath.Ext(file.Filename)
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		c.Logger().Errorf("upload dir: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	dst, err := os.Create(filepath.Join(h.uploadDir, filename))
	if err != nil {
		c.Logger().Errorf("store upload: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		c.Logger().Errorf("store upload: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	toode, err := h.toodeService.SetImage(c.Request().Context(), id, filename)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, toode)
}
