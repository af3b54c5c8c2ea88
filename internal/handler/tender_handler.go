package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/sarvessh05/TenderHub/internal/errors"
	"github.com/sarvessh05/TenderHub/internal/service"
)

const (
	defaultPage  = 1
	defaultLimit = 5
)

// TenderHandler handles tender endpoints.
type TenderHandler struct {
	tenderService service.TenderService
}

// NewTenderHandler creates a new tender handler.
func NewTenderHandler(tenderService service.TenderService) *TenderHandler {
	return &TenderHandler{tenderService: tenderService}
}

// CreateTenderRequest represents a tender create request.
type CreateTenderRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Deadline    string          `json:"deadline" validate:"required"`
	Budget      decimal.Decimal `json:"budget"`
}

// Create godoc
// @Summary Publish a tender owned by the caller's company
// @Tags tender
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTenderRequest true "Tender"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tender/create [post]
func (h *TenderHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateTenderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tender, err := h.tenderService.Create(c.Request().Context(), claims.UserID, service.TenderInput{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Budget:      req.Budget,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, echo.Map{"tender": tender})
}

// ListAll godoc
// @Summary List tenders, newest first
// @Tags tender
// @Produce json
// @Param page query int false "Page number, starting at 1"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /tender/all [get]
func (h *TenderHandler) ListAll(c echo.Context) error {
	page, err := queryInt(c, "page", defaultPage)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	limit, err := queryInt(c, "limit", defaultLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	tenders, meta, err := h.tenderService.ListAll(c.Request().Context(), page, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"tenders":    tenders,
		"pagination": meta,
	})
}

// queryInt parses a positive integer query parameter, falling back to a
// default when absent. Present-but-invalid values are an error, not a
// silent fallback.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return v, nil
}
