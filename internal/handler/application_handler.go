package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/sarvessh05/TenderHub/internal/errors"
	"github.com/sarvessh05/TenderHub/internal/service"
)

// ApplicationHandler handles proposal endpoints.
type ApplicationHandler struct {
	applicationService service.ApplicationService
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(applicationService service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// ApplyRequest represents a proposal submission.
type ApplyRequest struct {
	TenderID         uint            `json:"tender_id" validate:"required"`
	Proposal         string          `json:"proposal" validate:"required"`
	ProposedBudget   decimal.Decimal `json:"proposed_budget"`
	ProposedTimeline string          `json:"proposed_timeline" validate:"required"`
}

// Apply godoc
// @Summary Submit a proposal against a tender
// @Tags application
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ApplyRequest true "Proposal"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /application/apply [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req ApplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	application, err := h.applicationService.Apply(c.Request().Context(), claims.UserID, service.ApplicationInput{
		TenderID:         req.TenderID,
		Proposal:         req.Proposal,
		ProposedBudget:   req.ProposedBudget,
		ProposedTimeline: req.ProposedTimeline,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, echo.Map{"application": application})
}

// ProposalsForTender godoc
// @Summary List all proposals submitted against a tender
// @Tags application
// @Produce json
// @Param tenderId path int true "Tender ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /application/tender/{tenderId} [get]
func (h *ApplicationHandler) ProposalsForTender(c echo.Context) error {
	tenderID, err := strconv.ParseUint(c.Param("tenderId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tender id")
	}

	proposals, err := h.applicationService.ProposalsForTender(c.Request().Context(), uint(tenderID))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"proposals": proposals})
}

// MyProposals godoc
// @Summary List the proposals submitted by the caller's company
// @Tags application
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /application/my-proposals [get]
func (h *ApplicationHandler) MyProposals(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	proposals, err := h.applicationService.MyProposals(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"proposals": proposals})
}
