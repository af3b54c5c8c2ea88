package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sarvessh05/TenderHub/internal/errors"
	"github.com/sarvessh05/TenderHub/internal/service"
)

// CompanyHandler handles company profile endpoints.
type CompanyHandler struct {
	companyService service.CompanyService
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CompanyRequest represents a company create or update request.
type CompanyRequest struct {
	Name        string  `json:"name" validate:"required"`
	Industry    string  `json:"industry" validate:"required"`
	Description string  `json:"description" validate:"required"`
	LogoURL     *string `json:"logo_url"`
}

// Create godoc
// @Summary Create the caller's company profile
// @Tags company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CompanyRequest true "Company profile"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /company/create [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.companyService.Create(c.Request().Context(), claims.UserID, service.CompanyInput{
		Name:        req.Name,
		Industry:    req.Industry,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "company created successfully",
		"company": company,
	})
}

// Me godoc
// @Summary Get the caller's company profile
// @Tags company
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /company/me [get]
func (h *CompanyHandler) Me(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	company, err := h.companyService.ResolveByUser(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"company": company})
}

// Update godoc
// @Summary Update the caller's company profile
// @Tags company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CompanyRequest true "Company profile"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /company/update [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.companyService.Update(c.Request().Context(), claims.UserID, service.CompanyInput{
		Name:        req.Name,
		Industry:    req.Industry,
		Description: req.Description,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "company updated successfully",
		"company": company,
	})
}

// Delete godoc
// @Summary Delete the caller's company profile
// @Tags company
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /company/delete [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	if err := h.companyService.Delete(c.Request().Context(), claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "company deleted successfully"})
}

// Search godoc
// @Summary Search companies by name or industry
// @Tags company
// @Produce json
// @Param query query string true "Search term"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /company/search [get]
func (h *CompanyHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing query parameter")
	}

	companies, err := h.companyService.Search(c.Request().Context(), query)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{"companies": companies})
}

// UploadLogo godoc
// @Summary Upload the caller's company logo
// @Tags company
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param logo formData file true "Logo image"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /company/upload-logo [post]
func (h *CompanyHandler) UploadLogo(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	logoURL, err := h.companyService.UploadLogo(c.Request().Context(), claims.UserID, file, fileHeader.Size, contentType)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "logo uploaded successfully",
		"logo_url": logoURL,
	})
}
