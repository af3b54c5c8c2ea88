package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/sarvessh05/TenderHub/internal/auth"
	"github.com/sarvessh05/TenderHub/internal/config"
	"github.com/sarvessh05/TenderHub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	companyHandler *handler.CompanyHandler,
	tenderHandler *handler.TenderHandler,
	applicationHandler *handler.ApplicationHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Bearer auth: tokens are parsed into the closed auth.Claims shape, and
	// both a missing and an invalid credential answer 401 (echo-jwt would
	// otherwise answer 400 for a missing header).
	requireAuth := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token")
		},
	})

	api := e.Group("/api")

	// Auth routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, requireAuth)

	// Company routes
	api.POST("/company/create", companyHandler.Create, requireAuth)
	api.GET("/company/me", companyHandler.Me, requireAuth)
	api.PUT("/company/update", companyHandler.Update, requireAuth)
	api.DELETE("/company/delete", companyHandler.Delete, requireAuth)
	api.GET("/company/search", companyHandler.Search)
	api.POST("/company/upload-logo", companyHandler.UploadLogo, requireAuth)

	// Tender routes
	api.POST("/tender/create", tenderHandler.Create, requireAuth)
	api.GET("/tender/all", tenderHandler.ListAll)

	// Application routes
	api.POST("/application/apply", applicationHandler.Apply, requireAuth)
	api.GET("/application/tender/:tenderId", applicationHandler.ProposalsForTender)
	api.GET("/application/my-proposals", applicationHandler.MyProposals, requireAuth)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
