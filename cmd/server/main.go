package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sarvessh05/TenderHub/internal/auth"
	"github.com/sarvessh05/TenderHub/internal/cache"
	"github.com/sarvessh05/TenderHub/internal/config"
	"github.com/sarvessh05/TenderHub/internal/db"
	"github.com/sarvessh05/TenderHub/internal/handler"
	"github.com/sarvessh05/TenderHub/internal/model"
	"github.com/sarvessh05/TenderHub/internal/repository"
	"github.com/sarvessh05/TenderHub/internal/router"
	"github.com/sarvessh05/TenderHub/internal/service"
	"github.com/sarvessh05/TenderHub/internal/storage"
)

// @title TenderHub API
// @version 1.0
// @description B2B tendering marketplace: companies publish tenders and submit proposals, with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	// Fail closed: serving bearer-authenticated routes without a signing
	// secret would make every token verification a silent bypass.
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set; refusing to start")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Tender{},
		&model.Application{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	logoStore, err := storage.NewS3LogoStore(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
	if err != nil {
		log.Fatalf("object storage init: %v", err)
	}
	if logoStore == nil {
		log.Println("S3_ENDPOINT not set, logo upload disabled")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	companyRepo := repository.NewCompanyRepository(gormDB)
	tenderRepo := repository.NewTenderRepository(gormDB)
	applicationRepo := repository.NewApplicationRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	var logos storage.LogoStore
	if logoStore != nil {
		logos = logoStore
	}
	companyService := service.NewCompanyService(companyRepo, logos, cacheClient)
	tenderService := service.NewTenderService(companyRepo, tenderRepo, cacheClient)
	applicationService := service.NewApplicationService(companyRepo, tenderRepo, applicationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	companyHandler := handler.NewCompanyHandler(companyService)
	tenderHandler := handler.NewTenderHandler(tenderService)
	applicationHandler := handler.NewApplicationHandler(applicationService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		companyHandler,
		tenderHandler,
		applicationHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
