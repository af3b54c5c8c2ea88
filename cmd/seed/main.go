package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/sarvessh05/TenderHub/internal/config"
	"github.com/sarvessh05/TenderHub/internal/db"
	"github.com/sarvessh05/TenderHub/internal/model"
	"github.com/sarvessh05/TenderHub/internal/repository"
)

const seedPassword = "password123"

type seedCompany struct {
	user    model.User
	company model.Company
	tenders []model.Tender
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.Tender{},
		&model.Application{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), 10)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	seeds := []seedCompany{
		{
			user: model.User{Name: "Asha Rao", Email: "asha@northstar.example", PasswordHash: string(hash)},
			company: model.Company{
				Name:        "Northstar Logistics",
				Industry:    "Logistics",
				Description: "Regional freight and last-mile delivery.",
			},
			tenders: []model.Tender{
				{
					Title:       "Fleet telematics rollout",
					Description: "GPS and fuel telemetry for 140 trucks.",
					Deadline:    time.Now().AddDate(0, 2, 0),
					Budget:      decimal.NewFromInt(85000),
				},
				{
					Title:       "Warehouse WMS replacement",
					Description: "Replace legacy warehouse management system across 3 sites.",
					Deadline:    time.Now().AddDate(0, 3, 0),
					Budget:      decimal.NewFromInt(220000),
				},
			},
		},
		{
			user: model.User{Name: "Leo Tanaka", Email: "leo@bluegrid.example", PasswordHash: string(hash)},
			company: model.Company{
				Name:        "BlueGrid Energy",
				Industry:    "Energy",
				Description: "Commercial solar installation and maintenance.",
			},
			tenders: []model.Tender{
				{
					Title:       "Panel cleaning contract",
					Description: "Quarterly cleaning for 12 commercial rooftop arrays.",
					Deadline:    time.Now().AddDate(0, 1, 15),
					Budget:      decimal.NewFromInt(36000),
				},
			},
		},
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	companyRepo := repository.NewCompanyRepository(gormDB)
	tenderRepo := repository.NewTenderRepository(gormDB)

	created := 0
	for _, seed := range seeds {
		if existing, err := userRepo.FindByEmail(ctx, seed.user.Email); err == nil && existing != nil {
			log.Printf("Skipping %s, already seeded", seed.user.Email)
			continue
		}

		user := seed.user
		if err := userRepo.Create(ctx, &user); err != nil {
			log.Fatalf("Failed to seed user %s: %v", user.Email, err)
		}

		company := seed.company
		company.UserID = user.ID
		if err := companyRepo.Create(ctx, &company); err != nil {
			log.Fatalf("Failed to seed company %s: %v", company.Name, err)
		}

		for _, t := range seed.tenders {
			tender := t
			tender.CompanyID = company.ID
			if err := tenderRepo.Create(ctx, &tender); err != nil {
				log.Fatalf("Failed to seed tender %s: %v", tender.Title, err)
			}
		}
		created++
	}

	log.Printf("Seed complete: %d companies created (password %q for all seed users)", created, seedPassword)
}
