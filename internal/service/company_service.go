package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sarvessh05/TenderHub/internal/cache"
	"github.com/sarvessh05/TenderHub/internal/errors"
	"github.com/sarvessh05/TenderHub/internal/model"
	"github.com/sarvessh05/TenderHub/internal/repository"
	"github.com/sarvessh05/TenderHub/internal/storage"
)

const searchCacheTTL = 1 * time.Minute

// CompanyInput carries the mutable company profile fields.
type CompanyInput struct {
	Name        string
	Industry    string
	Description string
	LogoURL     *string
}

// CompanyService handles company profiles. ResolveByUser is the identity
// resolver every owner-scoped operation goes through: the token only
// carries the user, and the user-to-company mapping is re-queried on each
// call rather than cached.
type CompanyService interface {
	Create(ctx context.Context, userID uint, input CompanyInput) (*model.Company, error)
	ResolveByUser(ctx context.Context, userID uint) (*model.Company, error)
	Update(ctx context.Context, userID uint, input CompanyInput) (*model.Company, error)
	Delete(ctx context.Context, userID uint) error
	Search(ctx context.Context, query string) ([]model.Company, error)
	UploadLogo(ctx context.Context, userID uint, reader io.Reader, size int64, contentType string) (string, error)
}

type companyService struct {
	companyRepo repository.CompanyRepository
	logoStore   storage.LogoStore
	cache       *cache.Client
}

// NewCompanyService creates a new company service. logoStore may be nil
// when object storage is not configured; uploads then fail closed.
func NewCompanyService(companyRepo repository.CompanyRepository, logoStore storage.LogoStore, cache *cache.Client) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		logoStore:   logoStore,
		cache:       cache,
	}
}

// Create inserts the caller's company profile. The existence check gives a
// clean 409 on the common path; the unique index on user_id is what makes
// the invariant hold when two creates race, with the losing insert mapped
// to the same conflict error.
func (s *companyService) Create(ctx context.Context, userID uint, input CompanyInput) (*model.Company, error) {
	existing, err := s.companyRepo.FindByUserID(ctx, userID)
	if err == nil && existing != nil {
		return nil, errors.ErrCompanyExists
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check company existence: %w", err)
	}

	company := &model.Company{
		UserID:      userID,
		Name:        input.Name,
		Industry:    input.Industry,
		Description: input.Description,
		LogoURL:     input.LogoURL,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrCompanyExists
		}
		return nil, fmt.Errorf("create company: %w", err)
	}

	return company, nil
}

// ResolveByUser maps the authenticated user to their company.
func (s *companyService) ResolveByUser(ctx context.Context, userID uint) (*model.Company, error) {
	return resolveCompany(ctx, s.companyRepo, userID)
}

// resolveCompany is the user-to-company lookup shared by every owner-scoped
// service. Absence is ErrCompanyNotFound (404), which callers keep distinct
// from a missing or invalid credential (401).
func resolveCompany(ctx context.Context, repo repository.CompanyRepository, userID uint) (*model.Company, error) {
	company, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return company, nil
}

// Update rewrites the caller's company profile in place.
func (s *companyService) Update(ctx context.Context, userID uint, input CompanyInput) (*model.Company, error) {
	company, err := s.ResolveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	company.Name = input.Name
	company.Industry = input.Industry
	company.Description = input.Description
	company.LogoURL = input.LogoURL

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}

	return company, nil
}

// Delete removes the caller's company profile.
func (s *companyService) Delete(ctx context.Context, userID uint) error {
	rows, err := s.companyRepo.DeleteByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if rows == 0 {
		return errors.ErrCompanyNotFound
	}
	return nil
}

// Search finds companies by name or industry, case-insensitively. Results
// are cached briefly; a cache outage degrades to plain DB reads.
func (s *companyService) Search(ctx context.Context, query string) ([]model.Company, error) {
	key := "companies:search:" + query
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Company
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	companies, err := s.companyRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}

	if payload, err := json.Marshal(companies); err == nil {
		_ = s.cache.Set(ctx, key, payload, searchCacheTTL)
	}
	return companies, nil
}

// UploadLogo stores the file and persists its public URL on the caller's
// company. One blocking upload, no retry: failures surface to the caller.
func (s *companyService) UploadLogo(ctx context.Context, userID uint, reader io.Reader, size int64, contentType string) (string, error) {
	if s.logoStore == nil {
		return "", errors.ErrStorageNotConfigured
	}

	company, err := s.ResolveByUser(ctx, userID)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("logos/%d-%s", company.ID, uuid.New().String())
	logoURL, err := s.logoStore.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", fmt.Errorf("upload logo: %w", err)
	}

	if err := s.companyRepo.UpdateLogoURL(ctx, company.ID, logoURL); err != nil {
		return "", fmt.Errorf("save logo url: %w", err)
	}

	return logoURL, nil
}
