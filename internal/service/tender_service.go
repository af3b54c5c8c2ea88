package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sarvessh05/TenderHub/internal/cache"
	"github.com/sarvessh05/TenderHub/internal/errors"
	"github.com/sarvessh05/TenderHub/internal/model"
	"github.com/sarvessh05/TenderHub/internal/repository"
)

const tenderListCacheTTL = 30 * time.Second

// TenderInput carries the fields of a tender create request. Deadline is
// kept as a string here because clients send either a bare date or a full
// RFC 3339 timestamp.
type TenderInput struct {
	Title       string
	Description string
	Deadline    string
	Budget      decimal.Decimal
}

// PaginationMeta describes a page of results. HasMore is a heuristic: it
// is true whenever the page came back full, so a final page that exactly
// fills the limit still reports more results. No count query is issued.
type PaginationMeta struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"hasMore"`
}

// TenderService handles tender publication and listing.
type TenderService interface {
	Create(ctx context.Context, userID uint, input TenderInput) (*model.Tender, error)
	ListAll(ctx context.Context, page, limit int) ([]model.Tender, PaginationMeta, error)
}

type tenderService struct {
	companyRepo repository.CompanyRepository
	tenderRepo  repository.TenderRepository
	cache       *cache.Client
}

// NewTenderService creates a new tender service.
func NewTenderService(companyRepo repository.CompanyRepository, tenderRepo repository.TenderRepository, cache *cache.Client) TenderService {
	return &tenderService{
		companyRepo: companyRepo,
		tenderRepo:  tenderRepo,
		cache:       cache,
	}
}

// Create publishes a tender owned by the caller's company. Callers without
// a company profile get ErrCompanyNotFound, not a silent insert.
func (s *tenderService) Create(ctx context.Context, userID uint, input TenderInput) (*model.Tender, error) {
	company, err := resolveCompany(ctx, s.companyRepo, userID)
	if err != nil {
		return nil, err
	}

	deadline, err := parseDeadline(input.Deadline)
	if err != nil {
		return nil, err
	}
	if !input.Budget.IsPositive() {
		return nil, errors.ErrInvalidBudget
	}

	tender := &model.Tender{
		Title:       input.Title,
		Description: input.Description,
		Deadline:    deadline,
		Budget:      input.Budget,
		CompanyID:   company.ID,
	}

	if err := s.tenderRepo.Create(ctx, tender); err != nil {
		return nil, fmt.Errorf("create tender: %w", err)
	}

	return tender, nil
}

// ListAll returns one page of tenders, newest first. Pages are cached for
// a short TTL; staleness is bounded by the TTL and a cache outage just
// means every read hits the database.
func (s *tenderService) ListAll(ctx context.Context, page, limit int) ([]model.Tender, PaginationMeta, error) {
	key := fmt.Sprintf("tenders:page:%d:limit:%d", page, limit)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Tender
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, paginationMeta(page, limit, cached), nil
		}
	}

	offset := (page - 1) * limit
	tenders, err := s.tenderRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, PaginationMeta{}, fmt.Errorf("list tenders: %w", err)
	}

	if payload, err := json.Marshal(tenders); err == nil {
		_ = s.cache.Set(ctx, key, payload, tenderListCacheTTL)
	}
	return tenders, paginationMeta(page, limit, tenders), nil
}

func paginationMeta(page, limit int, tenders []model.Tender) PaginationMeta {
	return PaginationMeta{
		Page:    page,
		Limit:   limit,
		HasMore: len(tenders) == limit,
	}
}

func parseDeadline(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.ErrInvalidDeadline
}
