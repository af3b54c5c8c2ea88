package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sarvessh05/TenderHub/internal/errors"
	"github.com/sarvessh05/TenderHub/internal/model"
	"github.com/sarvessh05/TenderHub/internal/repository"
)

// ApplicationInput carries the fields of an apply request.
type ApplicationInput struct {
	TenderID         uint
	Proposal         string
	ProposedBudget   decimal.Decimal
	ProposedTimeline string
}

// ApplicationService handles proposal submission and listing.
type ApplicationService interface {
	Apply(ctx context.Context, userID uint, input ApplicationInput) (*model.Application, error)
	ProposalsForTender(ctx context.Context, tenderID uint) ([]model.TenderProposal, error)
	MyProposals(ctx context.Context, userID uint) ([]model.CompanyProposal, error)
}

type applicationService struct {
	companyRepo     repository.CompanyRepository
	tenderRepo      repository.TenderRepository
	applicationRepo repository.ApplicationRepository
}

// NewApplicationService creates a new application service.
func NewApplicationService(companyRepo repository.CompanyRepository, tenderRepo repository.TenderRepository, applicationRepo repository.ApplicationRepository) ApplicationService {
	return &applicationService{
		companyRepo:     companyRepo,
		tenderRepo:      tenderRepo,
		applicationRepo: applicationRepo,
	}
}

// Apply submits a proposal from the caller's company against a tender.
// The tender must exist; dangling proposals are rejected with 404. A
// company may still apply to its own tender.
func (s *applicationService) Apply(ctx context.Context, userID uint, input ApplicationInput) (*model.Application, error) {
	company, err := resolveCompany(ctx, s.companyRepo, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.tenderRepo.FindByID(ctx, input.TenderID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrTenderNotFound
		}
		return nil, fmt.Errorf("find tender: %w", err)
	}
	if !input.ProposedBudget.IsPositive() {
		return nil, errors.ErrInvalidBudget
	}

	application := &model.Application{
		CompanyID:        company.ID,
		TenderID:         input.TenderID,
		Proposal:         input.Proposal,
		ProposedBudget:   input.ProposedBudget,
		ProposedTimeline: input.ProposedTimeline,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	return application, nil
}

// ProposalsForTender lists all proposals against a tender, public read.
func (s *applicationService) ProposalsForTender(ctx context.Context, tenderID uint) ([]model.TenderProposal, error) {
	proposals, err := s.applicationRepo.ListForTender(ctx, tenderID)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	return proposals, nil
}

// MyProposals lists the proposals submitted by the caller's company.
func (s *applicationService) MyProposals(ctx context.Context, userID uint) ([]model.CompanyProposal, error) {
	company, err := resolveCompany(ctx, s.companyRepo, userID)
	if err != nil {
		return nil, err
	}

	proposals, err := s.applicationRepo.ListForCompany(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	return proposals, nil
}
