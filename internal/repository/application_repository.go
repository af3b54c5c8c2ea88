package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sarvessh05/TenderHub/internal/model"
)

// ApplicationRepository defines proposal persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	ListForTender(ctx context.Context, tenderID uint) ([]model.TenderProposal, error)
	ListForCompany(ctx context.Context, companyID uint) ([]model.CompanyProposal, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository builds a GORM-backed repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

// ListForTender returns all proposals against a tender with the submitting
// company's name joined in, newest first.
func (r *applicationRepository) ListForTender(ctx context.Context, tenderID uint) ([]model.TenderProposal, error) {
	var proposals []model.TenderProposal
	err := r.db.WithContext(ctx).
		Table("applications").
		Select("applications.id, companies.name AS company_name, applications.proposal, applications.proposed_budget, applications.proposed_timeline, applications.created_at").
		Joins("JOIN companies ON applications.company_id = companies.id").
		Where("applications.tender_id = ?", tenderID).
		Order("applications.created_at DESC").
		Scan(&proposals).Error
	if err != nil {
		return nil, err
	}
	return proposals, nil
}

// ListForCompany returns all proposals submitted by a company with the
// target tender's title joined in, newest first.
func (r *applicationRepository) ListForCompany(ctx context.Context, companyID uint) ([]model.CompanyProposal, error) {
	var proposals []model.CompanyProposal
	err := r.db.WithContext(ctx).
		Table("applications").
		Select("applications.id, tenders.title AS tender_title, applications.proposal, applications.proposed_budget, applications.proposed_timeline, applications.created_at").
		Joins("JOIN tenders ON applications.tender_id = tenders.id").
		Where("applications.company_id = ?", companyID).
		Order("applications.created_at DESC").
		Scan(&proposals).Error
	if err != nil {
		return nil, err
	}
	return proposals, nil
}
