package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sarvessh05/TenderHub/internal/model"
)

// CompanyRepository defines company persistence operations. All owner-scoped
// operations key on user_id, never on a caller-supplied company id.
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	Update(ctx context.Context, company *model.Company) error
	FindByUserID(ctx context.Context, userID uint) (*model.Company, error)
	DeleteByUserID(ctx context.Context, userID uint) (int64, error)
	Search(ctx context.Context, query string) ([]model.Company, error)
	UpdateLogoURL(ctx context.Context, companyID uint, logoURL string) error
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository builds a GORM-backed repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) Update(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *companyRepository) FindByUserID(ctx context.Context, userID uint) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// DeleteByUserID removes the caller's company and reports how many rows
// went away, so the service can distinguish delete from no-op.
func (r *companyRepository) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Company{})
	return res.RowsAffected, res.Error
}

func (r *companyRepository) Search(ctx context.Context, query string) ([]model.Company, error) {
	pattern := "%" + query + "%"
	var companies []model.Company
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) OR LOWER(industry) LIKE LOWER(?)", pattern, pattern).
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *companyRepository) UpdateLogoURL(ctx context.Context, companyID uint, logoURL string) error {
	return r.db.WithContext(ctx).Model(&model.Company{}).
		Where("id = ?", companyID).
		Update("logo_url", logoURL).Error
}
