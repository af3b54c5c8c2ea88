package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sarvessh05/TenderHub/internal/model"
)

// TenderRepository defines tender persistence operations.
type TenderRepository interface {
	Create(ctx context.Context, tender *model.Tender) error
	FindByID(ctx context.Context, id uint) (*model.Tender, error)
	List(ctx context.Context, limit, offset int) ([]model.Tender, error)
}

type tenderRepository struct {
	db *gorm.DB
}

// NewTenderRepository builds a GORM-backed repository.
func NewTenderRepository(db *gorm.DB) TenderRepository {
	return &tenderRepository{db: db}
}

func (r *tenderRepository) Create(ctx context.Context, tender *model.Tender) error {
	return r.db.WithContext(ctx).Create(tender).Error
}

func (r *tenderRepository) FindByID(ctx context.Context, id uint) (*model.Tender, error) {
	var tender model.Tender
	if err := r.db.WithContext(ctx).First(&tender, id).Error; err != nil {
		return nil, err
	}
	return &tender, nil
}

func (r *tenderRepository) List(ctx context.Context, limit, offset int) ([]model.Tender, error) {
	var tenders []model.Tender
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tenders).Error
	if err != nil {
		return nil, err
	}
	return tenders, nil
}
