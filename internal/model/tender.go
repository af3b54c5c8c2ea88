package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tender is a published request for proposals, owned by a company.
// Tenders are publicly readable and have no update or delete path.
type Tender struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Deadline    time.Time       `json:"deadline" gorm:"not null"`
	Budget      decimal.Decimal `json:"budget" gorm:"type:decimal(20,2);not null"`
	CompanyID   uint            `json:"company_id" gorm:"not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
}
