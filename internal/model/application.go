package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Application is a proposal submitted by one company against a tender.
type Application struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	CompanyID        uint            `json:"company_id" gorm:"not null;index"`
	TenderID         uint            `json:"tender_id" gorm:"not null;index"`
	Proposal         string          `json:"proposal" gorm:"type:text;not null"`
	ProposedBudget   decimal.Decimal `json:"proposed_budget" gorm:"type:decimal(20,2);not null"`
	ProposedTimeline string          `json:"proposed_timeline" gorm:"size:255;not null"`
	CreatedAt        time.Time       `json:"created_at"`
}

// TenderProposal is the public read model for proposals against a tender,
// joined with the submitting company's name.
type TenderProposal struct {
	ID               uint            `json:"id"`
	CompanyName      string          `json:"company_name"`
	Proposal         string          `json:"proposal"`
	ProposedBudget   decimal.Decimal `json:"proposed_budget"`
	ProposedTimeline string          `json:"proposed_timeline"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CompanyProposal is the private read model for a company's own
// submissions, joined with the target tender's title.
type CompanyProposal struct {
	ID               uint            `json:"id"`
	TenderTitle      string          `json:"tender_title"`
	Proposal         string          `json:"proposal"`
	ProposedBudget   decimal.Decimal `json:"proposed_budget"`
	ProposedTimeline string          `json:"proposed_timeline"`
	CreatedAt        time.Time       `json:"created_at"`
}
