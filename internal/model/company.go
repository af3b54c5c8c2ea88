package model

import "time"

// Company is a business profile owned by exactly one user. The unique
// index on UserID is what makes the one-company-per-user invariant hold
// even when two create requests race: the second insert fails with a
// duplicate-key error instead of committing a second row.
type Company struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Industry    string    `json:"industry" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	LogoURL     *string   `json:"logo_url" gorm:"size:512"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
