package domain

import (
	"github.com/shopspring/decimal" // Exact decimal arithmetic for target values
)

// Alert Model. The id is unique per owning user, not globally: it is drawn
// from the user's AlertSeq counter so ids are never reused after a delete.
type Alert struct {
	ID        uint            `gorm:"primaryKey;autoIncrement:false" json:"id"` // Per-user sequential id
	UserID    uint            `gorm:"primaryKey" json:"-"`                      // Foreign key to User
	Currency  string          `gorm:"size:16" json:"currency"`                  // Currency code
	Condition string          `json:"condition"`                                // Free-form comparator, e.g. "above"/"below"
	Value     decimal.Decimal `gorm:"type:decimal(30,12)" json:"value"`         // Target price value
	Active    bool            `json:"active"`                                   // Always true at creation; never evaluated here
}
