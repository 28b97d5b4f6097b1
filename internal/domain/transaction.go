package domain

import (
	"github.com/shopspring/decimal" // Exact decimal arithmetic for amounts
)

// Transaction Model. Immutable once created.
type Transaction struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID    uint            `gorm:"index" json:"user_id"`                   // Owning user
	Amount    decimal.Decimal `gorm:"type:decimal(30,12)" json:"amount"`      // Transaction amount
	Type      string          `json:"type"`                                   // Free-form type: send, reward, ...
	Currency  string          `gorm:"size:16" json:"currency"`                // Currency code
	CreatedAt int64           `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
