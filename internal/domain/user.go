package domain

import (
	"github.com/shopspring/decimal" // Exact decimal arithmetic for balances
)

// DefaultCurrencies are seeded with a zero balance for every new user
var DefaultCurrencies = []string{"BTC", "ETH", "LTC"}

// User Model
type User struct {
	ID       uint      `gorm:"primaryKey" json:"id"`                 // Primary key
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`    // Unique email address
	Password string    `gorm:"not null" json:"-"`                    // Bcrypt password hash, never serialized
	Username string    `json:"username,omitempty"`                   // Optional display name
	AlertSeq uint      `gorm:"not null;default:0" json:"-"`          // Per-user monotonic alert id counter
	Balances []Balance `gorm:"constraint:OnDelete:CASCADE" json:"-"` // One row per held currency
	Alerts   []Alert   `gorm:"constraint:OnDelete:CASCADE" json:"-"` // Alerts owned by this user
}

// Balance Model: one (user, currency) amount row
type Balance struct {
	ID       uint            `gorm:"primaryKey" json:"-"`                                   // Primary key
	UserID   uint            `gorm:"uniqueIndex:idx_user_currency" json:"-"`                // Foreign key to User
	Currency string          `gorm:"uniqueIndex:idx_user_currency;size:16" json:"currency"` // Currency code
	Amount   decimal.Decimal `gorm:"type:decimal(30,12);not null" json:"amount"`            // Held amount, never negative
}

// BalanceMap returns the currency -> amount view the wallet routes serve.
// Default currencies always appear, zero-valued when unset.
func (u *User) BalanceMap() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(u.Balances)+len(DefaultCurrencies))
	for _, cur := range DefaultCurrencies {
		m[cur] = decimal.Zero
	}
	for _, b := range u.Balances {
		m[b.Currency] = b.Amount
	}
	return m
}
