package store

import (
	"errors" // Sentinel errors for the store contract

	"crypto_wallet/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact decimal arithmetic for amounts
)

// Store errors. Handlers match these with errors.Is and map them to
// HTTP statuses: ErrNotFound -> 404, ErrConflict -> 409, ErrUnavailable -> 500.
var (
	ErrNotFound    = errors.New("not found")           // No matching user or alert
	ErrConflict    = errors.New("already exists")      // Duplicate email
	ErrUnavailable = errors.New("backend unavailable") // Backend call failed
)

// Store abstracts persistence for users, balances, alerts, and transactions.
// Two implementations exist: an in-process volatile store (Memory) and a
// MySQL-backed one (MySQL). The API layer must not assume which it holds.
// All mutations are immediately visible to subsequent reads on the same store.
type Store interface {
	// CreateUser creates a user with zero-initialized default balances.
	// password is the bcrypt hash, never the plaintext.
	// Returns ErrConflict if the email is already registered.
	CreateUser(email, password, username string) (*domain.User, error)
	// FindUserByEmail returns the user with the given email, or ErrNotFound.
	FindUserByEmail(email string) (*domain.User, error)
	// FindUserByID returns the user with the given id, or ErrNotFound.
	FindUserByID(id uint) (*domain.User, error)
	// UpdateBalance sets the user's balance for a currency to amount,
	// creating the balance entry if it does not exist yet.
	// Returns ErrNotFound if the user does not exist.
	UpdateBalance(userID uint, currency string, amount decimal.Decimal) error
	// AppendAlert creates an alert for the user with the next id from the
	// user's monotonic alert counter and active=true.
	// Returns ErrNotFound if the user does not exist.
	AppendAlert(userID uint, currency, condition string, value decimal.Decimal) (*domain.Alert, error)
	// ListAlerts returns the user's alerts in creation order.
	// Returns ErrNotFound if the user does not exist.
	ListAlerts(userID uint) ([]domain.Alert, error)
	// RemoveAlert deletes the given alert.
	// Returns ErrNotFound if the user or the alert does not exist.
	RemoveAlert(userID, alertID uint) error
	// CreateTransaction records an immutable transaction for the user.
	CreateTransaction(userID uint, amount decimal.Decimal, txType, currency string) (*domain.Transaction, error)
	// ListTransactions returns the user's transactions in creation order.
	// An unknown user yields an empty list, not an error.
	ListTransactions(userID uint) ([]domain.Transaction, error)
}
