package store

import (
	"sync" // Mutex guarding the shared maps
	"time" // Transaction timestamps

	"crypto_wallet/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact decimal arithmetic for amounts
)

// Memory is the in-process volatile Store. All state lives in maps guarded
// by a single mutex; ids come from counters advanced under the lock.
// Everything is lost on process exit.
type Memory struct {
	mu         sync.Mutex                    // Guards all fields below
	users      map[uint]*domain.User         // Users by id
	emails     map[string]uint               // Email -> user id index
	txs        map[uint][]domain.Transaction // Transactions by user id, in creation order
	nextUserID uint                          // Next user id to assign
	nextTxID   uint                          // Next transaction id to assign
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:      make(map[uint]*domain.User),
		emails:     make(map[string]uint),
		txs:        make(map[uint][]domain.Transaction),
		nextUserID: 1,
		nextTxID:   1,
	}
}

// CreateUser creates a user with zero balances for the default currencies.
func (s *Memory) CreateUser(email, password, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.emails[email]; ok {
		return nil, ErrConflict // Email already registered
	}
	user := &domain.User{
		ID:       s.nextUserID,
		Email:    email,
		Password: password,
		Username: username,
	}
	// Seed default currencies at zero
	for _, cur := range domain.DefaultCurrencies {
		user.Balances = append(user.Balances, domain.Balance{
			UserID:   user.ID,
			Currency: cur,
			Amount:   decimal.Zero,
		})
	}
	s.nextUserID++
	s.users[user.ID] = user
	s.emails[email] = user.ID
	return cloneUser(user), nil
}

// FindUserByEmail returns the user registered with email, or ErrNotFound.
func (s *Memory) FindUserByEmail(email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.emails[email]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(s.users[id]), nil
}

// FindUserByID returns the user with the given id, or ErrNotFound.
func (s *Memory) FindUserByID(id uint) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneUser(user), nil
}

// UpdateBalance sets the user's balance for currency to amount, creating
// the entry if the user never held that currency before.
func (s *Memory) UpdateBalance(userID uint, currency string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	for i := range user.Balances {
		if user.Balances[i].Currency == currency {
			user.Balances[i].Amount = amount
			return nil
		}
	}
	user.Balances = append(user.Balances, domain.Balance{
		UserID:   userID,
		Currency: currency,
		Amount:   amount,
	})
	return nil
}

// AppendAlert creates an alert with the user's next alert id.
func (s *Memory) AppendAlert(userID uint, currency, condition string, value decimal.Decimal) (*domain.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	// Monotonic per-user counter: ids are never reused after a delete
	user.AlertSeq++
	alert := domain.Alert{
		ID:        user.AlertSeq,
		UserID:    userID,
		Currency:  currency,
		Condition: condition,
		Value:     value,
		Active:    true,
	}
	user.Alerts = append(user.Alerts, alert)
	return &alert, nil
}

// ListAlerts returns the user's alerts in insertion order.
func (s *Memory) ListAlerts(userID uint) ([]domain.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	alerts := make([]domain.Alert, len(user.Alerts))
	copy(alerts, user.Alerts)
	return alerts, nil
}

// RemoveAlert deletes the alert with alertID owned by userID.
func (s *Memory) RemoveAlert(userID, alertID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	for i := range user.Alerts {
		if user.Alerts[i].ID == alertID {
			user.Alerts = append(user.Alerts[:i], user.Alerts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound // No alert with that id for this user
}

// CreateTransaction records a transaction for the user.
func (s *Memory) CreateTransaction(userID uint, amount decimal.Decimal, txType, currency string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := domain.Transaction{
		ID:        s.nextTxID,
		UserID:    userID,
		Amount:    amount,
		Type:      txType,
		Currency:  currency,
		CreatedAt: time.Now().UnixMilli(),
	}
	s.nextTxID++
	s.txs[userID] = append(s.txs[userID], tx)
	return &tx, nil
}

// ListTransactions returns the user's transactions in creation order.
func (s *Memory) ListTransactions(userID uint) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txs := make([]domain.Transaction, len(s.txs[userID]))
	copy(txs, s.txs[userID])
	return txs, nil
}

// cloneUser copies a user so callers never hold references into the maps.
func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.Balances = make([]domain.Balance, len(u.Balances))
	copy(c.Balances, u.Balances)
	c.Alerts = make([]domain.Alert, len(u.Alerts))
	copy(c.Alerts, u.Alerts)
	return &c
}
