package store

import (
	"errors" // Error matching for translation
	"fmt"    // Error wrapping

	"crypto_wallet/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Exact decimal arithmetic for amounts
	"gorm.io/gorm"                  // GORM ORM library
	"gorm.io/gorm/clause"           // Upsert clause for balance updates
)

// MySQL is the Store backed by a MySQL database through GORM. The *gorm.DB
// must be opened with TranslateError so duplicate keys surface as
// gorm.ErrDuplicatedKey. Any failure that is neither a missing record nor a
// duplicate key is wrapped in ErrUnavailable so handlers answer 500, not 404.
type MySQL struct {
	db *gorm.DB // Database handle
}

// NewMySQL wraps a GORM database handle in a Store.
func NewMySQL(db *gorm.DB) *MySQL {
	return &MySQL{db: db}
}

// translate maps GORM errors onto the store's sentinel errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

// CreateUser inserts the user together with zero balances for the default
// currencies in one create.
func (s *MySQL) CreateUser(email, password, username string) (*domain.User, error) {
	user := domain.User{
		Email:    email,
		Password: password,
		Username: username,
	}
	for _, cur := range domain.DefaultCurrencies {
		user.Balances = append(user.Balances, domain.Balance{
			Currency: cur,
			Amount:   decimal.Zero,
		})
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindUserByEmail loads a user with balances and alerts by email.
func (s *MySQL) FindUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := s.db.Preload("Balances").Preload("Alerts").
		Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindUserByID loads a user with balances and alerts by primary key.
func (s *MySQL) FindUserByID(id uint) (*domain.User, error) {
	var user domain.User
	err := s.db.Preload("Balances").Preload("Alerts").First(&user, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UpdateBalance upserts the (user, currency) balance row to amount.
func (s *MySQL) UpdateBalance(userID uint, currency string, amount decimal.Decimal) error {
	// Verify the user exists so a missing user is ErrNotFound, not a silent insert
	if err := s.db.Select("id").First(&domain.User{}, userID).Error; err != nil {
		return translate(err)
	}
	balance := domain.Balance{UserID: userID, Currency: currency, Amount: amount}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount"}),
	}).Create(&balance).Error
	return translate(err)
}

// AppendAlert bumps the user's alert counter and inserts the alert in one
// database transaction so concurrent creates cannot reuse an id.
func (s *MySQL) AppendAlert(userID uint, currency, condition string, value decimal.Decimal) (*domain.Alert, error) {
	var alert domain.Alert
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user domain.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			return err
		}
		user.AlertSeq++
		if err := tx.Model(&user).Update("alert_seq", user.AlertSeq).Error; err != nil {
			return err
		}
		alert = domain.Alert{
			ID:        user.AlertSeq,
			UserID:    userID,
			Currency:  currency,
			Condition: condition,
			Value:     value,
			Active:    true,
		}
		return tx.Create(&alert).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &alert, nil
}

// ListAlerts returns the user's alerts ordered by id.
func (s *MySQL) ListAlerts(userID uint) ([]domain.Alert, error) {
	if err := s.db.Select("id").First(&domain.User{}, userID).Error; err != nil {
		return nil, translate(err)
	}
	var alerts []domain.Alert
	err := s.db.Where("user_id = ?", userID).Order("id asc").Find(&alerts).Error
	if err != nil {
		return nil, translate(err)
	}
	return alerts, nil
}

// RemoveAlert deletes one alert owned by the user.
func (s *MySQL) RemoveAlert(userID, alertID uint) error {
	res := s.db.Where("user_id = ? AND id = ?", userID, alertID).Delete(&domain.Alert{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound // Neither the user nor the alert matched
	}
	return nil
}

// CreateTransaction inserts an immutable transaction record.
func (s *MySQL) CreateTransaction(userID uint, amount decimal.Decimal, txType, currency string) (*domain.Transaction, error) {
	tx := domain.Transaction{
		UserID:   userID,
		Amount:   amount,
		Type:     txType,
		Currency: currency,
	}
	if err := s.db.Create(&tx).Error; err != nil {
		return nil, translate(err)
	}
	return &tx, nil
}

// ListTransactions returns the user's transactions in creation order.
// An unknown user simply has no rows.
func (s *MySQL) ListTransactions(userID uint) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := s.db.Where("user_id = ?", userID).Order("created_at asc").Find(&txs).Error
	if err != nil {
		return nil, translate(err)
	}
	return txs, nil
}
