package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCreateUser(t *testing.T) {
	s := NewMemory()

	user, err := s.CreateUser("a@x.com", "hash", "alice")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "alice", user.Username)

	// Default currencies are seeded at zero
	balance := user.BalanceMap()
	require.Len(t, balance, 3)
	for _, cur := range []string{"BTC", "ETH", "LTC"} {
		assert.True(t, balance[cur].IsZero())
	}

	// A second user gets the next id
	second, err := s.CreateUser("b@x.com", "hash", "")
	require.NoError(t, err)
	assert.Equal(t, uint(2), second.ID)

	// Duplicate email conflicts
	_, err = s.CreateUser("a@x.com", "hash", "")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestMemoryFindUser(t *testing.T) {
	s := NewMemory()
	created, err := s.CreateUser("a@x.com", "hash", "")
	require.NoError(t, err)

	byEmail, err := s.FindUserByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := s.FindUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	_, err = s.FindUserByEmail("nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.FindUserByID(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUpdateBalance(t *testing.T) {
	s := NewMemory()
	user, err := s.CreateUser("a@x.com", "hash", "")
	require.NoError(t, err)

	amount := decimal.RequireFromString("1.5")
	require.NoError(t, s.UpdateBalance(user.ID, "BTC", amount))

	// The update is visible on the next read
	reloaded, err := s.FindUserByID(user.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.BalanceMap()["BTC"].Equal(amount))

	// A currency the user never held gets a new entry
	require.NoError(t, s.UpdateBalance(user.ID, "DOGE", decimal.RequireFromString("100")))
	reloaded, err = s.FindUserByID(user.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.BalanceMap()["DOGE"].Equal(decimal.RequireFromString("100")))

	assert.ErrorIs(t, s.UpdateBalance(99, "BTC", amount), ErrNotFound)
}

func TestMemoryAlerts(t *testing.T) {
	s := NewMemory()
	user, err := s.CreateUser("a@x.com", "hash", "")
	require.NoError(t, err)
	value := decimal.RequireFromString("50000")

	first, err := s.AppendAlert(user.ID, "BTC", "above", value)
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.ID)
	assert.True(t, first.Active)

	second, err := s.AppendAlert(user.ID, "ETH", "below", value)
	require.NoError(t, err)
	assert.Equal(t, uint(2), second.ID)

	alerts, err := s.ListAlerts(user.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "BTC", alerts[0].Currency)

	// Remove the first, ids stay monotonic afterwards
	require.NoError(t, s.RemoveAlert(user.ID, 1))
	third, err := s.AppendAlert(user.ID, "LTC", "above", value)
	require.NoError(t, err)
	assert.Equal(t, uint(3), third.ID)

	assert.ErrorIs(t, s.RemoveAlert(user.ID, 1), ErrNotFound)
	assert.ErrorIs(t, s.RemoveAlert(99, 1), ErrNotFound)
	_, err = s.ListAlerts(99)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.AppendAlert(99, "BTC", "above", value)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryTransactions(t *testing.T) {
	s := NewMemory()
	user, err := s.CreateUser("a@x.com", "hash", "")
	require.NoError(t, err)

	one := decimal.RequireFromString("0.1")
	two := decimal.RequireFromString("0.2")
	firstTx, err := s.CreateTransaction(user.ID, one, "send", "BTC")
	require.NoError(t, err)
	secondTx, err := s.CreateTransaction(user.ID, two, "reward", "BTC")
	require.NoError(t, err)
	assert.Less(t, firstTx.ID, secondTx.ID)
	assert.NotZero(t, firstTx.CreatedAt)

	txs, err := s.ListTransactions(user.ID)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, "send", txs[0].Type)
	assert.Equal(t, "reward", txs[1].Type)

	// An unknown user has no rows, not an error
	txs, err = s.ListTransactions(99)
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestMemoryReturnsCopies(t *testing.T) {
	s := NewMemory()
	user, err := s.CreateUser("a@x.com", "hash", "")
	require.NoError(t, err)

	// Mutating a returned user must not leak into the store
	user.Balances[0].Amount = decimal.RequireFromString("999")
	reloaded, err := s.FindUserByID(user.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.BalanceMap()["BTC"].IsZero())
}
