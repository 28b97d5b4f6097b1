package api

import (
	"fmt"
	"net/http"
	"testing"

	"crypto_wallet/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactions(t *testing.T) {
	r, _ := newTestRouter(t)
	userID := registerUser(t, r, "a@x.com", "p")

	t.Run("CreateAndList", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/transactions", gin.H{
			"user_id":  userID,
			"amount":   0.5,
			"type":     "deposit",
			"currency": "ETH",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		var created struct {
			Transaction domain.Transaction `json:"transaction"`
		}
		decodeBody(t, w, &created)
		assert.NotZero(t, created.Transaction.ID)
		assert.Equal(t, userID, created.Transaction.UserID)
		assert.Equal(t, "deposit", created.Transaction.Type)

		w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/transactions/%d", userID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var listed struct {
			Transactions []domain.Transaction `json:"transactions"`
		}
		decodeBody(t, w, &listed)
		require.Len(t, listed.Transactions, 1)
		assert.Equal(t, created.Transaction.ID, listed.Transactions[0].ID)
		assert.True(t, listed.Transactions[0].Amount.Equal(decimal.RequireFromString("0.5")))
	})

	t.Run("MissingFields", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/transactions", gin.H{"user_id": userID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/transactions", gin.H{
			"user_id":  999,
			"amount":   1,
			"type":     "deposit",
			"currency": "BTC",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListForUnknownUserIsEmpty", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/transactions/999", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var listed struct {
			Transactions []domain.Transaction `json:"transactions"`
		}
		decodeBody(t, w, &listed)
		assert.Empty(t, listed.Transactions)
	})
}
