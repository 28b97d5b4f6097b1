package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"time"     // Time durations

	"crypto_wallet/internal/domain" // Importing domain models
	"crypto_wallet/internal/store"  // Store abstraction
	"crypto_wallet/internal/utils"  // Cache utility functions

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Exact decimal arithmetic for amounts
	"github.com/sirupsen/logrus"    // Logging library
)

// CreateTransactionRequest represents a direct transaction creation request
type CreateTransactionRequest struct {
	UserID   uint            `json:"user_id" binding:"required"`  // Owning user
	Amount   decimal.Decimal `json:"amount" binding:"required"`   // Transaction amount
	Type     string          `json:"type" binding:"required"`     // Free-form transaction type
	Currency string          `json:"currency" binding:"required"` // Currency code
}

// CreateTransactionHandler records a transaction directly
func CreateTransactionHandler(s store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "User id, amount, type, and currency are required."})
			return
		}
		// The transaction must reference an existing user
		if _, err := s.FindUserByID(req.UserID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create transaction."})
			return
		}
		tx, err := s.CreateTransaction(req.UserID, req.Amount, req.Type, req.Currency)
		if err != nil {
			// Backend failure, never a 404
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create transaction."})
			return
		}
		// Log the new transaction
		logrus.WithFields(logrus.Fields{
			"user_id":  tx.UserID,   // Owning user ID
			"tx_id":    tx.ID,       // Transaction ID
			"amount":   tx.Amount,   // Transaction amount
			"type":     tx.Type,     // Transaction type
			"currency": tx.Currency, // Currency code
		}).Info("Transaction created")
		// Invalidate the user's transaction history cache
		_ = utils.DeleteCache(context.Background(), rdb, txCacheKey(req.UserID))
		c.JSON(http.StatusCreated, gin.H{"message": "Transaction created successfully.", "transaction": tx})
	}
}

// ListTransactionsHandler returns the user's transactions in creation order
func ListTransactionsHandler(s store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}
		ctx := context.Background()                               // Context for Redis operations
		cacheKey := txCacheKey(userID)                            // Cache key for the transaction list
		var cached []domain.Transaction                           // Transactions to hold cached data
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached) // Try to get from cache
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{"transactions": cached}) // Return cached transactions
			return
		}
		txs, err := s.ListTransactions(userID)
		if err != nil {
			// Backend failure, never a 404: an unknown user has no rows
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch transactions."})
			return
		}
		if txs == nil {
			txs = []domain.Transaction{} // Serialize an empty collection, not null
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, txs, 60*time.Second) // Cache the list for 60 seconds
		c.JSON(http.StatusOK, gin.H{"transactions": txs})
	}
}
