package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error matching
	"fmt"      // Response message formatting
	"net/http" // HTTP status codes
	"time"     // Time durations

	"crypto_wallet/internal/store" // Store abstraction
	"crypto_wallet/internal/utils" // Cache utility functions

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Exact decimal arithmetic for amounts
	"github.com/sirupsen/logrus"    // Logging library
)

// SendRequest represents a wallet send request
type SendRequest struct {
	Currency         string          `json:"currency" binding:"required"`         // Currency code
	Amount           decimal.Decimal `json:"amount" binding:"required"`           // Amount to send; zero counts as missing
	RecipientAddress string          `json:"recipientAddress" binding:"required"` // Target address
}

// BalanceHandler returns the user's full currency -> amount mapping
func BalanceHandler(s store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}
		ctx := context.Background()                              // Context for Redis operations
		cacheKey := balanceCacheKey(userID)                      // Cache key for the balance mapping
		var cached map[string]decimal.Decimal                    // Balance mapping to hold cached data
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached) // Try to get from cache
		if err == nil && found {
			c.JSON(http.StatusOK, cached) // Return cached balance
			return
		}
		// If not in cache, fetch from the store
		user, err := s.FindUserByID(userID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load balance."})
			return
		}
		balance := user.BalanceMap()                                // Currency -> amount view
		_ = utils.SetCache(ctx, rdb, cacheKey, balance, 60*time.Second) // Cache the balance for 60 seconds
		c.JSON(http.StatusOK, balance)                              // Return the balance mapping
	}
}

// SendHandler decrements the user's balance by the sent amount. This is a
// bookkeeping decrement only; no external transfer occurs.
func SendHandler(s store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}
		// The user lookup answers 404 before field validation answers 400
		user, err := s.FindUserByID(userID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Send failed."})
			return
		}
		var req SendRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Currency, amount, and recipient address are required."})
			return
		}
		if !req.Amount.IsPositive() {
			// Zero sends are meaningless and negative sends would credit the wallet
			c.JSON(http.StatusBadRequest, gin.H{"message": "Amount must be a positive number."})
			return
		}
		balance := user.BalanceMap() // Currency -> amount view
		held, ok := balance[req.Currency]
		// Reject unknown currencies and overdrafts; a send is never clamped
		if !ok || held.LessThan(req.Amount) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient balance or unsupported currency."})
			return
		}
		newBalance := held.Sub(req.Amount) // Exact decimal arithmetic
		if err := s.UpdateBalance(userID, req.Currency, newBalance); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Send failed."})
			return
		}
		// Record the send; the balance update and the record are not atomic
		// together, so a failure here is logged but does not undo the send
		if _, err := s.CreateTransaction(userID, req.Amount, "send", req.Currency); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Sender user ID
				"error":   err.Error(), // Error message
			}).Error("Failed to record send transaction")
		}
		// Log the simulated send
		logrus.WithFields(logrus.Fields{
			"user_id":   userID,               // Sender user ID
			"amount":    req.Amount,           // Sent amount
			"currency":  req.Currency,         // Currency code
			"recipient": req.RecipientAddress, // Recipient address
			"type":      "send",               // Transaction type
		}).Info("Send transaction")
		// Invalidate balance and transaction history cache
		ctx := context.Background()
		_ = utils.DeleteCache(ctx, rdb, balanceCacheKey(userID))
		_ = utils.DeleteCache(ctx, rdb, txCacheKey(userID))
		// Return success response with the new balance
		c.JSON(http.StatusOK, gin.H{
			"message":    fmt.Sprintf("Successfully sent %s %s. New balance: %s", req.Amount, req.Currency, newBalance),
			"newBalance": newBalance,
		})
	}
}

// ReceiveAddressHandler returns a deterministic placeholder deposit address.
// This is not a real cryptographic address.
func ReceiveAddressHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}
		currency := c.Param("currency") // Currency from the path
		if _, err := s.FindUserByID(userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate address."})
			return
		}
		// Deterministic placeholder format embedding user id and currency
		address := fmt.Sprintf("DUMMY_%s_ADDRESS_FOR_USER_%d", currency, userID)
		c.JSON(http.StatusOK, gin.H{"address": address})
	}
}
