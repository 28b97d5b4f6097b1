package api

import (
	"context"  // Context for Redis operations
	"errors"   // Error matching
	"fmt"      // Response message formatting
	"net/http" // HTTP status codes

	"crypto_wallet/internal/store" // Store abstraction
	"crypto_wallet/internal/utils" // Cache utility functions

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Exact decimal arithmetic for amounts
	"github.com/sirupsen/logrus"    // Logging library
)

// Fixed reward for a watched ad. No verification, no rate limiting: a
// client can call the endpoint repeatedly for unlimited reward.
var (
	rewardAmount   = decimal.RequireFromString("0.0001") // Reward per watched ad
	rewardCurrency = "BTC"                               // Reward currency
)

// WatchedAdHandler credits the fixed ad reward to the user's balance and
// returns the updated balance mapping
func WatchedAdHandler(s store.Store, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}
		user, err := s.FindUserByID(userID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Reward failed."})
			return
		}
		balance := user.BalanceMap()                         // Currency -> amount view
		newAmount := balance[rewardCurrency].Add(rewardAmount) // Exact decimal credit
		if err := s.UpdateBalance(userID, rewardCurrency, newAmount); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Reward failed."})
			return
		}
		// Record the reward; not atomic with the balance update (known limitation)
		if _, err := s.CreateTransaction(userID, rewardAmount, "reward", rewardCurrency); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Rewarded user ID
				"error":   err.Error(), // Error message
			}).Error("Failed to record reward transaction")
		}
		// Log the reward
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,         // Rewarded user ID
			"amount":   rewardAmount,   // Reward amount
			"currency": rewardCurrency, // Reward currency
			"type":     "reward",       // Transaction type
		}).Info("Ad reward credited")
		// Invalidate balance and transaction history cache
		ctx := context.Background()
		_ = utils.DeleteCache(ctx, rdb, balanceCacheKey(userID))
		_ = utils.DeleteCache(ctx, rdb, txCacheKey(userID))
		balance[rewardCurrency] = newAmount // Updated view for the response
		c.JSON(http.StatusOK, gin.H{
			"message":    fmt.Sprintf("You have been rewarded %s %s!", rewardAmount, rewardCurrency),
			"newBalance": balance,
		})
	}
}
