package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal arithmetic for amounts
)

func init() {
	// Amounts serialize as JSON numbers, matching the wire contract
	decimal.MarshalJSONWithoutQuotes = true
}

// parseUserID reads the :userId path parameter. A non-numeric id behaves
// like an unknown user and answers 404.
func parseUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return 0, false
	}
	return uint(id), true
}

// balanceCacheKey is the Redis key for a user's balance mapping
func balanceCacheKey(userID uint) string {
	return "balance:user:" + strconv.Itoa(int(userID))
}

// txCacheKey is the Redis key for a user's transaction list
func txCacheKey(userID uint) string {
	return "txhistory:user:" + strconv.Itoa(int(userID))
}
