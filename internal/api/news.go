package api

import (
	"net/http" // HTTP status codes

	"crypto_wallet/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// NewsHandler serves the fixed news list. No pagination, no filtering.
func NewsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, domain.NewsArticles())
	}
}
