package api

import (
	"crypto_wallet/internal/middleware" // Request logging middleware
	"crypto_wallet/internal/store"      // Store abstraction

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// NewRouter builds the gin engine with every API route registered. The
// server and the handler tests run against the same route table. rdb may
// be nil, which disables caching.
func NewRouter(s store.Store, rdb *redis.Client, jwtSecret string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	apiGroup := r.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.POST("/register", RegisterHandler(s))          // Registration endpoint
	authGroup.POST("/login", LoginHandler(s, jwtSecret))     // Login endpoint

	// Wallet routes
	walletGroup := apiGroup.Group("/wallet/:userId")
	walletGroup.GET("/balance", BalanceHandler(s, rdb))                     // Balance endpoint
	walletGroup.POST("/send", SendHandler(s, rdb))                          // Send endpoint
	walletGroup.GET("/receive_address/:currency", ReceiveAddressHandler(s)) // Receive address endpoint

	// Mining reward route
	apiGroup.POST("/mining/:userId/watched_ad", WatchedAdHandler(s, rdb)) // Ad reward endpoint

	// Alerts routes
	alertsGroup := apiGroup.Group("/alerts")
	alertsGroup.POST("/:userId/create", CreateAlertHandler(s))   // Create alert endpoint
	alertsGroup.GET("/:userId", ListAlertsHandler(s))            // List alerts endpoint
	alertsGroup.DELETE("/:userId/:alertId", DeleteAlertHandler(s)) // Delete alert endpoint

	// News route
	apiGroup.GET("/news", NewsHandler()) // Static news endpoint

	// Transactions routes
	apiGroup.POST("/transactions", CreateTransactionHandler(s, rdb))        // Create transaction endpoint
	apiGroup.GET("/transactions/:userId", ListTransactionsHandler(s, rdb)) // List transactions endpoint

	return r
}
