package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"crypto_wallet/internal/api"    // Custom package for API handlers
	"crypto_wallet/internal/config" // Custom package for configuration
	"crypto_wallet/internal/store"  // Custom package for the store abstraction

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Select the store backend
	var s store.Store
	switch cfg.StoreBackend {
	case "mysql":
		// TranslateError maps duplicate keys to gorm.ErrDuplicatedKey
		db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err != nil {
			logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
		}
		s = store.NewMySQL(db)
	case "memory":
		s = store.NewMemory()
	default:
		logrus.Fatalf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	// Setup Redis client when caching is configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Build the router with every API route registered
	r := api.NewRouter(s, redisClient, cfg.JWTSecret)

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
