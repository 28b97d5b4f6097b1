package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"crypto_wallet/internal/store" // Store abstraction
	"crypto_wallet/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
	Username string `json:"username"`                    // Optional display name
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// RegisterHandler creates a new user with zero-initialized balances
func RegisterHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
			return
		}
		// Hash the password before it reaches the store
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password."})
			return
		}
		// Create the user; the store seeds BTC/ETH/LTC at zero
		user, err := s.CreateUser(req.Email, string(hash), req.Username)
		if errors.Is(err, store.ErrConflict) {
			// Duplicate email, return conflict
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists."})
			return
		}
		if err != nil {
			// Any other failure is a backend problem
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed."})
			return
		}
		// Log the new registration
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,    // New user ID
			"email":   user.Email, // Registered email
		}).Info("User registered")
		// Return success response with the new user id
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully.", "userId": user.ID})
	}
}

// LoginHandler authenticates a user and returns a signed JWT token
func LoginHandler(s store.Store, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required."})
			return
		}
		user, err := s.FindUserByEmail(req.Email) // Fetch user from the store
		if errors.Is(err, store.ErrUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed."})
			return
		}
		if err != nil {
			// Unknown email, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
			return
		}
		// Generate a signed token carrying the user id
		token, err := utils.GenerateJWT(user.ID, user.Email, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token."})
			return
		}
		// Return the user id and token in the response
		c.JSON(http.StatusOK, gin.H{"message": "Login successful.", "userId": user.ID, "token": token})
	}
}
