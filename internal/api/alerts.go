package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"crypto_wallet/internal/domain" // Importing domain models
	"crypto_wallet/internal/store"  // Store abstraction

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal arithmetic for target values
	"github.com/sirupsen/logrus"    // Logging library
)

// CreateAlertRequest represents an alert creation request. Value is a
// pointer so a target of 0 counts as provided, only absence is rejected.
type CreateAlertRequest struct {
	Currency  string           `json:"currency" binding:"required"`  // Currency code
	Condition string           `json:"condition" binding:"required"` // Free-form comparator, e.g. "above"/"below"
	Value     *decimal.Decimal `json:"value" binding:"required"`     // Target price value
}

// CreateAlertHandler appends a new alert to the user's collection
func CreateAlertHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}
		// The user lookup answers 404 before field validation answers 400
		if _, err := s.FindUserByID(userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create alert."})
			return
		}
		var req CreateAlertRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"message": "Currency, condition, and value are required for an alert."})
			return
		}
		// Append with the user's next monotonic alert id and active=true
		alert, err := s.AppendAlert(userID, req.Currency, req.Condition, *req.Value)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create alert."})
			return
		}
		// Log the new alert
		logrus.WithFields(logrus.Fields{
			"user_id":   userID,        // Owning user ID
			"alert_id":  alert.ID,      // New alert ID
			"currency":  req.Currency,  // Currency code
			"condition": req.Condition, // Comparator
		}).Info("Alert created")
		c.JSON(http.StatusCreated, gin.H{"message": "Alert created successfully.", "alert": alert})
	}
}

// ListAlertsHandler returns the user's alerts in insertion order
func ListAlertsHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}
		alerts, err := s.ListAlerts(userID)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list alerts."})
			return
		}
		if alerts == nil {
			alerts = []domain.Alert{} // Serialize an empty collection, not null
		}
		c.JSON(http.StatusOK, alerts)
	}
}

// DeleteAlertHandler removes one alert from the user's collection
func DeleteAlertHandler(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(c)
		if !ok {
			return
		}
		if _, err := s.FindUserByID(userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete alert."})
			return
		}
		alertID, err := strconv.ParseUint(c.Param("alertId"), 10, 32)
		if err != nil {
			// A non-numeric alert id behaves like an unknown alert
			c.JSON(http.StatusNotFound, gin.H{"message": "Alert not found."})
			return
		}
		if err := s.RemoveAlert(userID, uint(alertID)); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Alert not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete alert."})
			return
		}
		// Log the deletion
		logrus.WithFields(logrus.Fields{
			"user_id":  userID,  // Owning user ID
			"alert_id": alertID, // Deleted alert ID
		}).Info("Alert deleted")
		c.JSON(http.StatusOK, gin.H{"message": "Alert deleted successfully."})
	}
}
