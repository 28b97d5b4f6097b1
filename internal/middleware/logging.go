package middleware

import (
	"time" // Request latency measurement

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RequestLogger logs every request with method, path, status and latency
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Request start time
		c.Next()            // Process the request
		// Log the completed request
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,          // HTTP method
			"path":    c.FullPath(),              // Route path
			"status":  c.Writer.Status(),         // Response status code
			"latency": time.Since(start).String(), // Handling time
		}).Info("Request handled")
	}
}
