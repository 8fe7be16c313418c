package middleware

import (
	"log"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// SecurityConfig holds security middleware configuration
type SecurityConfig struct {
	MaxRequestSize    int64
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RequireHTTPS      bool
}

// DefaultSecurityConfig returns default security configuration
func DefaultSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		MaxRequestSize:    10 * 1024 * 1024, // 10MB, image uploads go through here
		RateLimitRequests: 10000,
		RateLimitWindow:   time.Minute,
		RequireHTTPS:      false,
	}
}

// SecurityMiddleware provides request-level protection: size caps, per-IP
// rate limiting, content-type checks, and security headers.
func SecurityMiddleware(config *SecurityConfig) gin.HandlerFunc {
	if config == nil {
		config = DefaultSecurityConfig()
	}

	// Rate limiter per IP. The map is shared across request goroutines.
	var limiterMu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(c *gin.Context) {
		// 1. Request size validation
		if c.Request.ContentLength > config.MaxRequestSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"success": false,
				"error":   "Request body too large",
			})
			c.Abort()
			return
		}

		// 2. Rate limiting per IP (skip if disabled for development)
		if os.Getenv("DISABLE_RATE_LIMITING") != "true" {
			clientIP := c.ClientIP()
			limiterMu.Lock()
			limiter, exists := limiters[clientIP]
			if !exists {
				limiter = rate.NewLimiter(rate.Every(config.RateLimitWindow/time.Duration(config.RateLimitRequests)), config.RateLimitRequests)
				limiters[clientIP] = limiter
			}
			limiterMu.Unlock()

			if !limiter.Allow() {
				log.Printf("rate limit exceeded for IP %s: %s %s", clientIP, c.Request.Method, c.Request.URL.Path)
				c.JSON(http.StatusTooManyRequests, gin.H{
					"success": false,
					"error":   "Rate limit exceeded",
				})
				c.Abort()
				return
			}
		}

		// 3. Content-Type validation for POST/PUT requests
		if c.Request.Method == "POST" || c.Request.Method == "PUT" || c.Request.Method == "PATCH" {
			contentType := c.GetHeader("Content-Type")

			// Vision uploads send raw image bytes.
			if strings.Contains(c.Request.URL.Path, "/vision/") {
				c.Next()
				return
			}

			if contentType == "" {
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"error":   "Content-Type header required",
				})
				c.Abort()
				return
			}

			validContentTypes := []string{
				"application/json",
				"multipart/form-data",
				"application/x-www-form-urlencoded",
			}

			isValid := false
			for _, validType := range validContentTypes {
				if strings.Contains(contentType, validType) {
					isValid = true
					break
				}
			}

			if !isValid {
				c.JSON(http.StatusUnsupportedMediaType, gin.H{
					"success": false,
					"error":   "Unsupported content type: " + contentType,
				})
				c.Abort()
				return
			}
		}

		// 4. Security headers
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")

		// 5. HTTPS enforcement (if enabled)
		if config.RequireHTTPS && c.Request.Header.Get("X-Forwarded-Proto") != "https" {
			c.JSON(http.StatusUpgradeRequired, gin.H{
				"success": false,
				"error":   "HTTPS required",
			})
			c.Abort()
			return
		}

		// 6. Block suspicious patterns in URL
		suspiciousPatterns := []string{
			"../", "..\\", "<script", "javascript:", "vbscript:",
			"onload=", "onerror=", "eval(", "expression(",
		}

		requestURI := strings.ToLower(c.Request.RequestURI)
		for _, pattern := range suspiciousPatterns {
			if strings.Contains(requestURI, pattern) {
				c.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"error":   "Suspicious request pattern detected",
				})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
