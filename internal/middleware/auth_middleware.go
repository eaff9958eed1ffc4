package middleware

import (
	"errors"
	"net/http"
	"strings"

	apijwt "github.com/ArowuTest/blood-donation-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubjectKey is the gin context key holding the verified token subject
const SubjectKey = "subject"

// isWrite reports whether method changes state
func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// WriteAuthMiddleware requires a valid HS256 bearer token on state-changing
// requests. Reads and preflights pass through untouched.
func WriteAuthMiddleware(secret string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isWrite(c.Request.Method) {
			c.Next()
			return
		}

		const BearerSchema = "Bearer "
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("authorization header is missing", zap.String("request_id", RequestID(c)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			logger.Warn("authorization header format is invalid", zap.String("request_id", RequestID(c)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer "})
			return
		}

		subject, err := apijwt.Verify(secret, authHeader[len(BearerSchema):])
		if err != nil {
			logger.Warn("token validation failed", zap.Error(err), zap.String("request_id", RequestID(c)))
			if errors.Is(err, apijwt.ErrExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		c.Set(SubjectKey, subject)
		c.Next()
	}
}
