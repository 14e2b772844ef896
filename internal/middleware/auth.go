package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DentalLabServices/clinic-scheduler/internal/models"
	"github.com/DentalLabServices/clinic-scheduler/internal/token"
)

const (
	ContextEmail = "userEmail"
)

// AuthMiddleware verifies the bearer credential. A request with no token at
// all is unauthenticated (401); a token that is present but fails signature
// or expiry checks is forbidden (403).
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		email, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Set(ContextEmail, email)
		c.Next()
	}
}

// RequireAdmin resolves the verified identity's user record and rejects
// anyone without the admin role. Must run after AuthMiddleware.
func RequireAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.MustGet(ContextEmail).(string)

		var user models.User
		if err := db.WithContext(c.Request.Context()).
			Where("email = ?", email).
			First(&user).Error; err != nil {

			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
				return
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": "Service unavailable"})
			return
		}

		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Next()
	}
}

// MatchesIdentity reports whether the requested email equals the verified
// identity. Patient-scoped reads must never expose another patient's data.
func MatchesIdentity(c *gin.Context, email string) bool {
	verified, ok := c.Get(ContextEmail)
	if !ok {
		return false
	}
	return verified.(string) == email
}
