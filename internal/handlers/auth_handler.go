package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DentalLabServices/clinic-scheduler/internal/httperr"
	"github.com/DentalLabServices/clinic-scheduler/internal/models"
	"github.com/DentalLabServices/clinic-scheduler/internal/token"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *token.Manager
}

func NewAuthHandler(db *gorm.DB, tokens *token.Manager) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens}
}

// ======================================================
// GET /jwt?email=
// ======================================================

// IssueToken signs a 10-hour credential for a known email. An unknown email
// gets an explicitly empty accessToken, not an error; clients must treat it
// as "not authenticated".
func (h *AuthHandler) IssueToken(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	if email == "" {
		httperr.BadRequest(c, "missing_email", "Email is required.")
		return
	}

	var user models.User
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(200, gin.H{"accessToken": ""})
			return
		}
		writeStorageError(c, "failed_to_issue_token", err)
		return
	}

	signed, err := h.tokens.Issue(user.Email)
	if err != nil {
		httperr.Internal(c, "failed_to_sign_token", "Could not sign credential.")
		return
	}

	c.JSON(200, gin.H{"accessToken": signed})
}
