package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DentalLabServices/clinic-scheduler/internal/audit"
	"github.com/DentalLabServices/clinic-scheduler/internal/httperr"
	"github.com/DentalLabServices/clinic-scheduler/internal/httpresp"
	"github.com/DentalLabServices/clinic-scheduler/internal/middleware"
	"github.com/DentalLabServices/clinic-scheduler/internal/models"
	"github.com/DentalLabServices/clinic-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewUserHandler(db *gorm.DB, audit *audit.Dispatcher) *UserHandler {
	return &UserHandler{db: db, audit: audit}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"required,email"`
}

// ======================================================
// POST /users
// ======================================================

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid user payload.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsDeliverableEmail(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Email domain does not resolve.")
		return
	}

	// Signups are retried by clients after every login; re-registering an
	// existing email acknowledges the existing record instead of failing.
	var existing models.User
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&existing).Error
	if err == nil {
		httpresp.OK(c, httpresp.Ack{Acknowledged: true})
		return
	}
	if err != gorm.ErrRecordNotFound {
		writeStorageError(c, "failed_to_create_user", err)
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: email,
		Role:  models.RolePatient,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httpresp.OK(c, httpresp.Ack{Acknowledged: true})
			return
		}
		writeStorageError(c, "failed_to_create_user", err)
		return
	}

	httpresp.OK(c, httpresp.Ack{Acknowledged: true})
}

// ======================================================
// GET /users (admin)
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&users).Error; err != nil {

		writeStorageError(c, "failed_to_list_users", err)
		return
	}

	httpresp.OK(c, users)
}

// ======================================================
// GET /users/admin/:email (credential + identity match)
// ======================================================

func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(c.Param("email")))

	if !middleware.MatchesIdentity(c, email) {
		httperr.Unauthorized(c, "identity_mismatch", "Unauthorized access")
		return
	}

	var user models.User
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&user).Error

	if err != nil && err != gorm.ErrRecordNotFound {
		writeStorageError(c, "failed_to_check_admin", err)
		return
	}

	c.JSON(200, gin.H{"isAdmin": user.IsAdmin()})
}

// ======================================================
// PUT /users/admin/:id (admin)
// ======================================================

// Promote grants the admin role. There is no demotion path.
func (h *UserHandler) Promote(c *gin.Context) {
	id := c.Param("id")
	actor := c.MustGet(middleware.ContextEmail).(string)

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).
		First(&user, "id = ?", id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "User not found.")
			return
		}
		writeStorageError(c, "failed_to_get_user", err)
		return
	}

	user.Role = models.RoleAdmin
	if err := h.db.WithContext(c.Request.Context()).Save(&user).Error; err != nil {
		writeStorageError(c, "failed_to_promote_user", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor,
		Action:     "user_promoted",
		Entity:     "user",
		EntityID:   user.Email,
	})

	httpresp.OK(c, httpresp.Ack{Acknowledged: true})
}
