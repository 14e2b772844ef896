package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DentalLabServices/clinic-scheduler/internal/audit"
	"github.com/DentalLabServices/clinic-scheduler/internal/httperr"
	"github.com/DentalLabServices/clinic-scheduler/internal/httpresp"
	"github.com/DentalLabServices/clinic-scheduler/internal/imagestore"
	"github.com/DentalLabServices/clinic-scheduler/internal/middleware"
	"github.com/DentalLabServices/clinic-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type DoctorHandler struct {
	db     *gorm.DB
	photos *imagestore.Store
	audit  *audit.Dispatcher
}

func NewDoctorHandler(
	db *gorm.DB,
	photos *imagestore.Store,
	audit *audit.Dispatcher,
) *DoctorHandler {
	return &DoctorHandler{
		db:     db,
		photos: photos,
		audit:  audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Specialty string `json:"specialty" binding:"required"`
}

// ======================================================
// GET /doctors (admin)
// ======================================================

func (h *DoctorHandler) List(c *gin.Context) {
	var doctors []models.Doctor
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&doctors).Error; err != nil {

		writeStorageError(c, "failed_to_list_doctors", err)
		return
	}

	httpresp.OK(c, doctors)
}

// ======================================================
// POST /doctors (admin)
// ======================================================

func (h *DoctorHandler) Create(c *gin.Context) {
	actor := c.MustGet(middleware.ContextEmail).(string)

	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid doctor payload.")
		return
	}

	doctor := models.Doctor{
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Specialty: req.Specialty,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&doctor).Error; err != nil {
		writeStorageError(c, "failed_to_create_doctor", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor,
		Action:     "doctor_added",
		Entity:     "doctor",
		EntityID:   doctor.Name,
	})

	c.JSON(201, doctor)
}

// ======================================================
// DELETE /doctors/:id (admin)
// ======================================================

func (h *DoctorHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	actor := c.MustGet(middleware.ContextEmail).(string)

	result := h.db.WithContext(c.Request.Context()).
		Delete(&models.Doctor{}, "id = ?", id)
	if result.Error != nil {
		writeStorageError(c, "failed_to_delete_doctor", result.Error)
		return
	}

	if result.RowsAffected == 0 {
		httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actor,
		Action:     "doctor_removed",
		Entity:     "doctor",
		EntityID:   id,
	})

	httpresp.OK(c, httpresp.Ack{Acknowledged: true})
}

// ======================================================
// POST /doctors/:id/photo (admin)
// ======================================================

func (h *DoctorHandler) UploadPhoto(c *gin.Context) {
	id := c.Param("id")

	var doctor models.Doctor
	if err := h.db.WithContext(c.Request.Context()).
		First(&doctor, "id = ?", id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "doctor_not_found", "Doctor not found.")
			return
		}
		writeStorageError(c, "failed_to_get_doctor", err)
		return
	}

	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Multipart field 'photo' is required.")
		return
	}
	defer file.Close()

	url, err := h.photos.SaveDoctorPhoto(c.Request.Context(), doctor.ID, file)
	if err != nil {
		if httperr.IsTimeout(err) {
			httperr.Unavailable(c, "photo_store_timeout", "Photo storage did not respond in time.")
			return
		}
		httperr.BadRequest(c, "invalid_photo", "Photo could not be processed.")
		return
	}

	doctor.PhotoURL = url
	if err := h.db.WithContext(c.Request.Context()).Save(&doctor).Error; err != nil {
		writeStorageError(c, "failed_to_update_doctor", err)
		return
	}

	httpresp.OK(c, doctor)
}
