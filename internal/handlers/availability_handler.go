package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/DentalLabServices/clinic-scheduler/internal/domain/booking"
	"github.com/DentalLabServices/clinic-scheduler/internal/httpresp"
	"github.com/DentalLabServices/clinic-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	legacy *availability.GetAvailability
	joined *availability.GetAvailabilityJoined
	repo   domain.Repository
}

func NewAvailabilityHandler(
	legacy *availability.GetAvailability,
	joined *availability.GetAvailabilityJoined,
	repo domain.Repository,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		legacy: legacy,
		joined: joined,
		repo:   repo,
	}
}

// ======================================================
// GET /appointmentOptions (legacy, client-filtered)
// ======================================================

func (h *AvailabilityHandler) GetOptions(c *gin.Context) {
	date := c.Query("date")

	options, err := h.legacy.Execute(c.Request.Context(), date)
	if err != nil {
		writeStorageError(c, "availability_failed", err)
		return
	}

	httpresp.OK(c, options)
}

// ======================================================
// GET /v2/appointmentOptions (storage-side join)
// ======================================================

func (h *AvailabilityHandler) GetOptionsV2(c *gin.Context) {
	date := c.Query("date")

	options, err := h.joined.Execute(c.Request.Context(), date)
	if err != nil {
		writeStorageError(c, "availability_failed", err)
		return
	}

	httpresp.OK(c, options)
}

// ======================================================
// GET /appointmentSpecialty
// ======================================================

type specialtyDTO struct {
	Name string `json:"name"`
}

func (h *AvailabilityHandler) GetSpecialties(c *gin.Context) {
	names, err := h.repo.ListTreatmentNames(c.Request.Context())
	if err != nil {
		writeStorageError(c, "failed_to_list_specialties", err)
		return
	}

	specialties := make([]specialtyDTO, 0, len(names))
	for _, name := range names {
		specialties = append(specialties, specialtyDTO{Name: name})
	}

	httpresp.OK(c, specialties)
}
