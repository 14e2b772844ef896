package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DentalLabServices/clinic-scheduler/internal/dates"
	domain "github.com/DentalLabServices/clinic-scheduler/internal/domain/booking"
	"github.com/DentalLabServices/clinic-scheduler/internal/httperr"
	"github.com/DentalLabServices/clinic-scheduler/internal/httpresp"
	"github.com/DentalLabServices/clinic-scheduler/internal/middleware"
	ucBooking "github.com/DentalLabServices/clinic-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	repo     domain.Repository
	createUC *ucBooking.CreateBooking
	clinicTZ string
}

func NewBookingHandler(
	repo domain.Repository,
	createUC *ucBooking.CreateBooking,
	clinicTZ string,
) *BookingHandler {
	return &BookingHandler{
		repo:     repo,
		createUC: createUC,
		clinicTZ: clinicTZ,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Treatment       string `json:"treatment" binding:"required"`
	AppointmentDate string `json:"appointmentDate" binding:"required"`
	Slot            string `json:"slot" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	PatientName     string `json:"patient"`
	Phone           string `json:"phone"`
}

// ======================================================
// POST /bookings
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	if !dates.IsValid(req.AppointmentDate) {
		httperr.BadRequest(c, "invalid_date", "appointmentDate must be YYYY-MM-DD.")
		return
	}

	// "Past" is decided on the clinic's wall clock, not the caller's.
	// The wire format sorts lexicographically, so a string compare is a
	// date compare.
	if req.AppointmentDate < dates.Today(h.clinicTZ) {
		httperr.BadRequest(c, "date_in_past", "appointmentDate has already passed.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	b, err := h.createUC.Execute(
		c.Request.Context(),
		domain.CreateInput{
			Treatment:       req.Treatment,
			AppointmentDate: req.AppointmentDate,
			Slot:            req.Slot,
			Email:           email,
			PatientName:     req.PatientName,
			Phone:           req.Phone,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "already_booked") {
			// Soft conflict: 200 with acknowledged=false, the envelope the
			// existing clients parse.
			httpresp.Rejected(c, fmt.Sprintf("You already have a booking on %s", req.AppointmentDate))
			return
		}

		writeStorageError(c, "failed_to_create_booking", err)
		return
	}

	httpresp.Inserted(c, b.ID)
}

// ======================================================
// GET /bookings?email= (credential + identity match)
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	email := c.Query("email")

	if !middleware.MatchesIdentity(c, email) {
		httperr.Unauthorized(c, "identity_mismatch", "Unauthorized access")
		return
	}

	bookings, err := h.repo.ListBookingsByEmail(c.Request.Context(), email)
	if err != nil {
		writeStorageError(c, "failed_to_list_bookings", err)
		return
	}

	httpresp.OK(c, bookings)
}

// ======================================================
// GET /bookings/:id
// ======================================================

func (h *BookingHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	b, err := h.repo.GetBooking(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		writeStorageError(c, "failed_to_get_booking", err)
		return
	}

	httpresp.OK(c, b)
}
