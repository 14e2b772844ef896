package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/DentalLabServices/clinic-scheduler/internal/domain/booking"
	"github.com/DentalLabServices/clinic-scheduler/internal/httperr"
	"github.com/DentalLabServices/clinic-scheduler/internal/httpresp"
	ucPayment "github.com/DentalLabServices/clinic-scheduler/internal/usecase/payment"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	recordUC *ucPayment.RecordPayment
	intentUC *ucPayment.CreateIntent
}

func NewPaymentHandler(
	recordUC *ucPayment.RecordPayment,
	intentUC *ucPayment.CreateIntent,
) *PaymentHandler {
	return &PaymentHandler{
		recordUC: recordUC,
		intentUC: intentUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RecordPaymentRequest struct {
	BookingID     string  `json:"bookingId" binding:"required"`
	TransactionID string  `json:"transactionId" binding:"required"`
	Price         float64 `json:"price" binding:"required"`
}

type CreateIntentRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}

// ======================================================
// POST /payments
// ======================================================

func (h *PaymentHandler) Record(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payment payload.")
		return
	}

	p, err := h.recordUC.Execute(
		c.Request.Context(),
		domain.PaymentConfirmation{
			BookingID:     req.BookingID,
			TransactionID: req.TransactionID,
			Price:         req.Price,
		},
	)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The transaction aborted before any write.
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		writeStorageError(c, "failed_to_record_payment", err)
		return
	}

	httpresp.Inserted(c, strconv.FormatUint(uint64(p.ID), 10))
}

// ======================================================
// POST /create-payment-intent
// ======================================================

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid intent payload.")
		return
	}

	intent, err := h.intentUC.Execute(c.Request.Context(), req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "treatment_not_found"):
			httperr.BadRequest(c, "treatment_not_found", "Booking references an unknown treatment.")
		case httperr.IsTimeout(err):
			httperr.Unavailable(c, "gateway_timeout", "Payment gateway did not respond in time.")
		default:
			httperr.Unavailable(c, "gateway_error", "Payment gateway rejected the request.")
		}
		return
	}

	httpresp.OK(c, intent)
}
