package payment

import (
	"context"

	"github.com/DentalLabServices/clinic-scheduler/internal/audit"
	domain "github.com/DentalLabServices/clinic-scheduler/internal/domain/booking"
	"github.com/DentalLabServices/clinic-scheduler/internal/models"
)

// ======================================================
// USE CASE — record a settled payment
// ======================================================

// RecordPayment appends the confirmation and flips the referenced booking to
// paid. Both writes happen inside one repository transaction so a crash can
// never leave a payment recorded against an unpaid booking.
type RecordPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRecordPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RecordPayment {
	return &RecordPayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RecordPayment) Execute(
	ctx context.Context,
	in domain.PaymentConfirmation,
) (*models.Payment, error) {

	p := &models.Payment{
		BookingID:     in.BookingID,
		TransactionID: in.TransactionID,
		Price:         in.Price,
	}

	if err := uc.repo.RecordPayment(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_recorded",
		Entity:   "booking",
		EntityID: in.BookingID,
		Metadata: map[string]any{
			"transaction_id": in.TransactionID,
			"price":          in.Price,
		},
	})

	return p, nil
}
