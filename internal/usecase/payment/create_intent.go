package payment

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	domain "github.com/DentalLabServices/clinic-scheduler/internal/domain/booking"
	"github.com/DentalLabServices/clinic-scheduler/internal/httperr"
)

// Gateway is the external payment provider. It holds no state of ours; the
// use case only converts the booking price and passes through.
type Gateway interface {
	CreateIntent(
		ctx context.Context,
		bookingID string,
		treatment string,
		amountMinorUnits int64,
	) (*domain.PaymentIntent, error)
}

// MinorUnits converts a decimal price into the gateway's integer minor
// units (e.g. 12.50 → 1250).
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// ======================================================
// USE CASE — request an authorization handle
// ======================================================

type CreateIntent struct {
	repo    domain.Repository
	gateway Gateway
}

func NewCreateIntent(repo domain.Repository, gateway Gateway) *CreateIntent {
	return &CreateIntent{
		repo:    repo,
		gateway: gateway,
	}
}

func (uc *CreateIntent) Execute(
	ctx context.Context,
	bookingID string,
) (*domain.PaymentIntent, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	t, err := uc.repo.GetTreatmentByName(ctx, b.Treatment)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("treatment_not_found")
		}
		return nil, err
	}

	return uc.gateway.CreateIntent(
		ctx,
		b.ID,
		b.Treatment,
		MinorUnits(t.Price),
	)
}
