package availability

import (
	"context"

	domain "github.com/DentalLabServices/clinic-scheduler/internal/domain/booking"
)

// ======================================================
// CLIENT-FILTERED (legacy endpoint)
// ======================================================

// GetAvailability loads the catalog plus the day's bookings and filters the
// slots in memory. Kept endpoint-compatible with the original availability
// route; the storage-joined variant below must produce the same sets.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]domain.AppointmentOption, error) {

	treatments, err := uc.repo.ListTreatments(ctx)
	if err != nil {
		return nil, err
	}

	// An absent or malformed date matches no stored appointmentDate string,
	// so the catalog comes back unfiltered. Deliberate.
	booked, err := uc.repo.ListBookingsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return RemainingSlots(treatments, booked), nil
}

// ======================================================
// STORAGE-JOINED (v2 endpoint)
// ======================================================

// GetAvailabilityJoined pushes the booking join and the slot set-difference
// into the storage layer as a single query.
type GetAvailabilityJoined struct {
	repo domain.Repository
}

func NewGetAvailabilityJoined(repo domain.Repository) *GetAvailabilityJoined {
	return &GetAvailabilityJoined{repo: repo}
}

func (uc *GetAvailabilityJoined) Execute(
	ctx context.Context,
	date string,
) ([]domain.AppointmentOption, error) {
	return uc.repo.AvailabilityByDate(ctx, date)
}
