package booking

import (
	"context"

	"github.com/DentalLabServices/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	ListTreatments(
		ctx context.Context,
	) ([]models.Treatment, error)

	ListTreatmentNames(
		ctx context.Context,
	) ([]string, error)

	GetTreatmentByName(
		ctx context.Context,
		name string,
	) (*models.Treatment, error)

	// -------- Availability (storage-side join) --------
	AvailabilityByDate(
		ctx context.Context,
		date string,
	) ([]AppointmentOption, error)

	// -------- Booking --------
	ListBookingsByDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	ListBookingsByEmail(
		ctx context.Context,
		email string,
	) ([]models.Booking, error)

	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	CountBookingsForPatientDay(
		ctx context.Context,
		date string,
		email string,
		treatment string,
	) (int64, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Payment --------
	// RecordPayment appends the payment and marks the referenced booking
	// paid in one transaction; nothing is written when the booking is gone.
	RecordPayment(
		ctx context.Context,
		p *models.Payment,
	) error
}

// Locker serializes the admission check-then-insert per
// (email, treatment, date) key. Best effort: the unique index on bookings
// remains the authoritative guard.
type Locker interface {
	TryLock(ctx context.Context, key string) (acquired bool, owner string, err error)
	Unlock(ctx context.Context, key string, owner string) error
}
