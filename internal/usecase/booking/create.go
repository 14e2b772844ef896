package booking

import (
	"context"
	"fmt"

	"github.com/DentalLabServices/clinic-scheduler/internal/audit"
	domain "github.com/DentalLabServices/clinic-scheduler/internal/domain/booking"
	"github.com/DentalLabServices/clinic-scheduler/internal/httperr"
	"github.com/DentalLabServices/clinic-scheduler/internal/models"
)

// ======================================================
// USE CASE — admission-controlled booking creation
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	locker domain.Locker
	audit  *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	locker domain.Locker,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

func admissionKey(in domain.CreateInput) string {
	return fmt.Sprintf("booking:%s:%s:%s", in.Email, in.Treatment, in.AppointmentDate)
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in domain.CreateInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Serialize concurrent admissions for the same
	//    patient/treatment/day. Best effort: if the lock
	//    backend is down we fall through to the unique
	//    index on bookings.
	// --------------------------------------------------
	if uc.locker != nil {
		acquired, owner, err := uc.locker.TryLock(ctx, admissionKey(in))
		if err == nil && !acquired {
			return nil, httperr.ErrBusiness("already_booked")
		}
		if err == nil {
			defer uc.locker.Unlock(ctx, admissionKey(in), owner)
		}
	}

	// --------------------------------------------------
	// 2. Admission check: one booking per patient, per
	//    treatment, per day.
	// --------------------------------------------------
	count, err := uc.repo.CountBookingsForPatientDay(
		ctx,
		in.AppointmentDate,
		in.Email,
		in.Treatment,
	)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, httperr.ErrBusiness("already_booked")
	}

	// --------------------------------------------------
	// 3. Persist. A concurrent duplicate that slipped past
	//    the check trips the unique index instead.
	// --------------------------------------------------
	b := &models.Booking{
		Treatment:       in.Treatment,
		AppointmentDate: in.AppointmentDate,
		Slot:            in.Slot,
		Email:           in.Email,
		PatientName:     in.PatientName,
		Phone:           in.Phone,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness("already_booked")
		}
		return nil, err
	}

	// --------------------------------------------------
	// 4. Audit trail.
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorEmail: in.Email,
		Action:     "booking_created",
		Entity:     "booking",
		EntityID:   b.ID,
		Metadata: map[string]any{
			"treatment": in.Treatment,
			"date":      in.AppointmentDate,
			"slot":      in.Slot,
		},
	})

	return b, nil
}
