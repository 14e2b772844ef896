package booking

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/DentalLabServices/clinic-scheduler/internal/domain/booking"
	"github.com/DentalLabServices/clinic-scheduler/internal/httperr"
	"github.com/DentalLabServices/clinic-scheduler/internal/models"
)

type fakeRepo struct {
	domain.Repository

	existing  int64
	countErr  error
	createErr error

	created []*models.Booking
}

func (f *fakeRepo) CountBookingsForPatientDay(
	ctx context.Context,
	date, email, treatment string,
) (int64, error) {
	return f.existing, f.countErr
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = "generated-id"
	f.created = append(f.created, b)
	return nil
}

type fakeLocker struct {
	acquired bool
	err      error
	unlocked int
}

func (f *fakeLocker) TryLock(ctx context.Context, key string) (bool, string, error) {
	return f.acquired, "owner", f.err
}

func (f *fakeLocker) Unlock(ctx context.Context, key, owner string) error {
	f.unlocked++
	return nil
}

func input() domain.CreateInput {
	return domain.CreateInput{
		Treatment:       "Teeth Cleaning",
		AppointmentDate: "2024-01-01",
		Slot:            "9am",
		Email:           "alex@example.com",
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("first booking of the day is admitted", func(t *testing.T) {
		repo := &fakeRepo{}
		locker := &fakeLocker{acquired: true}
		uc := NewCreateBooking(repo, locker, nil)

		b, err := uc.Execute(context.Background(), input())
		require.NoError(t, err)
		assert.Equal(t, "generated-id", b.ID)
		assert.False(t, b.Paid)
		require.Len(t, repo.created, 1)
		assert.Equal(t, 1, locker.unlocked)
	})

	t.Run("duplicate patient-treatment-day is rejected without persisting", func(t *testing.T) {
		repo := &fakeRepo{existing: 1}
		uc := NewCreateBooking(repo, &fakeLocker{acquired: true}, nil)

		_, err := uc.Execute(context.Background(), input())
		assert.True(t, httperr.IsBusiness(err, "already_booked"))
		assert.Empty(t, repo.created)
	})

	t.Run("contended lock short-circuits as already booked", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := NewCreateBooking(repo, &fakeLocker{acquired: false}, nil)

		_, err := uc.Execute(context.Background(), input())
		assert.True(t, httperr.IsBusiness(err, "already_booked"))
		assert.Empty(t, repo.created)
	})

	t.Run("lock backend failure degrades to the index guard", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := NewCreateBooking(repo, &fakeLocker{err: assert.AnError}, nil)

		b, err := uc.Execute(context.Background(), input())
		require.NoError(t, err)
		assert.NotEmpty(t, b.ID)
	})

	t.Run("unique violation on insert maps to already booked", func(t *testing.T) {
		repo := &fakeRepo{createErr: &pgconn.PgError{Code: "23505"}}
		uc := NewCreateBooking(repo, &fakeLocker{acquired: true}, nil)

		_, err := uc.Execute(context.Background(), input())
		assert.True(t, httperr.IsBusiness(err, "already_booked"))
	})

	t.Run("other storage errors propagate unchanged", func(t *testing.T) {
		repo := &fakeRepo{createErr: assert.AnError}
		uc := NewCreateBooking(repo, &fakeLocker{acquired: true}, nil)

		_, err := uc.Execute(context.Background(), input())
		require.Error(t, err)
		assert.False(t, httperr.IsBusiness(err, "already_booked"))
	})
}
