package repository

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/DentalLabServices/clinic-scheduler/internal/models"
	"github.com/DentalLabServices/clinic-scheduler/internal/usecase/availability"
)

// openTestDB connects to the database named by TEST_DATABASE_URL. The
// storage-joined availability path can only be proven against a real
// postgres (lateral unnest + filtered aggregate), so these tests are
// skipped when no instance is provided.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres-backed tests")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Treatment{}, &models.Booking{}))

	require.NoError(t, db.Exec("DELETE FROM bookings").Error)
	require.NoError(t, db.Exec("DELETE FROM treatments").Error)

	return db
}

func seedFixture(t *testing.T, db *gorm.DB) ([]models.Treatment, []models.Booking) {
	t.Helper()

	treatments := []models.Treatment{
		{Name: "Teeth Cleaning", Price: 30, Slots: models.SlotList{"9am", "10am", "11am"}},
		{Name: "Cavity Protection", Price: 40, Slots: models.SlotList{"9am", "10am"}},
		{Name: "Oral Surgery", Price: 120, Slots: models.SlotList{}},
	}
	require.NoError(t, db.Create(&treatments).Error)

	// Distinct emails: the composite unique index allows one booking per
	// patient, treatment and day.
	bookings := []models.Booking{
		{Treatment: "Teeth Cleaning", AppointmentDate: "2024-01-01", Slot: "10am", Email: "a@example.com"},
		{Treatment: "Cavity Protection", AppointmentDate: "2024-01-01", Slot: "9am", Email: "b@example.com"},
		{Treatment: "Cavity Protection", AppointmentDate: "2024-01-01", Slot: "10am", Email: "c@example.com"},
		{Treatment: "Teeth Cleaning", AppointmentDate: "2024-01-02", Slot: "9am", Email: "a@example.com"},
	}
	require.NoError(t, db.Create(&bookings).Error)

	return treatments, bookings
}

func TestAvailabilityByDate(t *testing.T) {
	db := openTestDB(t)
	treatments, _ := seedFixture(t, db)
	repo := NewBookingGormRepository(db)
	ctx := context.Background()

	t.Run("matches the client-filtered strategy on the same fixture", func(t *testing.T) {
		for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "", "not-a-date"} {
			booked, err := repo.ListBookingsByDate(ctx, date)
			require.NoError(t, err)

			want := availability.RemainingSlots(treatments, booked)

			got, err := repo.AvailabilityByDate(ctx, date)
			require.NoError(t, err)

			assert.Equal(t, want, got, "date %q", date)
		}
	})

	t.Run("booked slot removed, order preserved", func(t *testing.T) {
		options, err := repo.AvailabilityByDate(ctx, "2024-01-01")
		require.NoError(t, err)
		require.Len(t, options, 3)

		assert.Equal(t, "Teeth Cleaning", options[0].Name)
		assert.Equal(t, []string{"9am", "11am"}, options[0].Slots)
		assert.Equal(t, float64(30), options[0].Price)
	})

	t.Run("fully booked treatment keeps its row with empty slots", func(t *testing.T) {
		options, err := repo.AvailabilityByDate(ctx, "2024-01-01")
		require.NoError(t, err)

		assert.Equal(t, "Cavity Protection", options[1].Name)
		assert.Empty(t, options[1].Slots)
		assert.NotNil(t, options[1].Slots)
	})

	t.Run("treatment with an empty catalog is not dropped by the join", func(t *testing.T) {
		options, err := repo.AvailabilityByDate(ctx, "2024-01-01")
		require.NoError(t, err)

		assert.Equal(t, "Oral Surgery", options[2].Name)
		assert.Empty(t, options[2].Slots)
	})

	t.Run("absent date returns the full catalog", func(t *testing.T) {
		options, err := repo.AvailabilityByDate(ctx, "")
		require.NoError(t, err)
		require.Len(t, options, 3)

		assert.Equal(t, []string{"9am", "10am", "11am"}, options[0].Slots)
		assert.Equal(t, []string{"9am", "10am"}, options[1].Slots)
	})
}
