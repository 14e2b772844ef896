package repository

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/DentalLabServices/clinic-scheduler/internal/domain/booking"
	"github.com/DentalLabServices/clinic-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) ListTreatments(
	ctx context.Context,
) ([]models.Treatment, error) {

	var treatments []models.Treatment
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&treatments).Error; err != nil {
		return nil, err
	}
	return treatments, nil
}

func (r *BookingGormRepository) ListTreatmentNames(
	ctx context.Context,
) ([]string, error) {

	var names []string
	if err := r.db.WithContext(ctx).
		Model(&models.Treatment{}).
		Order("id ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}

func (r *BookingGormRepository) GetTreatmentByName(
	ctx context.Context,
	name string,
) (*models.Treatment, error) {

	var t models.Treatment
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// --------------------------------------------------
// Availability (storage-side join)
// --------------------------------------------------

// availabilityQuery unnests each treatment's ordered slot array, left-joins
// the day's bookings on (treatment name, slot) and keeps only slots without
// a matching booking. The lateral join is ON true so a treatment with no
// open slots still yields a row with an empty array.
const availabilityQuery = `
SELECT t.name,
       t.price,
       COALESCE(
           jsonb_agg(s.slot ORDER BY s.ord)
               FILTER (WHERE s.slot IS NOT NULL AND b.id IS NULL),
           '[]'::jsonb
       ) AS slots
FROM treatments t
LEFT JOIN LATERAL jsonb_array_elements_text(t.slots)
    WITH ORDINALITY AS s(slot, ord) ON true
LEFT JOIN bookings b
    ON b.treatment = t.name
   AND b.appointment_date = ?
   AND b.slot = s.slot
GROUP BY t.id, t.name, t.price
ORDER BY t.id ASC
`

func (r *BookingGormRepository) AvailabilityByDate(
	ctx context.Context,
	date string,
) ([]domain.AppointmentOption, error) {

	rows, err := r.db.WithContext(ctx).
		Raw(availabilityQuery, date).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	options := make([]domain.AppointmentOption, 0)
	for rows.Next() {
		var (
			opt      domain.AppointmentOption
			rawSlots []byte
		)
		if err := rows.Scan(&opt.Name, &opt.Price, &rawSlots); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(rawSlots, &opt.Slots); err != nil {
			return nil, err
		}
		options = append(options, opt)
	}

	return options, rows.Err()
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsByDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("appointment_date = ?", date).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsByEmail(
	ctx context.Context,
	email string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) CountBookingsForPatientDay(
	ctx context.Context,
	date string,
	email string,
	treatment string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"appointment_date = ? AND email = ? AND treatment = ?",
			date, email, treatment,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *BookingGormRepository) RecordPayment(
	ctx context.Context,
	p *models.Payment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var b models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", p.BookingID).
			First(&b).Error; err != nil {
			return err
		}

		if err := tx.Create(p).Error; err != nil {
			return err
		}

		b.Paid = true
		b.TransactionID = p.TransactionID
		return tx.Save(&b).Error
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
