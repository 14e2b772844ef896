package availability

import (
	domain "github.com/DentalLabServices/clinic-scheduler/internal/domain/booking"
	"github.com/DentalLabServices/clinic-scheduler/internal/models"
)

// RemainingSlots computes, for every treatment in the catalog, the slots not
// taken by any of the day's bookings. Slot order follows the catalog; the
// result is scoped per treatment.
func RemainingSlots(
	treatments []models.Treatment,
	booked []models.Booking,
) []domain.AppointmentOption {

	bookedSlots := make(map[string]map[string]bool, len(treatments))
	for _, b := range booked {
		if bookedSlots[b.Treatment] == nil {
			bookedSlots[b.Treatment] = make(map[string]bool)
		}
		bookedSlots[b.Treatment][b.Slot] = true
	}

	options := make([]domain.AppointmentOption, 0, len(treatments))
	for _, t := range treatments {
		remaining := make([]string, 0, len(t.Slots))
		for _, slot := range t.Slots {
			if !bookedSlots[t.Name][slot] {
				remaining = append(remaining, slot)
			}
		}

		options = append(options, domain.AppointmentOption{
			Name:  t.Name,
			Price: t.Price,
			Slots: remaining,
		})
	}

	return options
}
