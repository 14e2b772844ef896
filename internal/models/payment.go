package models

import "time"

// Payment is an append-only confirmation record; writing one also flips the
// referenced booking to paid inside the same transaction.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID     string  `gorm:"type:uuid;not null;index" json:"bookingId"`
	TransactionID string  `gorm:"size:100;not null" json:"transactionId"`
	Price         float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
}
