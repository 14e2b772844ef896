package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// One booking per patient, per treatment, per day. The composite unique
	// index is the storage-level guard behind the admission check.
	Treatment       string `gorm:"size:100;not null;uniqueIndex:uniq_patient_treatment_day" json:"treatment"`
	AppointmentDate string `gorm:"size:10;not null;index;uniqueIndex:uniq_patient_treatment_day" json:"appointmentDate"`
	Email           string `gorm:"size:100;not null;uniqueIndex:uniq_patient_treatment_day" json:"email"`

	Slot string `gorm:"size:30;not null" json:"slot"`

	PatientName string `gorm:"size:100" json:"patient,omitempty"`
	Phone       string `gorm:"size:20" json:"phone,omitempty"`

	Paid          bool   `gorm:"default:false" json:"paid"`
	TransactionID string `gorm:"size:100" json:"transactionId,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
