package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/DentalLabServices/clinic-scheduler/internal/config"
	"github.com/DentalLabServices/clinic-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Treatment{},
		&models.Booking{},
		&models.User{},
		&models.Doctor{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedTreatments(db)

	return db
}

// seedTreatments loads the default catalog the first time the service comes
// up against an empty database. Slot labels are the fixed half-hour windows
// the clinic offers; normal operation never mutates them.
func seedTreatments(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Treatment{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	defaultSlots := models.SlotList{
		"08:00 AM - 08:30 AM",
		"08:30 AM - 09:00 AM",
		"09:00 AM - 09:30 AM",
		"09:30 AM - 10:00 AM",
		"10:00 AM - 10:30 AM",
		"10:30 AM - 11:00 AM",
		"11:00 AM - 11:30 AM",
	}

	catalog := []models.Treatment{
		{Name: "Teeth Orthodontics", Price: 80, Slots: defaultSlots},
		{Name: "Cosmetic Dentistry", Price: 60, Slots: defaultSlots},
		{Name: "Teeth Cleaning", Price: 30, Slots: defaultSlots},
		{Name: "Cavity Protection", Price: 40, Slots: defaultSlots},
		{Name: "Pediatric Dental", Price: 50, Slots: defaultSlots},
		{Name: "Oral Surgery", Price: 120, Slots: defaultSlots},
	}

	if err := db.Create(&catalog).Error; err != nil {
		log.Printf("failed to seed treatment catalog: %v", err)
	}
}
