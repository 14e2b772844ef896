package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/DentalLabServices/clinic-scheduler/internal/audit"
	"github.com/DentalLabServices/clinic-scheduler/internal/config"
	"github.com/DentalLabServices/clinic-scheduler/internal/handlers"
	"github.com/DentalLabServices/clinic-scheduler/internal/imagestore"
	"github.com/DentalLabServices/clinic-scheduler/internal/infra/gateway"
	"github.com/DentalLabServices/clinic-scheduler/internal/infra/lock"
	infraRepo "github.com/DentalLabServices/clinic-scheduler/internal/infra/repository"
	"github.com/DentalLabServices/clinic-scheduler/internal/middleware"
	"github.com/DentalLabServices/clinic-scheduler/internal/token"
	ucAvailability "github.com/DentalLabServices/clinic-scheduler/internal/usecase/availability"
	ucBooking "github.com/DentalLabServices/clinic-scheduler/internal/usecase/booking"
	ucPayment "github.com/DentalLabServices/clinic-scheduler/internal/usecase/payment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	redisClient *redis.Client,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	locker := lock.NewRedisLocker(redisClient)
	photos := imagestore.New(cfg)
	tokens := token.NewManager(cfg.JWTSecret)

	mpGateway, err := gateway.NewMercadoPagoGateway(cfg.MPAccessToken)
	if err != nil {
		log.Fatalf("failed to configure payment gateway: %v", err)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucAvailability.NewGetAvailability(bookingRepo)
	getAvailabilityJoinedUC := ucAvailability.NewGetAvailabilityJoined(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		locker,
		auditDispatcher,
	)

	recordPaymentUC := ucPayment.NewRecordPayment(
		bookingRepo,
		auditDispatcher,
	)

	createIntentUC := ucPayment.NewCreateIntent(
		bookingRepo,
		mpGateway,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(
		getAvailabilityUC,
		getAvailabilityJoinedUC,
		bookingRepo,
	)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, createBookingUC, cfg.ClinicTimezone)
	authHandler := handlers.NewAuthHandler(db, tokens)
	userHandler := handlers.NewUserHandler(db, auditDispatcher)
	doctorHandler := handlers.NewDoctorHandler(db, photos, auditDispatcher)
	paymentHandler := handlers.NewPaymentHandler(recordPaymentUC, createIntentUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	authenticated := middleware.AuthMiddleware(tokens)
	adminOnly := middleware.RequireAdmin(db)

	// ======================================================
	// AVAILABILITY
	// ======================================================
	r.GET("/appointmentOptions", availabilityHandler.GetOptions)
	r.GET("/v2/appointmentOptions", availabilityHandler.GetOptionsV2)
	r.GET("/appointmentSpecialty", availabilityHandler.GetSpecialties)

	// ======================================================
	// BOOKINGS
	// ======================================================
	r.GET("/bookings", authenticated, bookingHandler.ListMine)
	r.GET("/bookings/:id", bookingHandler.GetByID)
	r.POST("/bookings", bookingHandler.Create)

	// ======================================================
	// AUTH + USERS
	// ======================================================
	r.GET("/jwt", authHandler.IssueToken)
	r.POST("/users", userHandler.Create)
	r.GET("/users", authenticated, adminOnly, userHandler.List)
	r.GET("/users/admin/:email", authenticated, userHandler.CheckAdmin)
	r.PUT("/users/admin/:id", authenticated, adminOnly, userHandler.Promote)

	// ======================================================
	// DOCTORS (admin-gated uniformly)
	// ======================================================
	r.GET("/doctors", authenticated, adminOnly, doctorHandler.List)
	r.POST("/doctors", authenticated, adminOnly, doctorHandler.Create)
	r.DELETE("/doctors/:id", authenticated, adminOnly, doctorHandler.Delete)
	r.POST("/doctors/:id/photo", authenticated, adminOnly, doctorHandler.UploadPhoto)

	// ======================================================
	// PAYMENTS
	// ======================================================
	r.POST("/payments", paymentHandler.Record)
	r.POST("/create-payment-intent", paymentHandler.CreateIntent)

	// ======================================================
	// AUDIT
	// ======================================================
	r.GET("/audit-logs", authenticated, adminOnly, auditLogsHandler.List)
}
