package main

import (
	"courtly/internal/bookings/handler"
	"courtly/internal/bookings/repository"
	"courtly/internal/bookings/service"
	"courtly/internal/bookings/validator"
	courtsrepository "courtly/internal/courts/repository"
	courtsservice "courtly/internal/courts/service"
	courtsvalidator "courtly/internal/courts/validator"
	"courtly/internal/health"
	"courtly/internal/notifications"
	"courtly/pkg/app"
	"courtly/pkg/config"
	"courtly/pkg/kafka"
	kafkaconfig "courtly/pkg/kafka/config"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Bookings service")

	bookingService, emitter := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.OnShutdown(func() {
		if err := emitter.Close(); err != nil {
			cfg.Log.Error("Failed to close event emitter", "error", err)
		}
	})
	serverApp.SetApp(
		handler.NewBookingHandler(bookingService, cfg.Log),
		health.NewHandler(cfg.Client.Mongo, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.BookingService, notifications.Emitter) {
	courtService := courtsservice.NewCourtService(
		courtsrepository.NewMongoCourtRepository(cfg),
		courtsvalidator.NewCourtValidator(cfg.Log),
		cfg,
	)

	emitter := initEmitter(cfg)

	bookingService := service.NewBookingService(
		repository.NewMongoBookingRepository(cfg),
		repository.NewSlotLockRepository(cfg),
		validator.NewBookingValidator(cfg.Log),
		courtService,
		emitter,
		service.RealClock(),
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService, emitter
}

func initEmitter(cfg *config.Config) notifications.Emitter {
	kafkaCfg := kafkaconfig.Load()
	producer, err := kafka.NewProducer(kafkaCfg, cfg.BookingEventsTopic, cfg.BookingEventsDLQTopic)
	if err != nil {
		cfg.Log.Error("Kafka producer unavailable, booking events disabled", "error", err)
		return notifications.NopEmitter{}
	}
	return notifications.NewKafkaEmitter(producer, ServiceName, cfg.Log)
}
