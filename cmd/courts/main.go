package main

import (
	"courtly/internal/courts/handler"
	"courtly/internal/courts/repository"
	"courtly/internal/courts/service"
	"courtly/internal/courts/validator"
	"courtly/internal/health"
	"courtly/pkg/app"
	"courtly/pkg/config"
)

const ServiceName = "courts"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Courts service")

	courtService := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewCourtHandler(courtService, cfg.Log),
		health.NewHandler(cfg.Client.Mongo, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) service.CourtService {
	courtService := service.NewCourtService(
		repository.NewMongoCourtRepository(cfg),
		validator.NewCourtValidator(cfg.Log),
		cfg,
	)

	cfg.Log.Info("Court service initialized", "database", cfg.MongoDatabaseName)
	return courtService
}
