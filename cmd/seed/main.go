package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/court-booking/internal/config"
	bookingRepo "github.com/m04kA/court-booking/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/court-booking/internal/infra/storage/court"
	"github.com/m04kA/court-booking/internal/infra/storage/database"
	scheduleRepo "github.com/m04kA/court-booking/internal/infra/storage/schedule"
	courtsService "github.com/m04kA/court-booking/internal/service/courts"
	courtModels "github.com/m04kA/court-booking/internal/service/courts/models"
	schedulesService "github.com/m04kA/court-booking/internal/service/schedules"
	scheduleModels "github.com/m04kA/court-booking/internal/service/schedules/models"
	"github.com/m04kA/court-booking/pkg/dbmetrics"
	"github.com/m04kA/court-booking/pkg/logger"
	"github.com/m04kA/court-booking/pkg/ptr"
	"github.com/m04kA/court-booking/pkg/txmanager"
	"github.com/m04kA/court-booking/pkg/validation"
)

// seedCourts демонстрационные корты; существующие по имени пропускаются
var seedCourts = []courtModels.CreateCourtRequest{
	{Name: "Lapangan A", Description: ptr.Of("Lapangan utama, lantai vinyl"), PricePerHour: ptr.Of(50000.0)},
	{Name: "Lapangan B", Description: ptr.Of("Lapangan standar"), PricePerHour: ptr.Of(40000.0)},
	{Name: "Lapangan C", Description: ptr.Of("Lapangan latihan"), PricePerHour: ptr.Of(30000.0)},
}

func main() {
	configPath := flag.String("config", "config.toml", "путь к файлу конфигурации")
	days := flag.Int("days", 7, "на сколько дней вперед создать слоты")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Сид пишет в stdout, файл логов сервиса не трогаем
	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load booking timezone: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, dialect, err := database.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, dialect, log); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	wrappedDB := dbmetrics.Wrap(db, nil)
	courtRepository := courtRepo.NewRepository(wrappedDB, dialect)
	validator := validation.New()

	courtSvc := courtsService.NewService(courtRepository, validator, log)
	scheduleSvc := schedulesService.NewService(
		scheduleRepo.NewRepository(wrappedDB, dialect),
		courtRepository,
		bookingRepo.NewRepository(wrappedDB, dialect),
		txmanager.NewTransactionManager(wrappedDB),
		validator,
		location,
		log,
	)

	existing, err := courtSvc.List(ctx, &courtModels.ListCourtsRequest{IncludeInactive: true})
	if err != nil {
		log.Fatal("Failed to list courts: %v", err)
	}
	known := make(map[string]bool, len(existing.Courts))
	for _, c := range existing.Courts {
		known[c.Name] = true
	}

	for i := range seedCourts {
		req := seedCourts[i]
		if known[req.Name] {
			log.Info("Court %q already exists, skipped", req.Name)
			continue
		}
		court, err := courtSvc.Create(ctx, &req)
		if err != nil {
			log.Fatal("Failed to create court %q: %v", req.Name, err)
		}
		log.Info("Court created: id=%d, name=%q", court.ID, court.Name)
	}

	result, err := scheduleSvc.Generate(ctx, &scheduleModels.GenerateSchedulesRequest{Days: days})
	if err != nil {
		log.Fatal("Failed to generate schedules: %v", err)
	}

	log.Info("Seed finished: schedules created=%d, skipped=%d", result.Created, result.Skipped)
}
