package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dairycoop-data/internal/config"
	"dairycoop-data/internal/database"
	httpapi "dairycoop-data/internal/http"
	"dairycoop-data/internal/logger"
	"dairycoop-data/internal/repository"
	"dairycoop-data/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "dairycoop-data")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer database.Close(db)

	farmers := repository.NewPostgresFarmersRepository(db)
	suppliers := repository.NewPostgresSuppliersRepository(db)
	milkEntries := repository.NewPostgresMilkEntriesRepository(db)
	qualityTests := repository.NewPostgresQualityTestsRepository(db)
	deliveries := repository.NewPostgresDeliveriesRepository(db)
	payments := repository.NewPostgresPaymentsRepository(db)
	bills := repository.NewPostgresBillsRepository(db)
	complianceRecords := repository.NewPostgresComplianceRecordsRepository(db)
	certifications := repository.NewPostgresCertificationsRepository(db)
	audits := repository.NewPostgresAuditsRepository(db)
	documents := repository.NewPostgresDocumentsRepository(db)
	messages := repository.NewPostgresMessagesRepository(db)
	groupMessages := repository.NewPostgresGroupMessagesRepository(db)
	announcements := repository.NewPostgresAnnouncementsRepository(db)

	router := httpapi.NewRouter(log)
	router.RegisterDirectoryRoutes(httpapi.NewDirectoryHandler(farmers, suppliers, log))
	router.RegisterCollectionRoutes(httpapi.NewCollectionHandler(milkEntries, qualityTests, log))
	router.RegisterLogisticsRoutes(httpapi.NewLogisticsHandler(deliveries, log))
	router.RegisterFinanceRoutes(httpapi.NewFinanceHandler(payments, bills, log))
	router.RegisterComplianceRoutes(httpapi.NewComplianceHandler(complianceRecords, certifications, audits, documents, log))
	router.RegisterCommsRoutes(httpapi.NewCommsHandler(messages, groupMessages, announcements, log))
	router.RegisterReportRoutes(httpapi.NewReportHandler(milkEntries, payments, log))

	srv := service.NewServer(cfg.HTTP.Addr, router.Handler(cfg.CORSOrigins), log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
