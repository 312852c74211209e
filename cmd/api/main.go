package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoreno/solarops/internal/api"
	"github.com/jmoreno/solarops/internal/config"
	"github.com/jmoreno/solarops/internal/logger"
	"github.com/jmoreno/solarops/internal/repository"
	"github.com/jmoreno/solarops/internal/service"
	"github.com/jmoreno/solarops/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	log := logger.New(logger.LoadFromEnv())
	logger.SetDefault(log)
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Error("failed to load config")
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		log.WithError(err).Error("failed to initialize database")
		os.Exit(1)
	}

	// Repositories
	repos := &api.Repositories{
		Customers: repository.NewCustomerRepository(db),
		Crews:     repository.NewCrewRepository(db),
		Vehicles:  repository.NewVehicleRepository(db),
		Partners:  repository.NewPartnerRepository(db),
		Leads:     repository.NewLeadRepository(db),
		Inventory: repository.NewInventoryRepository(db),
		Estimates: repository.NewEstimateRepository(db),
		Invoices:  repository.NewInvoiceRepository(db),
		SKUs:      repository.NewSKURepository(db),
		Tech:      repository.NewTechRepository(db),
		Jobs:      repository.NewJobRepository(db),
		Users:     repository.NewUserRepository(db),
	}

	// Photo storage is optional; without credentials the upload
	// endpoint reports itself unavailable
	var photoService *service.PhotoService
	jobService := service.NewJobService(repos.Jobs)
	if cfg.Storage.AccessKey != "" {
		objectStore, err := storage.New(&storage.Config{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			UseSSL:    cfg.Storage.UseSSL,
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			PublicURL: cfg.Storage.PublicURL,
		})
		if err != nil {
			log.WithError(err).Error("failed to initialize object storage")
			os.Exit(1)
		}
		if err := objectStore.EnsureBucket(context.Background()); err != nil {
			log.WithError(err).Warn("could not ensure storage bucket")
		}
		photoService = service.NewPhotoService(objectStore, jobService)
	}

	weatherService := service.NewWeatherService(&service.WeatherServiceConfig{
		APIKey:  cfg.Weather.APIKey,
		BaseURL: cfg.Weather.BaseURL,
		Timeout: cfg.Weather.Timeout,
	})
	if !weatherService.IsEnabled() {
		log.Warn("weather API key not set, serving mock forecasts")
	}

	svcs := &api.Services{
		Auth:      service.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, repos.Users),
		Jobs:      jobService,
		Dispatch:  service.NewDispatchService(repos.Jobs, repository.NewScheduleRepository(db), weatherService),
		Inventory: service.NewInventoryService(repos.Inventory),
		Weather:   weatherService,
		Photos:    photoService,
	}

	allowedOrigins := cfg.Server.CORS.AllowedOrigins
	if cfg.Server.CORS.AllowAllOrigins {
		allowedOrigins = nil
	}
	router := api.SetupRouter(svcs, repos, cfg.Server.Mode, allowedOrigins)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server error")
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	log.Info("server stopped")
}
