package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-doctor-directory/config"
	deliveryHttp "go-doctor-directory/internal/delivery/http"
	"go-doctor-directory/internal/delivery/http/handler"
	"go-doctor-directory/internal/delivery/http/middleware"
	"go-doctor-directory/internal/infrastructure/cache"
	"go-doctor-directory/internal/repository"
	"go-doctor-directory/internal/service"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Store       *service.RecordStore
	Server      *http.Server

	// cancels the initial directory load on shutdown
	cancelLoad context.CancelFunc
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	applyLogLevel(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	log := logrus.StandardLogger()

	// Initialize Redis; the result cache is optional
	resultCache := service.NewNoopResultCache()
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logrus.Warnf("Result cache disabled: %v", err)
		} else {
			app.RedisClient = redisClient
			resultCache = service.NewRedisResultCache(redisClient, cfg.Redis.TTL, log)
			logrus.Info("Redis connected successfully")
		}
	}

	// Initialize record store
	source := repository.NewHTTPDoctorSource(cfg.Directory, log)
	app.Store = service.NewRecordStore(source, log)

	// Initialize all layers
	app.Server = initializeServer(cfg, log, app.Store, resultCache)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func applyLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", level)
		return
	}
	logrus.SetLevel(parsed)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, store *service.RecordStore, resultCache service.ResultCache) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, store, resultCache)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, store)

	// Initialize handlers
	directoryHandler := handler.NewDirectoryHandler(directoryUsecase)
	doctorHandler := handler.NewDoctorHandler(directoryUsecase, log)
	filterHandler := handler.NewFilterHandler(directoryUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	metricsMiddleware := middleware.NewMetricsMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(directoryHandler, doctorHandler, filterHandler, appointmentHandler, corsMiddleware, metricsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the initial directory load and the HTTP server, then handles
// graceful shutdown
func (app *App) Run() {
	// Load doctors in the background; requests see the loading state meanwhile
	ctx, cancel := context.WithCancel(context.Background())
	app.cancelLoad = cancel
	go func() {
		snapshot := app.Store.Load(ctx)
		logrus.Infof("Doctor directory %s with %d records", snapshot.Status, len(snapshot.Records))
	}()

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close stops the directory load and closes the Redis connection
func (app *App) Close() {
	if app.cancelLoad != nil {
		app.cancelLoad()
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
