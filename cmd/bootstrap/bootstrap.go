package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healfinity-backend/config"
	deliveryHttp "healfinity-backend/internal/delivery/http"
	"healfinity-backend/internal/delivery/http/handler"
	"healfinity-backend/internal/delivery/http/middleware"
	"healfinity-backend/internal/infrastructure/cache"
	"healfinity-backend/internal/infrastructure/database"
	"healfinity-backend/internal/repository"
	"healfinity-backend/internal/service"
	"healfinity-backend/internal/usecase"
	"healfinity-backend/pkg/jwt"
	"healfinity-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
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
	logrus.Info("Configuration loaded successfully")

	// Open the configured record store variant
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Infof("Database connected successfully (driver=%s)", cfg.DB.Driver)

	// Session tokens live in redis when configured, in process memory otherwise
	tokenStore, err := app.openTokenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// Initialize all layers
	server := initializeServer(cfg, db, tokenStore)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		return database.NewPostgresConnection(cfg.DB)
	default:
		return database.NewSQLiteConnection(cfg.DB.SQLitePath)
	}
}

func (app *App) openTokenStore(cfg *config.Config) (cache.TokenStore, error) {
	if !cfg.UseRedis() {
		logrus.Info("No redis configured, using in-memory token store")
		return cache.NewMemoryTokenStore(), nil
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, err
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	return cache.NewRedisTokenStore(redisClient), nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, tokenStore cache.TokenStore) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	snapshotRepo := repository.NewHealthSnapshotRepository()
	favoriteRepo := repository.NewFavoriteRepository()
	consultationRepo := repository.NewConsultationRepository()
	yogaSessionRepo := repository.NewYogaSessionRepository()
	symptomRepo := repository.NewSymptomRepository()
	doctorRepo := repository.NewDoctorRepository()
	instructorRepo := repository.NewInstructorRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, snapshotRepo, consultationRepo, yogaSessionRepo, jwtService, tokenStore, auditService)
	healthUsecase := usecase.NewHealthUsecase(db, log, snapshotRepo, auditService)
	favoriteUsecase := usecase.NewFavoriteUsecase(db, log, favoriteRepo, auditService)
	consultationUsecase := usecase.NewConsultationUsecase(db, log, consultationRepo, auditService)
	yogaSessionUsecase := usecase.NewYogaSessionUsecase(db, log, yogaSessionRepo, auditService)
	symptomUsecase := usecase.NewSymptomUsecase(db, log, symptomRepo, auditService)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, doctorRepo, instructorRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	healthHandler := handler.NewHealthHandler(healthUsecase, customValidator)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUsecase, customValidator)
	consultationHandler := handler.NewConsultationHandler(consultationUsecase, customValidator)
	yogaSessionHandler := handler.NewYogaSessionHandler(yogaSessionUsecase, customValidator)
	symptomHandler := handler.NewSymptomHandler(symptomUsecase, customValidator)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenStore)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		healthHandler,
		favoriteHandler,
		consultationHandler,
		yogaSessionHandler,
		symptomHandler,
		catalogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:         serverAddr,
		Handler:      httpRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
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

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
