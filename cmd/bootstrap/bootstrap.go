package bootstrap

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthguard-api/config"
	deliveryHttp "healthguard-api/internal/delivery/http"
	"healthguard-api/internal/delivery/http/handler"
	"healthguard-api/internal/delivery/http/middleware"
	"healthguard-api/internal/infrastructure/cache"
	"healthguard-api/internal/infrastructure/database"
	"healthguard-api/internal/infrastructure/messaging"
	"healthguard-api/internal/repository"
	"healthguard-api/internal/service"
	"healthguard-api/internal/usecase"
	"healthguard-api/pkg/jwt"
	"healthguard-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Producer    *messaging.Producer
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

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply pending migrations
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize Kafka producer (no-op when brokers are not configured)
	producer := messaging.NewProducer(cfg.Kafka, logrus.StandardLogger())
	app.Producer = producer

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, producer)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, producer *messaging.Producer) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewProfileRepository()
	recordRepo := repository.NewHealthRecordRepository()
	dailyLogRepo := repository.NewDailyHealthLogRepository()
	assessmentRepo := repository.NewRiskAssessmentRepository()
	impactRepo := repository.NewDiseaseImpactRepository()
	reportRepo := repository.NewMedicalReportRepository()
	chatRepo := repository.NewChatMessageRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditRepo)

	// Category jitter source; seeded once so runs stay independent
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, profileRepo, auditService, jwtService, redisClient)
	profileUsecase := usecase.NewProfileUsecase(db, log, profileRepo, userRepo, auditService)
	recordUsecase := usecase.NewHealthRecordUsecase(db, log, recordRepo, auditService)
	dailyLogUsecase := usecase.NewDailyLogUsecase(db, log, dailyLogRepo, auditService)
	assessmentUsecase := usecase.NewRiskAssessmentUsecase(db, log, profileRepo, recordRepo, assessmentRepo, auditService, redisClient, producer, rng)
	impactUsecase := usecase.NewDiseaseImpactUsecase(db, log, profileRepo, dailyLogRepo, impactRepo, auditService, producer)
	reportUsecase := usecase.NewMedicalReportUsecase(db, log, reportRepo, auditService, producer)
	chatUsecase := usecase.NewChatUsecase(db, log, chatRepo, userRepo)
	articleUsecase := usecase.NewArticleUsecase(log, cfg.Articles)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	recordHandler := handler.NewHealthRecordHandler(recordUsecase, customValidator)
	dailyLogHandler := handler.NewDailyLogHandler(dailyLogUsecase, customValidator)
	assessmentHandler := handler.NewRiskAssessmentHandler(assessmentUsecase)
	impactHandler := handler.NewDiseaseImpactHandler(impactUsecase)
	reportHandler := handler.NewMedicalReportHandler(reportUsecase, customValidator)
	chatHandler := handler.NewChatHandler(chatUsecase, customValidator)
	alertHandler := handler.NewAlertHandler()
	articleHandler := handler.NewArticleHandler(articleUsecase)
	translationHandler := handler.NewTranslationHandler()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		profileHandler,
		recordHandler,
		dailyLogHandler,
		assessmentHandler,
		impactHandler,
		reportHandler,
		chatHandler,
		alertHandler,
		articleHandler,
		translationHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
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

// Close closes all connections (database, redis, kafka)
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

	// Flush and close the Kafka writer
	if app.Producer != nil {
		app.Producer.Close()
	}
}
