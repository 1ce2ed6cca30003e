package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/unicommunity/internal/app/controllers"
	appMigrations "github.com/yigit/unicommunity/internal/app/migrations"
	appRepos "github.com/yigit/unicommunity/internal/app/repositories"
	appRoutes "github.com/yigit/unicommunity/internal/app/routes"
	appServices "github.com/yigit/unicommunity/internal/app/services"
	"github.com/yigit/unicommunity/internal/config"
	"github.com/yigit/unicommunity/internal/db"
	appMiddleware "github.com/yigit/unicommunity/internal/middleware"
	"github.com/yigit/unicommunity/internal/pkg/events"
	"github.com/yigit/unicommunity/internal/pkg/helpers"
	"github.com/yigit/unicommunity/internal/pkg/logger"
	"github.com/yigit/unicommunity/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers appRoutes.Controllers
	Publisher   events.Publisher
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides the default configs/config.yaml.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// BuildDependencies initializes the event publisher, repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Publisher = events.NewPublisher(events.KafkaConfig{
		Brokers:      cfg.Events.Brokers,
		Topic:        cfg.Events.Topic,
		WriteTimeout: helpers.ParseDuration(cfg.Events.WriteTimeout, 5*time.Second),
	})
	if len(cfg.Events.Brokers) > 0 {
		lgr.Info().Strs("brokers", cfg.Events.Brokers).Str("topic", cfg.Events.Topic).Msg("Domain events enabled")
	} else {
		lgr.Info().Msg("No event brokers configured, domain events are dropped")
	}

	deps.Repos = appRepos.NewRepositories(database)
	deps.Services = appServices.NewServices(deps.Repos, database, deps.Publisher)

	deps.Controllers = appRoutes.Controllers{
		Registration:     appControllers.NewRegistrationController(deps.Services.RegistrationService),
		Chat:             appControllers.NewChatController(deps.Services.ChatService),
		Enrollment:       appControllers.NewEnrollmentController(deps.Services.EnrollmentService),
		UniversityRecord: appControllers.NewUniversityRecordController(deps.Services.UniversityRecordService),
		Health:           appControllers.NewHealthController(database.Pool),
	}

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), deps.Services.RegistrationService, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterJSONFieldNames()

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), appMiddleware.Recovery())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}
