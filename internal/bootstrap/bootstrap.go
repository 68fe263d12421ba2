// Package bootstrap assembles the application: configuration, logging,
// database, dependency wiring and the HTTP router.
package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mayank/campustrack/docs" // generated swagger docs
	appControllers "github.com/mayank/campustrack/internal/app/controllers"
	appRepos "github.com/mayank/campustrack/internal/app/repositories"
	appRoutes "github.com/mayank/campustrack/internal/app/routes"
	appServices "github.com/mayank/campustrack/internal/app/services"
	"github.com/mayank/campustrack/internal/config"
	"github.com/mayank/campustrack/internal/db"
	"github.com/mayank/campustrack/internal/middleware"
	pkgAuth "github.com/mayank/campustrack/internal/pkg/auth"
	"github.com/mayank/campustrack/internal/pkg/helpers"
	"github.com/mayank/campustrack/internal/pkg/logger"
	"github.com/mayank/campustrack/internal/pkg/validation"
	"github.com/mayank/campustrack/internal/seed"
)

// Dependencies holds all the application dependencies.
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers *appControllers.Controllers
	JWTService  *pkgAuth.JWTService
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
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

// SetupDatabase connects to MongoDB and creates the indexes backing the
// data model's uniqueness invariants.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Str("database", cfg.Mongo.Database).Msg("Connecting to MongoDB...")

	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to MongoDB")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to create indexes")
		_ = database.Close(context.Background())
		return nil, err
	}

	lgr.Info().Msg("MongoDB connection established and indexes ensured.")
	return database, nil
}

// BuildDependencies initializes repositories, services and controllers,
// and seeds the default admin account.
func BuildDependencies(cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService)
	deps.Controllers = appControllers.NewControllers(deps.Services)

	if err := seed.CreateDefaultAdmin(context.Background(), deps.Services.User, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterRules(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register validation rules")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.RegisterRoutes(router, deps.Controllers, deps.JWTService)

	return router
}
