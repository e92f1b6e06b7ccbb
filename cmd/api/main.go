package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"heroapi/docs"
	"heroapi/internal/config"
	"heroapi/internal/database"
	"heroapi/internal/database/migration"
	handlers "heroapi/internal/http/handler"
	"heroapi/internal/http/middleware"
	"heroapi/internal/logger"
	appotel "heroapi/internal/otel"
	"heroapi/internal/repository"
	"heroapi/internal/repository/postgres"
	"heroapi/internal/repository/sqlite"
	"heroapi/internal/service"
	"heroapi/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Superhero API
// @version 1.0
// @description Looks up superheroes by their URL-friendly slug.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.Default(cfg.LogLevel, cfg.Location())

	ctx := context.Background()

	shutdownTracing, err := appotel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to connect to database")
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, cfg.Database.Driver, log); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}
	if cfg.Database.Seed {
		if err := migration.Seed(ctx, db, cfg.Database.Driver, migration.DefaultHeroes, log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	// Portrait storage is optional; without it the portrait route answers 503.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize object storage")
		}
	}

	heroSvc := service.NewSuperheroService(newRepository(cfg.Database.Driver, db), objStore, cfg.MinIO.PresignExpiry())

	prom, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, heroSvc, handlers.Options{StrictSlugs: cfg.API.StrictSlugs})

	// Swagger UI with dynamic host and scheme
	docs.SwaggerInfo.Host = cfg.AppHost
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	done := make(chan struct{})
	go waitForShutdown(app, shutdownTracing, log, done)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("public_host", cfg.AppHost).Str("driver", cfg.Database.Driver).Msg("server starting")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
	<-done
	log.Info().Msg("server stopped")
}

func newRepository(driver string, db *sql.DB) repository.SuperheroRepository {
	if driver == config.DriverSQLite {
		return sqlite.NewSuperheroSQLite(db)
	}
	return postgres.NewSuperheroPostgres(db)
}

// waitForShutdown drains in-flight requests on SIGINT/SIGTERM, then flushes pending spans.
func waitForShutdown(app *fiber.App, shutdownTracing appotel.ShutdownFunc, log zerolog.Logger, done chan<- struct{}) {
	defer close(done)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("shutting down")

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		log.Error().Err(err).Msg("tracer shutdown failed")
	}
}
