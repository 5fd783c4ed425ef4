package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "neoflix/docs"
	"neoflix/internal/auth"
	"neoflix/internal/config"
	"neoflix/internal/database"
	"neoflix/internal/handlers"
	"neoflix/internal/middleware"
	"neoflix/internal/routes"
	"neoflix/internal/services"
	"neoflix/internal/utils"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Neoflix API
// @version 1.0
// @description Movie catalog, favorites and ratings backed by Neo4j

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	loadEnvFile()

	cfg := config.Load()
	log := setupLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(context.Background(), cfg.Neo4j, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	tokens, err := auth.NewTokenCodec(cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize token codec: %v", err)
	}
	hasher := auth.NewPasswordHasher(cfg.Auth.SaltRounds)

	authService := services.NewAuthService(db, hasher, tokens, log)
	movieService := services.NewMovieService(db, log)
	genreService := services.NewGenreService(db, log)
	peopleService := services.NewPeopleService(db, log)
	ratingService := services.NewRatingService(db, log)
	favoriteService := services.NewFavoriteService(db, log)

	app := fiber.New(fiber.Config{
		AppName:      "Neoflix API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
		UnescapePath: true,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: utils.ErrorHandler(log),
	})

	setupMiddleware(app, cfg.Server)

	app.Get("/health", healthCheckHandler(db))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, routes.Handlers{
		Auth:    handlers.NewAuthHandler(authService, log),
		Account: handlers.NewAccountHandler(favoriteService, ratingService, log),
		Movies:  handlers.NewMovieHandler(movieService, ratingService, log),
		Genres:  handlers.NewGenreHandler(genreService, movieService, log),
		People:  handlers.NewPeopleHandler(peopleService, movieService, log),
	}, middleware.Authenticate(tokens, log))

	setupStatic(app, cfg.Server.PublicDir, log)

	go gracefulShutdown(app, log)

	log.Infof("Neoflix API starting on port %s", cfg.Server.Port)
	if err := app.Listen(cfg.Address()); err != nil {
		log.Errorf("HTTP server stopped: %v", err)
	}
}

func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if cfg.Env == "dev" || cfg.Env == "development" {
		log.SetLevel(logrus.DebugLevel)
	}
	if cfg.Level != "" {
		level, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			log.Warnf("Ignoring invalid LOG_LEVEL %q", cfg.Level)
		} else {
			log.SetLevel(level)
		}
	}

	return log
}

func setupMiddleware(app *fiber.App, cfg config.ServerConfig) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	app.Use(middleware.Metrics())

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

// setupStatic serves the web client. Paths without a file fall back to
// index.html so client-side routes survive a reload.
func setupStatic(app *fiber.App, dir string, log *logrus.Logger) {
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		log.WithField("dir", dir).Warn("No web client found, static files disabled")
		return
	}

	app.Static("/", dir)
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendFile(index)
	})
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(c.UserContext()); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "neoflix",
			"version":   "1.0.0",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}

	// a .env next to the binary fills whatever is still unset
	_ = godotenv.Load(filepath.Join(execDir, ".env"))
}
