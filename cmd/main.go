package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/recipeshare/server/internal/facades"
	"github.com/recipeshare/server/internal/handlers"
	"github.com/recipeshare/server/internal/jwt"
	"github.com/recipeshare/server/internal/logger"
	"github.com/recipeshare/server/internal/mailer"
	"github.com/recipeshare/server/internal/middlewares"
	"github.com/recipeshare/server/internal/migrations"
	"github.com/recipeshare/server/internal/repositories"
	"github.com/recipeshare/server/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	OptionsTTL    int

	KafkaBrokers string
	KafkaTopic   string

	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	JWTSecretKey string
	JWTExpSecond int
}

// @title recipeshare API
// @version 1.0.0
// @description Backend for a recipe-sharing application: accounts with email verification and recipe CRUD with ingredients, instructions, tags and images
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration with defaults for everything optional.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "recipes")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.OptionsTTL, err = strconv.Atoi(getEnv("OPTIONS_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config, optional: empty brokers disable event publishing
	cfg.KafkaBrokers = getEnv("KAFKA_BROKERS", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "recipe-events")

	// S3 / MinIO config
	cfg.S3Region = getEnv("S3_REGION", "us-east-1")
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", "")
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", "")
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", "")
	cfg.S3Bucket = getEnv("S3_BUCKET", "recipe-images")

	// SMTP config, optional: empty host disables verification emails
	cfg.SMTPHost = getEnv("SMTP_HOST", "")
	if cfg.SMTPPort, err = strconv.Atoi(getEnv("SMTP_PORT", "587")); err != nil {
		return
	}
	cfg.SMTPUsername = getEnv("SMTP_USERNAME", "")
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	cfg.SMTPFrom = getEnv("SMTP_FROM", "")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, storage, brokers and HTTP server, sets up
// routes and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Run migrations
	if err := migrations.Up(db.DB); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}
	logger.Log.Info("Migrations applied")

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}
	eventPublisher := services.NewRecipeEventPublisher(kafkaWriter)

	// Media store
	s3Client, err := facades.NewS3Client(ctx, cfg.S3Region, cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey)
	if err != nil {
		logger.Log.Errorw("S3 client error", "error", err)
		return err
	}
	media := facades.NewMediaFacade(s3Client, cfg.S3Bucket)

	// Verification mailer, optional
	var codeSender services.CodeSender
	if cfg.SMTPHost != "" {
		codeSender, err = mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
		if err != nil {
			logger.Log.Errorw("mailer init error", "error", err)
			return err
		}
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	recipeReadRepo := repositories.NewRecipeReadRepository(db)
	recipeWriteRepo := repositories.NewRecipeWriteRepository(db)
	ingredientRepo := repositories.NewIngredientRepository(db)
	instructionRepo := repositories.NewInstructionRepository(db)
	taxonomyRepo := repositories.NewTaxonomyRepository(db)
	imageRepo := repositories.NewImageRepository(db)
	optionsCache := repositories.NewOptionsCacheRepository(rdb, time.Duration(cfg.OptionsTTL)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, codeSender)
	recipeReadService := services.NewRecipeReadService(
		recipeReadRepo, ingredientRepo, instructionRepo, taxonomyRepo, imageRepo, optionsCache)
	recipeWriteService := services.NewRecipeWriteService(
		recipeWriteRepo, ingredientRepo, instructionRepo, taxonomyRepo, imageRepo, media, eventPublisher)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public user routes
	r.Route("/users", func(r chi.Router) {
		r.Post("/signup", handlers.NewSignupHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/verify", handlers.NewVerifyHandler(authService))
		r.Post("/logout", handlers.NewLogoutHandler())

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))
			r.Put("/update-details", handlers.NewUpdateDetailsHandler(authService))
		})
	})

	// Recipe routes: reads are public, aggregate writes are protected and
	// transactional
	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", handlers.NewListRecipesHandler(recipeReadService))
		r.Get("/search", handlers.NewSearchRecipesHandler(recipeReadService))
		r.Get("/recipe", handlers.NewGetRecipeHandler(recipeReadService))
		r.Get("/my-recipes", handlers.NewMyRecipesHandler(recipeReadService))
		r.Get("/options", handlers.NewOptionsHandler(recipeReadService))
		r.Get("/images/{key}", handlers.NewImageHandler(media))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/add-recipe", handlers.NewAddRecipeHandler(recipeWriteService))
			r.Put("/edit-recipe", handlers.NewEditRecipeHandler(recipeWriteService))
			r.Delete("/recipe", handlers.NewDeleteRecipeHandler(recipeWriteService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
