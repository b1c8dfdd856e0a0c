package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ecosempre/ecosempre/internal/article"
	"github.com/ecosempre/ecosempre/internal/collectionpoint"
	"github.com/ecosempre/ecosempre/internal/config"
	"github.com/ecosempre/ecosempre/internal/contact"
	"github.com/ecosempre/ecosempre/internal/database"
	"github.com/ecosempre/ecosempre/internal/handler"
	"github.com/ecosempre/ecosempre/internal/logger"
	"github.com/ecosempre/ecosempre/internal/metrics"
	"github.com/ecosempre/ecosempre/internal/newsletter"
	"github.com/ecosempre/ecosempre/internal/repository"
	"github.com/ecosempre/ecosempre/internal/security"
	"github.com/ecosempre/ecosempre/internal/user"
)

// Init performs application initialization.
// It sets up JSON structured logging and loads the Config from the
// environment. Logs go to the given writer.
func Init(w io.Writer) (*config.Config, error) {
	// Logging first, so config failures are already structured.
	logger.SetupDefault(w)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run is the application entry point. It parses the subcommand from args
// (pass os.Args[1:]) and starts the corresponding mode.
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck skips full initialization; it only needs the port.
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8080"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
		slog.String("base_url", cfg.BaseURL),
	)

	switch cmd {
	case CommandMigrate:
		return runMigrate(cfg)
	default:
		return runServe(cfg)
	}
}

// runServe starts the API server. It opens the database, wires every
// dependency, and serves until SIGINT or SIGTERM triggers a graceful
// shutdown.
func runServe(cfg *config.Config) error {
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established")

	// repositories
	userRepo := repository.NewPostgresUserRepo(db)
	articleRepo := repository.NewPostgresArticleRepo(db)
	contactRepo := repository.NewPostgresContactRepo(db)
	newsletterRepo := repository.NewPostgresNewsletterRepo(db)
	pointRepo := repository.NewPostgresCollectionPointRepo(db)

	// domain services
	sanitizer := security.NewContentSanitizer()

	userService := user.NewService(userRepo)
	articleService := article.NewService(articleRepo, sanitizer, article.ServiceConfig{
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	})
	contactService := contact.NewService(contactRepo)
	newsletterService := newsletter.NewService(newsletterRepo)
	pointService := collectionpoint.NewService(pointRepo)

	// metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// router
	router := handler.NewRouter(&handler.RouterDeps{
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		Metrics:           collector,
		MetricsHandler:    metrics.Handler(registry),
		HealthChecker:     db,

		UserService:            userService,
		ArticleService:         articleService,
		ContactService:         contactService,
		NewsletterService:      newsletterService,
		CollectionPointService: pointService,
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("API server stopped gracefully")
	return nil
}

// runMigrate applies every pending database migration in order.
func runMigrate(cfg *config.Config) error {
	slog.Info("running database migrations",
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database migrations completed successfully")
	return nil
}

// runHealthcheck sends a request to the local /health endpoint and reports
// the result. Used as the Docker healthcheck subcommand in distroless
// images where curl is unavailable.
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// maskDatabaseURL hides the credentials portion of a database URL.
func maskDatabaseURL(url string) string {
	if len(url) > 20 {
		return url[:12] + "***@..."
	}
	return "***"
}
