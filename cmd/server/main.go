package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amar2mail9/Polytechub.com/application"
	"github.com/amar2mail9/Polytechub.com/domain/contracts"
	"github.com/amar2mail9/Polytechub.com/infrastructure/cmsclient"
	"github.com/amar2mail9/Polytechub.com/infrastructure/config"
	"github.com/amar2mail9/Polytechub.com/infrastructure/mailrelay"
	"github.com/amar2mail9/Polytechub.com/interfaces/web/handlers"
	"github.com/amar2mail9/Polytechub.com/interfaces/web/middleware"
	"github.com/amar2mail9/Polytechub.com/interfaces/web/presenters"
	"github.com/amar2mail9/Polytechub.com/logging"
)

func main() {
	loadEnvironment()
	cfg := config.LoadAppConfigFromEnv()

	logger := initializeLogging(cfg)
	deps := buildDependencies(cfg, logger)

	router := setupRoutes(deps, cfg)
	startServer(router, cfg.HTTPAddr, logger)
}

// Services holds the application services.
type Services struct {
	Content *application.ContentService
	Contact *application.ContactService
}

// PresentationLayer groups presenters and handlers.
type PresentationLayer struct {
	PostPresenter     *presenters.PostPresenter
	CategoryPresenter *presenters.CategoryPresenter

	PageHandlers    *handlers.PageHandlers
	SearchHandlers  *handlers.SearchHandlers
	ContactHandlers *handlers.ContactHandlers
}

// Dependencies holds all application dependencies organized by layer.
type Dependencies struct {
	Logger *logging.Logger

	ContentSource contracts.ContentSource
	MailRelay     contracts.MailRelay

	Services     *Services
	Presentation *PresentationLayer
}

func loadEnvironment() {
	if err := godotenv.Load(); err != nil {
		println("No .env file found, using environment variables")
	} else {
		println("Loaded configuration from .env file")
	}
}

func initializeLogging(cfg *config.AppConfig) *logging.Logger {
	logger := logging.NewLogger(cfg.Logging)
	logging.SetDefault(logger)

	logger.Info("Application starting",
		"log_level", cfg.Logging.Level,
		"log_format", cfg.Logging.Format,
		"cms_api_url", cfg.CMSBaseURL,
	)
	return logger
}

func buildDependencies(cfg *config.AppConfig, logger *logging.Logger) *Dependencies {
	if cfg.CMSBaseURL == "" {
		logger.Error("CMS_API_URL is not configured")
		os.Exit(1)
	}

	source := cmsclient.New(cfg.CMSBaseURL, cfg.CMSTimeout, logger)
	relay := mailrelay.New(cfg.MailRelay, cfg.MailRelayTimeout, logger)

	services := &Services{
		Content: application.NewContentService(source, logger),
		Contact: application.NewContactService(relay, logger),
	}

	postPresenter := presenters.NewPostPresenter()
	categoryPresenter := presenters.NewCategoryPresenter()

	presentation := &PresentationLayer{
		PostPresenter:     postPresenter,
		CategoryPresenter: categoryPresenter,
		PageHandlers:      handlers.NewPageHandlers(services.Content, postPresenter, categoryPresenter, logger),
		SearchHandlers:    handlers.NewSearchHandlers(services.Content, logger),
		ContactHandlers:   handlers.NewContactHandlers(services.Contact, logger),
	}

	return &Dependencies{
		Logger:        logger,
		ContentSource: source,
		MailRelay:     relay,
		Services:      services,
		Presentation:  presentation,
	}
}

func setupRoutes(deps *Dependencies, cfg *config.AppConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)
	setupHTTPLogging(r, deps, cfg)
	r.Use(chimw.Recoverer)

	setupSystemRoutes(r)
	setupPageRoutes(r, deps)

	return r
}

func setupHTTPLogging(r *chi.Mux, deps *Dependencies, cfg *config.AppConfig) {
	if cfg.HTTPLogPath == "" {
		// No HTTP logging configured, skip
		return
	}

	logFile, err := os.OpenFile(cfg.HTTPLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		deps.Logger.Error("Failed to open HTTP log file", "error", err, "path", cfg.HTTPLogPath)
		return
	}
	// Note: logFile stays open for the server lifetime

	httpLogger := httplog.NewLogger("polytechub", httplog.Options{
		Writer: logFile,
		JSON:   true,
	})
	r.Use(httplog.RequestLogger(httpLogger))

	deps.Logger.Info("HTTP request logging enabled", "path", cfg.HTTPLogPath)
}

func setupSystemRoutes(r *chi.Mux) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
}

func setupPageRoutes(r *chi.Mux, deps *Dependencies) {
	p := deps.Presentation

	r.Get("/", p.PageHandlers.Home)
	r.Get("/blog-page", p.PageHandlers.BlogPage)
	r.Get("/blog-page/{slug}", p.PageHandlers.PostDetail)
	r.Get("/category/{category}", p.PageHandlers.CategoryPage)
	r.Get("/search", p.SearchHandlers.QuickSearch)
	r.Get("/contact-us", p.ContactHandlers.ContactPage)
	r.Post("/contact-us", p.ContactHandlers.SubmitContact)

	r.NotFound(p.PageHandlers.NotFound)
}

func startServer(router *chi.Mux, addr string, logger *logging.Logger) {
	server := &http.Server{Addr: addr, Handler: router}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sig
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 30*time.Second)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				logger.Error("Graceful shutdown timed out, forcing exit")
				os.Exit(1)
			}
		}()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
			os.Exit(1)
		}
		serverStopCtx()
	}()

	logger.Info("Server starting", "address", addr)
	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-serverCtx.Done()
	logger.Info("Server stopped")
}
