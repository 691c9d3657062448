package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"customer-records/internal/config"
	"customer-records/internal/database"
	"customer-records/internal/handlers"
	"customer-records/internal/middleware"
	"customer-records/internal/repositories"
	"customer-records/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodySize = "1M"

// Server is the HTTP front of the record store
type Server struct {
	cfg         *config.Config
	echo        *echo.Echo
	httpServer  *http.Server
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

// New wires repositories, services and handlers on top of db and registers the
// routes. Metrics are registered with reg and exposed on /metrics.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger, reg *prometheus.Registry) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(reg).Handle

	customerRepo := repositories.NewCustomerRepository(db.DB)
	interactionRepo := repositories.NewInteractionRepository(db.DB)

	recordLogger := services.NewRecordLogger(logger)
	metrics := services.NewPrometheusMetrics(reg)

	customerService := services.NewCustomerService(customerRepo, recordLogger, metrics)
	interactionService := services.NewInteractionService(interactionRepo, customerRepo, recordLogger, metrics, cfg.Search)
	searchService := services.NewCustomerSearchService(customerRepo, recordLogger, metrics, cfg.Search)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(maxBodySize))

	healthHandler := handlers.NewHealthCheckHandler(db)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	customerHandler := handlers.NewCustomerHandler(customerService, searchService, cfg.Search.DefaultLimit)
	interactionHandler := handlers.NewInteractionHandler(interactionService, cfg.Search.DefaultLimit)

	api := e.Group("/api/v1", rateLimiter.Middleware())

	customers := api.Group("/customers")
	customers.POST("", customerHandler.CreateCustomer)
	customers.GET("/search", customerHandler.SearchCustomers)
	customers.GET("/:id", customerHandler.GetCustomer)
	customers.PUT("/:id", customerHandler.UpdateCustomer)
	customers.DELETE("/:id", customerHandler.DeleteCustomer)
	customers.GET("/:id/interactions", interactionHandler.ListCustomerInteractions)

	interactions := api.Group("/interactions")
	interactions.POST("", interactionHandler.CreateInteraction)
	interactions.GET("/:id", interactionHandler.GetInteraction)
	interactions.PUT("/:id", interactionHandler.UpdateInteraction)
	interactions.DELETE("/:id", interactionHandler.DeleteInteraction)

	return &Server{
		cfg:  cfg,
		echo: e,
		httpServer: &http.Server{
			Addr:         cfg.Server.Address(),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured shutdown timeout
func (s *Server) Run(ctx context.Context) error {
	go s.rateLimiter.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "address", s.httpServer.Addr, "environment", s.cfg.Server.Environment)
		if err := s.echo.StartServer(s.httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server", "timeout", s.cfg.Server.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	return s.echo.Shutdown(shutdownCtx)
}
