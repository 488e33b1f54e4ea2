package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/assetledger/apiserver/config"
	"github.com/assetledger/apiserver/internal/db"
	"github.com/assetledger/apiserver/internal/handlers"
	"github.com/assetledger/apiserver/internal/services"
	"github.com/assetledger/apiserver/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const defaultPort = 8000

// Server wraps the HTTP server and the database pool it serves from.
type Server struct {
	httpServer *http.Server
	db         *sql.DB
	logger     *zap.Logger
}

// New opens the database, creates missing tables and builds the HTTP server.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.EnsureSchema(ctx, dbConn); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	router := NewRouter(cfg, dbConn, logger)

	port := cfg.ServerPort
	if port == 0 {
		port = defaultPort
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		db:         dbConn,
		logger:     logger,
	}, nil
}

// NewRouter wires the repositories, services and handlers over conn.
func NewRouter(cfg config.Config, conn *sql.DB, logger *zap.Logger) *chi.Mux {
	userService := services.NewUserService(store.NewUserRepository(conn))
	equipmentService := services.NewEquipmentService(store.NewEquipmentRepository(conn))

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		requestLogger(logger),
		middleware.Recoverer,
		middleware.Timeout(60*time.Second),
	)
	if cfg.CORS.Enabled() {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}

	router.Get("/", handlers.Home)
	router.Get("/healthz", handlers.Healthz(conn, logger))
	router.Route("/api/users", func(r chi.Router) {
		handlers.UserRouter(r, userService, logger)
	})
	router.Route("/api/equipment", func(r chi.Router) {
		handlers.EquipmentRouter(r, equipmentService, logger)
	})

	return router
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.logger.Info("listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if s.db != nil {
		err = multierr.Append(err, s.db.Close())
	}
	return err
}
