package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/api/handlers/http/admin"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/api/handlers/http/public"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/api/handlers/http/system"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/config"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/middleware"
	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/service"
)

const maxBodyBytes = 1 << 20

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

// NewServer builds the HTTP server. ctx bounds the lifetime of the rate
// limiter sweepers.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, health map[string]system.Pinger) *Server {
	adminHandler := admin.NewHandler(logger, svc.CenterService, svc.BarangayService, svc.StatsService)
	publicHandler := public.NewHandler(logger, svc.CenterService, svc.SummaryService, svc.LocationService)
	systemHandler := system.NewHandler(logger, health)

	r := InitRouter(ctx, cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func (s *Server) Handler() http.Handler { return s.router }

func InitRouter(
	ctx context.Context,
	cfg *config.Config,
	adminHandler *admin.Handler,
	publicHandler *public.Handler,
	systemHandler *system.Handler,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	// RequestID goes first so chi's Logger and the handlers see the same id
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.RequireJSON(maxBodyBytes))

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(ctx, 5, 20, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)

			ar.Route("/centers", func(cr chi.Router) {
				cr.Post("/", adminHandler.AdminCenterCreate)
				cr.Get("/", adminHandler.AdminCenterList)

				cr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminCenterGet)
					rr.Put("/", adminHandler.AdminCenterUpdate)
					rr.Delete("/", adminHandler.AdminCenterDelete)
					rr.Put("/active", adminHandler.AdminCenterSetActive)
					rr.Put("/occupancy", adminHandler.AdminCenterOccupancy)
				})
			})

			ar.Route("/barangays", func(br chi.Router) {
				br.Post("/", adminHandler.AdminBarangayCreate)
				br.Get("/", adminHandler.AdminBarangayList)
			})
		})

		// PUBLIC
		api.Get("/centers", publicHandler.PublicCenterList)
		api.Get("/centers/{id}", publicHandler.PublicCenterGet)
		api.Get("/summary", publicHandler.PublicSummary)

		api.Route("/location", func(pr chi.Router) {
			pr.Use(middleware.Limit(ctx, 10, 20, 5*time.Minute, logger))
			pr.Post("/check", publicHandler.PublicLocationCheck)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
