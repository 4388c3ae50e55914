// Package http is the REST transport: it owns the router, the cookie
// handling, the auth gate and the mapping from service errors to HTTP
// status codes.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/reportvault/internal/logging"
	"github.com/dmitrijs2005/reportvault/internal/server/config"
	"github.com/dmitrijs2005/reportvault/internal/server/services"
)

// sessionCookieName is the cookie under which the session token travels.
const sessionCookieName = "usertoken"

type HTTPServer struct {
	address      string
	logger       logging.Logger
	users        *services.UserService
	reports      *services.ReportService
	locations    *services.LocationService
	jwtSecret    []byte
	production   bool
	maxBodyBytes int64
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us *services.UserService, rs *services.ReportService, ls *services.LocationService) *HTTPServer {
	return &HTTPServer{
		address:      cfg.EndpointAddr,
		logger:       l.With("module", "http_server"),
		users:        us,
		reports:      rs,
		locations:    ls,
		jwtSecret:    []byte(cfg.SecretKey),
		production:   cfg.IsProduction(),
		maxBodyBytes: cfg.MaxBodyBytes,
	}
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
