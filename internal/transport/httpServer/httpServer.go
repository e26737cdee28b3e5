package httpServer

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"countdown/internal/config"
	"countdown/internal/transport/httpServer/routers"
	"countdown/internal/utils/logger/sl"

	"github.com/go-chi/chi/v5"
)

type HttpServer struct {
	log    *slog.Logger
	server *http.Server
}

func NewHttpServer(log *slog.Logger, router *routers.Router, cfg *config.Config) *HttpServer {
	mux := chi.NewMux()
	router.Mount(mux)

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.HttpServer.Address, cfg.HttpServer.Port),
		Handler:           mux,
		ReadHeaderTimeout: cfg.HttpServer.Timeout,
		IdleTimeout:       cfg.HttpServer.IdleTimeout,
	}

	return &HttpServer{
		log:    log,
		server: server,
	}
}

// Listen serves until Shutdown is called.
func (s *HttpServer) Listen() {
	op := "httpServer.HttpServer.Listen()"
	log := s.log.With(slog.String("op", op))

	log.Info("http server listening", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http server stopped", sl.Err(err))
	}
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
