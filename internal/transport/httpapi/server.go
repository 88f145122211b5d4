package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sandevgo/mordomo/internal/config"
	"github.com/sandevgo/mordomo/pkg/log"
)

// Server implements srv.Service.
type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func NewServer(ctx context.Context, cfg *config.HTTPConfig, h *Handler) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)
	r.Use(requestLogger)

	r.Get("/", h.Root)
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.Chat)
		r.Post("/speak", h.Speak)
		r.Post("/stt", h.Transcribe)
		r.Get("/weather", h.Weather)
		r.Get("/history", h.History)
	})
	r.Get("/ws", h.HandleWebSocket)

	return &Server{
		httpServer: &http.Server{
			Addr:    cfg.Addr,
			Handler: r,
			// Propagate the service context (and its logger) to handlers.
			BaseContext: func(net.Listener) context.Context { return ctx },
		},
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.httpServer.Addr).Msg("http server listening")

	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	// The parent context is already done at shutdown time; use a fresh one.
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
