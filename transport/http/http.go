package http

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"localmarket/config"
	"localmarket/internal/bootstrap"
	"localmarket/shared/constant"
	"localmarket/transport/http/middleware"
	"localmarket/transport/http/response"
	"localmarket/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
)

type HTTP struct {
	Config    *config.Config
	Router    router.Router
	Bootstrap bootstrap.Bootstrap
	State     ServerState

	mw     middleware.AppMiddleware
	server *http.Server
}

func New(cfg *config.Config, r router.Router, b bootstrap.Bootstrap, mw middleware.AppMiddleware) *HTTP {
	return &HTTP{
		Config:    cfg,
		Router:    r,
		Bootstrap: b,
		mw:        mw,
	}
}

func (h *HTTP) Serve() {
	if err := h.Bootstrap.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap database")
	}

	h.setup()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func (h *HTTP) setup() {
	mux := chi.NewRouter()

	if h.Config.App.CORS.Enable {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	mux.Use(h.mw.Tracing)

	mux.Get("/health", h.HealthCheck)
	h.Router.SetupRoutes(mux)

	h.server = &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", h.Config.Server.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	h.setupGracefulShutdown()
	h.State = ServerStateReady
}

// HealthCheck indicates the server is up.
func (h *HTTP) HealthCheck(writer http.ResponseWriter, request *http.Request) {
	response.WithJSON(writer, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(constant.DateFormat),
	})
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State = ServerStateInGracePeriod

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.GracePeriodSeconds)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server cleanly")
	}

	log.Info().Msg("Cleanup completed. Shutting down now.")
}
