package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"genie-scoreboard-service/internal/celebrate"
	"genie-scoreboard-service/internal/classify"
	"genie-scoreboard-service/internal/config"
	"genie-scoreboard-service/internal/content"
	"genie-scoreboard-service/internal/countdown"
	"genie-scoreboard-service/internal/game"
	"genie-scoreboard-service/internal/hub"
	httpapi "genie-scoreboard-service/internal/http"
	"genie-scoreboard-service/internal/intro"
	"genie-scoreboard-service/internal/logging"
	"genie-scoreboard-service/internal/metrics"
	"genie-scoreboard-service/internal/playlist"
)

var metricsSetup = metrics.Setup

// Server owns the scoreboard engine, its collaborators and both HTTP
// listeners.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	engine        *game.Engine
	hub           *hub.Hub
	clock         *countdown.Countdown
	sequencer     *intro.Sequencer
	playlist      *playlist.Playlist
	content       content.Provider
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a fully wired server from configuration.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	broadcast := hub.New(logger, recorder, cfg.AllowedOrigins)
	provider := buildContentProvider(cfg, logger, recorder)

	dispatcher := celebrate.NewDispatcher(broadcast, logger, recorder)
	engine := game.NewEngine(classify.NewRand(), dispatcher, logger, recorder)
	engine.SetPublisher(broadcast)
	broadcast.SetStateSource(func() any { return engine.State() })

	clock := countdown.New(time.Duration(cfg.MatchDuration), broadcast, logger)
	pl := playlist.New(nil, broadcast, logger)
	sequencer := intro.New(nil, broadcast, logger, func() {
		if err := engine.BeginPlay(); err != nil {
			logging.Warn(logger, "intro finished outside intro phase", "err", err)
			return
		}
		clock.Start()
	})
	engine.Attach(clock, sequencer, pl)

	httpSrv := buildHTTPServer(cfg, engine, broadcast, clock, sequencer, pl, provider, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		engine:        engine,
		hub:           broadcast,
		clock:         clock,
		sequencer:     sequencer,
		playlist:      pl,
		content:       provider,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, engine *game.Engine, broadcast *hub.Hub, clock *countdown.Countdown, sequencer *intro.Sequencer, pl *playlist.Playlist, provider content.Provider, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := httpapi.NewHandler(engine, clock, sequencer, pl, provider, logger)
	router := httpapi.NewRouter(handler, broadcast, logger, recorder, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}
	return rec, metricsSrv, shutdown
}

// Run starts the hub and both listeners, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	go s.hub.Run(ctx)
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")
	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.clock.Stop()
	s.sequencer.Stop()
	s.playlist.Stop()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "err", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "err", err)
		}
	}
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "err", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
