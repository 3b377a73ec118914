package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"genie-scoreboard-service/internal/metrics"
)

// WSHandler serves the display WebSocket endpoint; the hub implements it.
type WSHandler interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
}

// NewRouter assembles the operator console API.
func NewRouter(h *Handler, ws WSHandler, logger *slog.Logger, recorder *metrics.Recorder, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(LoggingMiddleware(logger, recorder))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	if ws != nil {
		r.Get("/ws", ws.ServeWS)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.GetState)
		r.Get("/history", h.GetHistory)
		r.Get("/rubrics", h.GetRubrics)

		r.Route("/teams", func(r chi.Router) {
			r.Post("/swap", h.SwapTeams)
			r.Route("/{index}", func(r chi.Router) {
				r.Post("/points", h.AddTeamPoints)
				r.Put("/color", h.SetTeamColor)
				r.Put("/rename", h.RenameTeam)
				r.Post("/players", h.AddPlayer)
				r.Post("/players/{playerID}/points", h.AddPlayerPoints)
				r.Post("/players/{playerID}/active", h.TogglePlayer)
			})
		})

		r.Route("/timer", func(r chi.Router) {
			r.Get("/", h.TimerStatus)
			r.Post("/start", h.StartTimer)
			r.Post("/pause", h.PauseTimer)
			r.Post("/resume", h.ResumeTimer)
			r.Post("/reset", h.ResetTimer)
		})

		r.Route("/game", func(r chi.Router) {
			r.Post("/start", h.StartGame)
			r.Post("/end", h.EndGame)
			r.Post("/reset", h.ResetGame)
		})

		r.Route("/audio", func(r chi.Router) {
			r.Post("/start", h.StartAudio)
			r.Post("/track-ended", h.NextAudio)
			r.Post("/stop", h.StopAudio)
			r.Post("/mute", h.ToggleMute)
		})
	})

	return r
}
