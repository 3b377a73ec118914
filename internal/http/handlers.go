package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"genie-scoreboard-service/internal/content"
	"genie-scoreboard-service/internal/countdown"
	"genie-scoreboard-service/internal/domain"
	"genie-scoreboard-service/internal/game"
	"genie-scoreboard-service/internal/intro"
	"genie-scoreboard-service/internal/logging"
	"genie-scoreboard-service/internal/playlist"
)

// Handler wires the operator console routes to the scoreboard engine and
// its collaborators.
type Handler struct {
	engine    *game.Engine
	clock     *countdown.Countdown
	sequencer *intro.Sequencer
	playlist  *playlist.Playlist
	content   content.Provider
	logger    *slog.Logger
}

// NewHandler constructs a Handler. Any collaborator may be nil in tests.
func NewHandler(engine *game.Engine, clock *countdown.Countdown, sequencer *intro.Sequencer, pl *playlist.Playlist, provider content.Provider, logger *slog.Logger) *Handler {
	return &Handler{
		engine:    engine,
		clock:     clock,
		sequencer: sequencer,
		playlist:  pl,
		content:   provider,
		logger:    logger,
	}
}

type pointsRequest struct {
	Points int `json:"points"`
}

type addPlayerRequest struct {
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type colorRequest struct {
	Color string `json:"color"`
}

type nameRequest struct {
	Name string `json:"name"`
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// GetState returns the full board state.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.State(), h.logger)
}

// GetHistory returns the score history alone.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history := h.engine.State().History
	if history == nil {
		history = []domain.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, history, h.logger)
}

// AddTeamPoints applies a team-level score delta.
func (h *Handler) AddTeamPoints(w http.ResponseWriter, r *http.Request) {
	team, ok := h.teamIndex(w, r)
	if !ok {
		return
	}
	var req pointsRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.engine.ApplyTeamDelta(team, req.Points)
	writeJSON(w, http.StatusOK, h.engine.State(), h.logger)
}

// AddPlayerPoints applies a player-level score delta.
func (h *Handler) AddPlayerPoints(w http.ResponseWriter, r *http.Request) {
	team, ok := h.teamIndex(w, r)
	if !ok {
		return
	}
	var req pointsRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.engine.ApplyPlayerDelta(team, chi.URLParam(r, "playerID"), req.Points); err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.engine.State(), h.logger)
}

// AddPlayer registers a new player on a team roster.
func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	team, ok := h.teamIndex(w, r)
	if !ok {
		return
	}
	var req addPlayerRequest
	if !h.decode(w, r, &req) {
		return
	}

	player, err := h.engine.AddPlayer(team, req.Name, req.Photo)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, player, h.logger)
}

// TogglePlayer flips a player's active flag.
func (h *Handler) TogglePlayer(w http.ResponseWriter, r *http.Request) {
	team, ok := h.teamIndex(w, r)
	if !ok {
		return
	}
	if err := h.engine.TogglePlayerActive(team, chi.URLParam(r, "playerID")); err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.engine.State(), h.logger)
}

// SetTeamColor updates a team's display color.
func (h *Handler) SetTeamColor(w http.ResponseWriter, r *http.Request) {
	team, ok := h.teamIndex(w, r)
	if !ok {
		return
	}
	var req colorRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.engine.SetTeamColor(team, req.Color)
	writeJSON(w, http.StatusOK, h.engine.State(), h.logger)
}

// RenameTeam updates a team's display name.
func (h *Handler) RenameTeam(w http.ResponseWriter, r *http.Request) {
	team, ok := h.teamIndex(w, r)
	if !ok {
		return
	}
	var req nameRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.engine.RenameTeam(team, req.Name); err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.engine.State(), h.logger)
}

// SwapTeams exchanges the two display sides.
func (h *Handler) SwapTeams(w http.ResponseWriter, r *http.Request) {
	h.engine.SwapSides()
	writeJSON(w, http.StatusOK, h.engine.State(), h.logger)
}

// StartGame moves the board into the intro sequence and kicks off the
// background audio.
func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.StartGame(); err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	if h.sequencer != nil {
		h.sequencer.Run()
	}
	if h.playlist != nil {
		h.playlist.Start()
	}
	writeJSON(w, http.StatusOK, h.engine.State(), h.logger)
}

// EndGame finishes the match.
func (h *Handler) EndGame(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.EndGame(); err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.engine.State(), h.logger)
}

// ResetGame discards the board for a fresh one.
func (h *Handler) ResetGame(w http.ResponseWriter, r *http.Request) {
	h.engine.Reset()
	writeJSON(w, http.StatusOK, h.engine.State(), h.logger)
}

// TimerStatus reports the match clock.
func (h *Handler) TimerStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"remaining": h.clock.Remaining(),
		"running":   h.clock.Running(),
	}, h.logger)
}

// StartTimer starts the match clock.
func (h *Handler) StartTimer(w http.ResponseWriter, r *http.Request) {
	h.clock.Start()
	w.WriteHeader(http.StatusNoContent)
}

// PauseTimer pauses the match clock.
func (h *Handler) PauseTimer(w http.ResponseWriter, r *http.Request) {
	h.clock.Pause()
	w.WriteHeader(http.StatusNoContent)
}

// ResumeTimer resumes a paused match clock.
func (h *Handler) ResumeTimer(w http.ResponseWriter, r *http.Request) {
	h.clock.Resume()
	w.WriteHeader(http.StatusNoContent)
}

// ResetTimer stops the clock and restores the full match duration.
func (h *Handler) ResetTimer(w http.ResponseWriter, r *http.Request) {
	h.clock.Reset()
	w.WriteHeader(http.StatusNoContent)
}

// StartAudio starts the background playlist.
func (h *Handler) StartAudio(w http.ResponseWriter, r *http.Request) {
	h.playlist.Start()
	w.WriteHeader(http.StatusNoContent)
}

// NextAudio advances the rotation when a display reports the current track
// finished.
func (h *Handler) NextAudio(w http.ResponseWriter, r *http.Request) {
	h.playlist.Advance()
	w.WriteHeader(http.StatusNoContent)
}

// StopAudio stops the background playlist.
func (h *Handler) StopAudio(w http.ResponseWriter, r *http.Request) {
	h.playlist.Stop()
	w.WriteHeader(http.StatusNoContent)
}

// ToggleMute flips the playlist mute flag.
func (h *Handler) ToggleMute(w http.ResponseWriter, r *http.Request) {
	muted := h.playlist.ToggleMute()
	writeJSON(w, http.StatusOK, map[string]bool{"muted": muted}, h.logger)
}

// GetRubrics serves the question rubrics. A content outage degrades to an
// empty list so the board stays usable for manual play.
func (h *Handler) GetRubrics(w http.ResponseWriter, r *http.Request) {
	rubrics, err := h.content.FetchRubrics(r.Context())
	if err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "rubrics unavailable", "err", err)
		writeJSON(w, http.StatusOK, []domain.Rubric{}, h.logger)
		return
	}
	if rubrics == nil {
		rubrics = []domain.Rubric{}
	}
	writeJSON(w, http.StatusOK, rubrics, h.logger)
}

// teamIndex parses and validates the {index} route parameter, so the engine's
// out-of-range panic is unreachable from HTTP input.
func (h *Handler) teamIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	switch chi.URLParam(r, "index") {
	case "0":
		return 0, true
	case "1":
		return 1, true
	default:
		writeError(w, r, http.StatusBadRequest, "invalid team index", h.logger)
		return 0, false
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return false
	}
	return true
}

func (h *Handler) writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, game.ErrEmptyName):
		// Blank names are silently ignored, matching console behavior.
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, game.ErrPlayerNotFound):
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
	case errors.Is(err, game.ErrWrongPhase):
		writeError(w, r, http.StatusConflict, "operation not allowed in current phase", h.logger)
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error", h.logger)
	}
}
