package http

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
	"strings"
	"testing"
	"time"

	"genie-scoreboard-service/internal/celebrate"
	"genie-scoreboard-service/internal/classify"
	"genie-scoreboard-service/internal/countdown"
	"genie-scoreboard-service/internal/domain"
	"genie-scoreboard-service/internal/game"
	"genie-scoreboard-service/internal/playlist"
	"genie-scoreboard-service/internal/teststubs"
	"genie-scoreboard-service/internal/testutil"
)

type testFixture struct {
	router  nethttp.Handler
	engine  *game.Engine
	effects *teststubs.EffectRecorder
	content *teststubs.ContentProvider
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()

	effects := &teststubs.EffectRecorder{}
	provider := &teststubs.ContentProvider{
		Rubrics: []domain.Rubric{testutil.SampleRubric("r1", 1)},
	}

	rng := &classify.FixedRand{Values: []float64{0.9}}
	dispatcher := celebrate.NewDispatcher(effects, nil, nil)
	engine := game.NewEngine(rng, dispatcher, nil, nil)

	clock := countdown.New(10*time.Minute, nil, nil)
	pl := playlist.New(nil, nil, nil)

	h := NewHandler(engine, clock, nil, pl, provider, nil)
	router := NewRouter(h, nil, nil, nil, nil)

	return &testFixture{router: router, engine: engine, effects: effects, content: provider}
}

func (f *testFixture) serve(t *testing.T, method, path, body string) *struct {
	Code int
	Body string
} {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	rr := testutil.Serve(f.router, method, path, reader)
	return &struct {
		Code int
		Body string
	}{Code: rr.Code, Body: rr.Body.String()}
}

func TestHealthAndReady(t *testing.T) {
	f := newFixture(t)

	for _, path := range []string{"/health", "/ready"} {
		resp := f.serve(t, nethttp.MethodGet, path, "")
		if resp.Code != nethttp.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, resp.Code)
		}
	}
}

func TestGetStateReturnsDefaults(t *testing.T) {
	f := newFixture(t)

	resp := f.serve(t, nethttp.MethodGet, "/api/state", "")
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}

	var state game.State
	if err := json.Unmarshal([]byte(resp.Body), &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state.Phase != domain.PhaseSetup {
		t.Errorf("phase = %q, want %q", state.Phase, domain.PhaseSetup)
	}
	if state.Teams[0].Name != "Équipe 1" || state.Teams[1].Name != "Équipe 2" {
		t.Errorf("unexpected team names: %q, %q", state.Teams[0].Name, state.Teams[1].Name)
	}
}

func TestAddTeamPointsMutatesScore(t *testing.T) {
	f := newFixture(t)

	resp := f.serve(t, nethttp.MethodPost, "/api/teams/0/points", `{"points":10}`)
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.Code, resp.Body)
	}

	state := f.engine.State()
	if state.Teams[0].Score != 10 {
		t.Errorf("team 0 score = %d, want 10", state.Teams[0].Score)
	}
	if len(state.History) != 1 {
		t.Errorf("history length = %d, want 1", len(state.History))
	}
}

func TestMutationsPublishStateAndEffects(t *testing.T) {
	f := newFixture(t)
	pub := &teststubs.StateRecorder{}
	f.engine.SetPublisher(pub)

	// First score of the match makes team 0 the new leader.
	f.serve(t, nethttp.MethodPost, "/api/teams/0/points", `{"points":10}`)

	last, ok := pub.Last()
	if !ok {
		t.Fatal("no state published")
	}
	if last.Teams[0].Score != 10 {
		t.Errorf("published score = %d, want 10", last.Teams[0].Score)
	}

	invocations := f.effects.Invocations()
	if len(invocations) == 0 || invocations[0].Kind != domain.CelebrationNewLeader {
		t.Errorf("expected new-leader celebration, got %+v", invocations)
	}
	if cues := f.effects.Cues(); len(cues) != 1 || cues[0] != celebrate.CuePositive {
		t.Errorf("expected one positive cue, got %v", cues)
	}
}

func TestAddTeamPointsInvalidIndex(t *testing.T) {
	f := newFixture(t)

	for _, index := range []string{"2", "-1", "abc"} {
		resp := f.serve(t, nethttp.MethodPost, "/api/teams/"+index+"/points", `{"points":10}`)
		if resp.Code != nethttp.StatusBadRequest {
			t.Errorf("index %q: status = %d, want 400", index, resp.Code)
		}
	}
}

func TestAddTeamPointsInvalidBody(t *testing.T) {
	f := newFixture(t)

	resp := f.serve(t, nethttp.MethodPost, "/api/teams/0/points", `{invalid`)
	if resp.Code != nethttp.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.Code)
	}
}

func TestAddPlayerAndScore(t *testing.T) {
	f := newFixture(t)

	resp := f.serve(t, nethttp.MethodPost, "/api/teams/0/players", `{"name":"Aminata"}`)
	if resp.Code != nethttp.StatusCreated {
		t.Fatalf("add player status = %d, want 201: %s", resp.Code, resp.Body)
	}

	var player domain.Player
	if err := json.Unmarshal([]byte(resp.Body), &player); err != nil {
		t.Fatalf("decode player: %v", err)
	}
	if player.ID == "" || player.Name != "Aminata" {
		t.Fatalf("unexpected player: %+v", player)
	}

	resp = f.serve(t, nethttp.MethodPost, "/api/teams/0/players/"+player.ID+"/points", `{"points":10}`)
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("player points status = %d, want 200: %s", resp.Code, resp.Body)
	}

	state := f.engine.State()
	if state.Teams[0].Players[0].PointsScored != 10 {
		t.Errorf("player tally = %d, want 10", state.Teams[0].Players[0].PointsScored)
	}
}

func TestTogglePlayerActive(t *testing.T) {
	f := newFixture(t)

	player, err := f.engine.AddPlayer(1, "Moussa", "")
	if err != nil {
		t.Fatalf("add player: %v", err)
	}

	resp := f.serve(t, nethttp.MethodPost, "/api/teams/1/players/"+player.ID+"/active", "")
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("toggle status = %d: %s", resp.Code, resp.Body)
	}
	if f.engine.State().Teams[1].Players[0].Active {
		t.Error("player still active after toggle")
	}
}

func TestAddPlayerEmptyNameIsNoOp(t *testing.T) {
	f := newFixture(t)

	resp := f.serve(t, nethttp.MethodPost, "/api/teams/0/players", `{"name":"   "}`)
	if resp.Code != nethttp.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.Code)
	}
	if got := len(f.engine.State().Teams[0].Players); got != 0 {
		t.Errorf("players = %d, want 0", got)
	}
}

func TestPlayerPointsUnknownPlayer(t *testing.T) {
	f := newFixture(t)

	resp := f.serve(t, nethttp.MethodPost, "/api/teams/0/players/missing/points", `{"points":10}`)
	if resp.Code != nethttp.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.Code)
	}
}

func TestGameLifecycleRoutes(t *testing.T) {
	f := newFixture(t)

	resp := f.serve(t, nethttp.MethodPost, "/api/game/start", "")
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("game start status = %d: %s", resp.Code, resp.Body)
	}
	if phase := f.engine.Phase(); phase != domain.PhaseIntro {
		t.Errorf("phase after start = %q, want %q", phase, domain.PhaseIntro)
	}

	// Starting twice conflicts with the current phase.
	resp = f.serve(t, nethttp.MethodPost, "/api/game/start", "")
	if resp.Code != nethttp.StatusConflict {
		t.Errorf("second start status = %d, want 409", resp.Code)
	}

	resp = f.serve(t, nethttp.MethodPost, "/api/game/end", "")
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("game end status = %d: %s", resp.Code, resp.Body)
	}
	if phase := f.engine.Phase(); phase != domain.PhaseFinished {
		t.Errorf("phase after end = %q, want %q", phase, domain.PhaseFinished)
	}

	resp = f.serve(t, nethttp.MethodPost, "/api/game/reset", "")
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("game reset status = %d: %s", resp.Code, resp.Body)
	}
	if phase := f.engine.Phase(); phase != domain.PhaseSetup {
		t.Errorf("phase after reset = %q, want %q", phase, domain.PhaseSetup)
	}
}

func TestSwapTeamsRoute(t *testing.T) {
	f := newFixture(t)

	f.serve(t, nethttp.MethodPost, "/api/teams/0/points", `{"points":10}`)
	resp := f.serve(t, nethttp.MethodPost, "/api/teams/swap", "")
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("swap status = %d: %s", resp.Code, resp.Body)
	}

	state := f.engine.State()
	if state.Teams[1].Score != 10 {
		t.Errorf("team 1 score after swap = %d, want 10", state.Teams[1].Score)
	}
}

func TestRenameAndColorRoutes(t *testing.T) {
	f := newFixture(t)

	resp := f.serve(t, nethttp.MethodPut, "/api/teams/1/rename", `{"name":"Les Lions"}`)
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("rename status = %d: %s", resp.Code, resp.Body)
	}
	resp = f.serve(t, nethttp.MethodPut, "/api/teams/1/color", `{"color":"#2a9d8f"}`)
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("color status = %d: %s", resp.Code, resp.Body)
	}

	team := f.engine.State().Teams[1]
	if team.Name != "Les Lions" || team.Color != "#2a9d8f" {
		t.Errorf("team = %q/%q, want Les Lions/#2a9d8f", team.Name, team.Color)
	}
}

func TestTimerRoutes(t *testing.T) {
	f := newFixture(t)

	resp := f.serve(t, nethttp.MethodGet, "/api/timer", "")
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("timer status = %d: %s", resp.Code, resp.Body)
	}

	var status map[string]any
	if err := json.Unmarshal([]byte(resp.Body), &status); err != nil {
		t.Fatalf("decode timer status: %v", err)
	}
	if status["remaining"].(float64) != 600 {
		t.Errorf("remaining = %v, want 600", status["remaining"])
	}

	for _, action := range []string{"start", "pause", "resume", "reset"} {
		resp := f.serve(t, nethttp.MethodPost, "/api/timer/"+action, "")
		if resp.Code != nethttp.StatusNoContent {
			t.Errorf("timer %s status = %d, want 204", action, resp.Code)
		}
	}
}

func TestAudioRoutes(t *testing.T) {
	f := newFixture(t)

	for _, action := range []string{"start", "track-ended", "stop"} {
		resp := f.serve(t, nethttp.MethodPost, "/api/audio/"+action, "")
		if resp.Code != nethttp.StatusNoContent {
			t.Errorf("audio %s status = %d, want 204", action, resp.Code)
		}
	}

	resp := f.serve(t, nethttp.MethodPost, "/api/audio/mute", "")
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("mute status = %d: %s", resp.Code, resp.Body)
	}
	var body map[string]bool
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("decode mute response: %v", err)
	}
	if !body["muted"] {
		t.Error("expected muted = true after first toggle")
	}
}

func TestGetRubrics(t *testing.T) {
	f := newFixture(t)

	resp := f.serve(t, nethttp.MethodGet, "/api/rubrics", "")
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("status = %d: %s", resp.Code, resp.Body)
	}

	var rubrics []domain.Rubric
	if err := json.Unmarshal([]byte(resp.Body), &rubrics); err != nil {
		t.Fatalf("decode rubrics: %v", err)
	}
	if len(rubrics) != 1 || rubrics[0].ID != "r1" {
		t.Errorf("unexpected rubrics: %+v", rubrics)
	}
}

func TestGetRubricsDegradesToEmptyList(t *testing.T) {
	f := newFixture(t)
	f.content.Err = errors.New("store offline")

	resp := f.serve(t, nethttp.MethodGet, "/api/rubrics", "")
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("status = %d, want 200", resp.Code)
	}
	if strings.TrimSpace(resp.Body) != "[]" {
		t.Errorf("body = %q, want empty list", resp.Body)
	}
}

func TestGetHistoryEmptyList(t *testing.T) {
	f := newFixture(t)

	resp := f.serve(t, nethttp.MethodGet, "/api/history", "")
	if resp.Code != nethttp.StatusOK {
		t.Fatalf("status = %d: %s", resp.Code, resp.Body)
	}
	if strings.TrimSpace(resp.Body) != "[]" {
		t.Errorf("body = %q, want empty list", resp.Body)
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	f := newFixture(t)

	resp := f.serve(t, nethttp.MethodGet, "/api/unknown", "")
	if resp.Code != nethttp.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.Code)
	}
}
