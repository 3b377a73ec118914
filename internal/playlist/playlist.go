// Package playlist tracks the background audio rotation during active play.
// The service never touches audio hardware; it tells displays which track to
// play and advances when a display reports the current track ended.
package playlist

import (
	"log/slog"
	"sync"

	"genie-scoreboard-service/internal/logging"
)

// DefaultTracks is the stock ambiance rotation shipped with the board.
func DefaultTracks() []string {
	return []string{
		"ambiance-01.mp3",
		"ambiance-02.mp3",
		"ambiance-03.mp3",
	}
}

// Event is pushed to displays whenever playback state changes.
type Event struct {
	Track   string `json:"track"`
	Index   int    `json:"index"`
	Playing bool   `json:"playing"`
	Muted   bool   `json:"muted"`
}

// Sink receives audio events; the hub implements it.
type Sink interface {
	PublishAudio(ev Event)
}

// Playlist is the fixed background track rotation.
type Playlist struct {
	sink   Sink
	logger *slog.Logger

	mu      sync.Mutex
	tracks  []string
	index   int
	playing bool
	muted   bool
}

// New constructs a stopped playlist.
func New(tracks []string, sink Sink, logger *slog.Logger) *Playlist {
	if len(tracks) == 0 {
		tracks = DefaultTracks()
	}
	return &Playlist{tracks: tracks, sink: sink, logger: logger}
}

// Start begins playback from the first track.
func (p *Playlist) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing {
		return
	}
	p.index = 0
	p.playing = true
	logging.Info(p.logger, "playlist started", logging.FieldCount, len(p.tracks))
	p.publishLocked()
}

// Advance moves to the next track, wrapping at the end. Ignored while
// stopped, so track-ended reports arriving after a phase change are benign.
func (p *Playlist) Advance() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return
	}
	p.index = (p.index + 1) % len(p.tracks)
	p.publishLocked()
}

// Stop halts playback; used when the game ends or resets.
func (p *Playlist) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.playing {
		return
	}
	p.playing = false
	p.publishLocked()
}

// ToggleMute flips the mute flag and returns the new value. Muting does not
// stop rotation; displays keep advancing silently.
func (p *Playlist) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	p.publishLocked()
	return p.muted
}

// Current returns the current track and whether playback is active.
func (p *Playlist) Current() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tracks[p.index], p.playing
}

// Muted reports the mute flag.
func (p *Playlist) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Playlist) publishLocked() {
	if p.sink == nil {
		return
	}
	p.sink.PublishAudio(Event{
		Track:   p.tracks[p.index],
		Index:   p.index,
		Playing: p.playing,
		Muted:   p.muted,
	})
}
