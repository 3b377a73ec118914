package hub

import (
	"genie-scoreboard-service/internal/celebrate"
	"genie-scoreboard-service/internal/countdown"
	"genie-scoreboard-service/internal/game"
	"genie-scoreboard-service/internal/intro"
	"genie-scoreboard-service/internal/playlist"
)

// The hub is the single outbound surface: the engine, dispatcher, clock,
// intro sequencer and playlist all publish through it.

// PublishState implements game.Publisher.
func (h *Hub) PublishState(s game.State) {
	h.Broadcast(newMessage(MessageTypeState, s))
}

// Play implements the visual half of celebrate.EffectPlayer.
func (h *Hub) Play(inv celebrate.Invocation) {
	h.Broadcast(newMessage(MessageTypeCelebration, inv))
}

// Cue implements the audio half of celebrate.EffectPlayer.
func (h *Hub) Cue(cue celebrate.AudioCue) {
	h.Broadcast(newMessage(MessageTypeAudioCue, cue))
}

// PublishCountdown implements countdown.Sink.
func (h *Hub) PublishCountdown(ev countdown.Event) {
	h.Broadcast(newMessage(MessageTypeCountdown, ev))
}

// PublishIntroStep implements intro.Sink.
func (h *Hub) PublishIntroStep(ev intro.Event) {
	h.Broadcast(newMessage(MessageTypeIntro, ev))
}

// PublishAudio implements playlist.Sink.
func (h *Hub) PublishAudio(ev playlist.Event) {
	h.Broadcast(newMessage(MessageTypeAudio, ev))
}
