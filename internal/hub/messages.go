package hub

import "time"

// Message types pushed to connected display clients.
const (
	MessageTypeState       = "state"
	MessageTypeCelebration = "celebration"
	MessageTypeAudioCue    = "audio_cue"
	MessageTypeAudio       = "audio"
	MessageTypeCountdown   = "countdown"
	MessageTypeIntro       = "intro"
)

// ServerMessage is the envelope for every frame sent to a display client.
type ServerMessage struct {
	Type    string    `json:"type"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}

func newMessage(msgType string, payload any) ServerMessage {
	return ServerMessage{Type: msgType, Payload: payload, At: time.Now()}
}
