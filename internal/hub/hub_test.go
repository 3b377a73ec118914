package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"genie-scoreboard-service/internal/celebrate"
	"genie-scoreboard-service/internal/countdown"
	"genie-scoreboard-service/internal/domain"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	h := New(nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(h.ServeWS))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return h, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return msg
}

func TestHubPrimesNewClientWithState(t *testing.T) {
	h, srv := startHub(t)
	h.SetStateSource(func() any {
		return map[string]string{"phase": string(domain.PhaseSetup)}
	})

	conn := dial(t, srv)

	msg := readMessage(t, conn)
	if msg.Type != MessageTypeState {
		t.Fatalf("first message type = %q, want %q", msg.Type, MessageTypeState)
	}
	if msg.At.IsZero() {
		t.Error("message timestamp not set")
	}
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	h, srv := startHub(t)

	first := dial(t, srv)
	second := dial(t, srv)
	waitForClients(t, h, 2)

	h.Broadcast(newMessage(MessageTypeAudioCue, celebrate.CuePositive))

	for _, conn := range []*websocket.Conn{first, second} {
		msg := readMessage(t, conn)
		if msg.Type != MessageTypeAudioCue {
			t.Errorf("message type = %q, want %q", msg.Type, MessageTypeAudioCue)
		}
	}
}

func TestHubClientCountTracksDisconnect(t *testing.T) {
	h, srv := startHub(t)

	conn := dial(t, srv)
	waitForClients(t, h, 1)

	conn.Close()
	waitForClients(t, h, 0)
}

func TestHubSinkMessageTypes(t *testing.T) {
	h, srv := startHub(t)

	conn := dial(t, srv)
	waitForClients(t, h, 1)

	h.PublishCountdown(countdown.Event{Remaining: 90, Display: "1:30", Running: true})
	msg := readMessage(t, conn)
	if msg.Type != MessageTypeCountdown {
		t.Fatalf("message type = %q, want %q", msg.Type, MessageTypeCountdown)
	}

	h.Play(celebrate.Invocation{Kind: domain.CelebrationTie})
	msg = readMessage(t, conn)
	if msg.Type != MessageTypeCelebration {
		t.Fatalf("message type = %q, want %q", msg.Type, MessageTypeCelebration)
	}
}

func TestOriginChecker(t *testing.T) {
	cases := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"empty list accepts all", nil, "http://evil.test", true},
		{"wildcard accepts all", []string{"*"}, "http://evil.test", true},
		{"listed origin accepted", []string{"http://board.local"}, "http://board.local", true},
		{"unlisted origin rejected", []string{"http://board.local"}, "http://evil.test", false},
		{"no origin header accepted", []string{"http://board.local"}, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			check := originChecker(tc.allowed)
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if got := check(req); got != tc.want {
				t.Errorf("originChecker(%v) with origin %q = %v, want %v", tc.allowed, tc.origin, got, tc.want)
			}
		})
	}
}

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("client count = %d, want %d", h.ClientCount(), want)
}
