package hub

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"genie-scoreboard-service/internal/logging"
	"genie-scoreboard-service/internal/metrics"
)

const broadcastBufferSize = 256

// StateSource returns the payload a freshly connected display should be
// primed with.
type StateSource func() any

// Hub fans server messages out to every connected display client.
type Hub struct {
	logger  *slog.Logger
	metrics *metrics.Recorder

	clients   map[*Client]struct{}
	clientsMu sync.RWMutex

	broadcast  chan ServerMessage
	register   chan *Client
	unregister chan *Client

	stateSource StateSource
	sourceMu    sync.RWMutex

	upgrader websocket.Upgrader
}

// New builds a hub. allowedOrigins restricts WebSocket upgrades; an empty
// list or a "*" entry accepts any origin.
func New(logger *slog.Logger, recorder *metrics.Recorder, allowedOrigins []string) *Hub {
	return &Hub{
		logger:     logger,
		metrics:    recorder,
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan ServerMessage, broadcastBufferSize),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// SetStateSource wires the snapshot provider used to prime new clients.
func (h *Hub) SetStateSource(source StateSource) {
	h.sourceMu.Lock()
	defer h.sourceMu.Unlock()
	h.stateSource = source
}

// Run drives the hub loop until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	logging.Info(h.logger, "hub started")
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case c := <-h.register:
			h.registerClient(c)
		case c := <-h.unregister:
			h.unregisterClient(c)
		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

// ServeWS upgrades an HTTP request to a display client connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn(h.logger, "websocket upgrade failed", "err", err)
		return
	}

	c := newClient(uuid.NewString(), conn, h, h.logger)
	h.register <- c

	go c.writePump()
	go c.readPump()
}

// Broadcast queues a message for every connected client. Messages are
// dropped when the hub buffer is full rather than blocking the caller.
func (h *Hub) Broadcast(msg ServerMessage) {
	select {
	case h.broadcast <- msg:
	default:
		logging.Warn(h.logger, "broadcast buffer full, dropping message", logging.FieldKind, msg.Type)
	}
}

// Unregister removes a client from the hub.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	default:
		go func() { h.unregister <- c }()
	}
}

// ClientCount reports the number of connected displays.
func (h *Hub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) registerClient(c *Client) {
	h.clientsMu.Lock()
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.clientsMu.Unlock()

	if h.metrics != nil {
		h.metrics.ClientConnected()
	}
	logging.Info(h.logger, "display client connected",
		logging.FieldClientID, c.ID, logging.FieldCount, total)

	// Prime the new display so it renders immediately instead of waiting
	// for the next mutation.
	h.sourceMu.RLock()
	source := h.stateSource
	h.sourceMu.RUnlock()
	if source != nil {
		c.trySend(newMessage(MessageTypeState, source()))
	}
}

func (h *Hub) unregisterClient(c *Client) {
	h.clientsMu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	total := len(h.clients)
	h.clientsMu.Unlock()

	if !ok {
		return
	}
	if h.metrics != nil {
		h.metrics.ClientDisconnected()
	}
	logging.Info(h.logger, "display client disconnected",
		logging.FieldClientID, c.ID, logging.FieldCount, total)
}

func (h *Hub) deliver(msg ServerMessage) {
	h.clientsMu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.clientsMu.RUnlock()

	for _, c := range clients {
		if !c.trySend(msg) {
			// Slow display; drop it rather than stall the match.
			logging.Warn(h.logger, "display client buffer full, disconnecting",
				logging.FieldClientID, c.ID)
			h.Unregister(c)
		}
	}
}

func (h *Hub) shutdown() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()

	logging.Info(h.logger, "hub shutting down", logging.FieldCount, len(h.clients))
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}

func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
		allowedSet[origin] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := allowedSet[origin]
		return ok
	}
}
