package hub

import (
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"genie-scoreboard-service/internal/logging"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 64
)

// Client is one connected display. Displays are read-mostly: they receive
// state and effect frames, and send nothing the server acts on.
type Client struct {
	ID     string
	conn   *websocket.Conn
	send   chan ServerMessage
	hub    *Hub
	logger *slog.Logger
}

func newClient(id string, conn *websocket.Conn, h *Hub, logger *slog.Logger) *Client {
	return &Client{
		ID:     id,
		conn:   conn,
		send:   make(chan ServerMessage, sendBufferSize),
		hub:    h,
		logger: logger,
	}
}

// trySend queues a message without blocking. A false return means the
// client's buffer is full.
func (c *Client) trySend(msg ServerMessage) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// readPump drains inbound frames so pong handling works, then unregisters
// on close.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Warn(c.logger, "display client closed unexpectedly",
					logging.FieldClientID, c.ID, "err", err)
			}
			return
		}
	}
}

// writePump flushes queued messages and keeps the connection alive with
// pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				logging.Warn(c.logger, "display client write failed",
					logging.FieldClientID, c.ID, "err", err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
