// Package gateway pushes store-change events to subscribed clients over a
// websocket, so the front-end can refresh the slices it renders without
// polling.
package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Message is one broadcast frame.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

const (
	writeWait      = 10 * time.Second
	clientBacklog  = 32
	broadcastQueue = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan Message
}

// Hub fans broadcast messages out to every connected client.
type Hub struct {
	mu        sync.RWMutex
	clients   map[*client]struct{}
	broadcast chan Message
	logger    *zap.Logger
}

// NewHub creates a hub; call Run before registering routes.
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:   make(map[*client]struct{}),
		broadcast: make(chan Message, broadcastQueue),
		logger:    logger.Named("Gateway"),
	}
}

// Run pumps broadcast messages until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case msg := <-h.broadcast:
			h.mu.RLock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// slow consumer, drop the frame
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast queues an event for every connected client. Never blocks the
// mutation path that triggered it.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	select {
	case h.broadcast <- Message{Type: eventType, Payload: payload}:
	default:
		h.logger.Warn("broadcast queue full, dropping event", zap.String("type", eventType))
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// RegisterRoutes mounts the websocket endpoint.
func (h *Hub) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/gateway", h.serve)
}

func (h *Hub) serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	cl := &client{conn: conn, send: make(chan Message, clientBacklog)}

	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()

	go h.writePump(cl)
	h.readPump(cl)
}

func (h *Hub) writePump(cl *client) {
	for msg := range cl.send {
		raw, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
			return
		}
	}
}

// readPump discards client frames; the gateway is server-to-client only.
// It exists to detect disconnects.
func (h *Hub) readPump(cl *client) {
	defer h.drop(cl)
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) drop(cl *client) {
	h.mu.Lock()
	if _, ok := h.clients[cl]; ok {
		delete(h.clients, cl)
		close(cl.send)
	}
	h.mu.Unlock()
	_ = cl.conn.Close()
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for cl := range h.clients {
		close(cl.send)
		_ = cl.conn.Close()
		delete(h.clients, cl)
	}
}
