package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"creamery/session"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Hub pushes state-change signals to subscribed views so each page
// re-renders off a single "state changed" event instead of the engine
// calling every view directly.

type Signal struct {
	Kind string `json:"kind"` // "cart" or "catalog"
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

type Hub struct {
	mu       sync.Mutex
	sessions map[string]map[*client]bool
	closed   bool
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[string]map[*client]bool)}
}

// CartChanged notifies every subscriber of one session.
func (h *Hub) CartChanged(sessionID string) {
	h.broadcast(sessionID, Signal{Kind: "cart"})
}

// CatalogChanged notifies every subscriber of every session.
func (h *Hub) CatalogChanged() {
	h.mu.Lock()
	ids := make([]string, 0, len(h.sessions))
	for id := range h.sessions {
		ids = append(ids, id)
	}
	h.mu.Unlock()

	for _, id := range ids {
		h.broadcast(id, Signal{Kind: "catalog"})
	}
}

func (h *Hub) broadcast(sessionID string, sig Signal) {
	data, err := json.Marshal(sig)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.sessions[sessionID] {
		select {
		case c.send <- data:
		default:
			close(c.send)
			delete(h.sessions[sessionID], c)
		}
	}
}

// register refuses new clients once the hub has stopped, so shutdown
// never strands an open send channel.
func (h *Hub) register(sessionID string, c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	if h.sessions[sessionID] == nil {
		h.sessions[sessionID] = make(map[*client]bool)
	}
	h.sessions[sessionID][c] = true
	return true
}

func (h *Hub) unregister(sessionID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns := h.sessions[sessionID]; conns != nil {
		if conns[c] {
			delete(conns, c)
			close(c.send)
		}
		if len(conns) == 0 {
			delete(h.sessions, sessionID)
		}
	}
}

// Stop closes every open subscription, for graceful shutdown.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for _, conns := range h.sessions {
		for c := range conns {
			close(c.send)
			c.conn.Close()
		}
	}
	h.sessions = make(map[string]map[*client]bool)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Subscribe upgrades the connection and streams change signals for the
// caller's session. The token travels in the query string because
// browsers cannot set headers on websocket dials.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := session.ValidateToken(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("notify upgrade error:", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 8)}
	if !h.register(claims.SessionID, c) {
		conn.Close()
		return
	}

	go func() {
		for msg := range c.send {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				break
			}
		}
		conn.Close()
	}()

	// Read loop exists only to detect the peer going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister(claims.SessionID, c)
				return
			}
		}
	}()
}
