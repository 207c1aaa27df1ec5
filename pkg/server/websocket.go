package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/htmlcomponent/internal/errors"
)

// wsHub tracks live compile connections.
type wsHub struct {
	srv      *Server
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

func newWSHub(srv *Server) *wsHub {
	return &wsHub{
		srv:     srv,
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// handle upgrades the connection and answers each text message with the
// compiled document or an error.
func (h *wsHub) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.srv.logger.Warn("websocket upgrade failed",
			"error", errors.New(errors.CodeServerUpgrade).Wrap(err))
		return
	}
	conn.SetReadLimit(h.srv.config.MaxBodyBytes)

	h.add(conn)
	defer h.remove(conn)

	ctx := r.Context()
	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.srv.logger.Debug("websocket read ended", "error", err)
			}
			return
		}

		var msg reply
		if kind != websocket.TextMessage {
			msg = errorReply(errors.New(errors.CodeServerBody).WithDetail("expected a text message"))
		} else if out, err := h.srv.compile(ctx, sourceWS, data, nil); err != nil {
			msg = errorReply(err)
		} else {
			msg = reply{HTML: out}
		}

		payload, err := json.Marshal(msg)
		if err != nil {
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func (h *wsHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	h.srv.metrics.wsConnections.Inc()
}

func (h *wsHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		h.srv.metrics.wsConnections.Dec()
	}
	conn.Close()
}

// count returns the number of connected clients.
func (h *wsHub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// close closes all client connections.
func (h *wsHub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
		h.srv.metrics.wsConnections.Dec()
	}
}

// ClientCount returns the number of open websocket connections.
func (s *Server) ClientCount() int {
	return s.ws.count()
}
