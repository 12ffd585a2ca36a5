package ws

import (
	"encoding/json"
	"sync"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const clientSendBuffer = 64

// Hub fans events out to every connected subscriber. Delivery is best-effort
// and at-most-once: nothing is persisted, a client connecting after a publish
// never sees it, and a client that cannot keep up is dropped.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

// Client is one subscriber. Messages to deliver arrive on C; the connection
// handler owns the write side of the socket.
type Client struct {
	C chan []byte
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register() *Client {
	client := &Client{C: make(chan []byte, clientSendBuffer)}
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	return client
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.C)
	}
	h.mu.Unlock()
}

// Broadcast publishes the event to all currently connected clients. It never
// blocks the caller: a client whose buffer is full is disconnected instead.
func (h *Hub) Broadcast(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		hlog.Errorf("ws: failed to marshal %s event: %v", event.Type, err)
		return
	}

	h.mu.Lock()
	for client := range h.clients {
		select {
		case client.C <- payload:
		default:
			delete(h.clients, client)
			close(client.C)
		}
	}
	h.mu.Unlock()
}

// ClientCount is used by tests and diagnostics.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
