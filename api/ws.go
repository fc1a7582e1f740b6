package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Event is pushed to every subscribed client. The type name matches the
// event the designer listens for.
type Event struct {
	Type    string `json:"type"`
	Enabled bool   `json:"enabled"`
}

// ToggledEvent builds the overlay-toggled notification.
func ToggledEvent(enabled bool) Event {
	return Event{Type: "crosshair-toggled", Enabled: enabled}
}

// Hub fans events out to connected websocket subscribers. A slow client's
// buffer filling up drops events for that client rather than blocking the
// broadcaster.
type Hub struct {
	mu      sync.Mutex
	clients map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan Event]struct{})}
}

func (h *Hub) subscribe() chan Event {
	ch := make(chan Event, 8)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) unsubscribe(ch chan Event) {
	h.mu.Lock()
	if _, ok := h.clients[ch]; ok {
		delete(h.clients, ch)
		close(ch)
	}
	h.mu.Unlock()
}

// Broadcast delivers the event to every subscriber.
func (h *Hub) Broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (h *handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WS upgrade error: %v", err)
		return
	}
	defer conn.Close()

	ch := h.hub.subscribe()
	defer h.hub.unsubscribe(ch)

	// Writer: pump broadcast events to the client.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range ch {
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		}
	}()

	// Reader: we expect no inbound messages; this just detects disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.hub.unsubscribe(ch)
	<-done
}
