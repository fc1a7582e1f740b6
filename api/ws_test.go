package api_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"reticle/api"
)

func TestToggleBroadcastsEvent(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	defer conn.Close()

	resp := postJSON(t, srv.URL+"/api/toggle", map[string]bool{"enabled": false})
	resp.Body.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var ev api.Event
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if ev.Type != "crosshair-toggled" {
		t.Fatalf("unexpected event type %q", ev.Type)
	}
	if ev.Enabled {
		t.Fatal("event should carry the new enabled state")
	}
}

func TestHubDropsSlowSubscriber(t *testing.T) {
	hub := api.NewHub()
	// Broadcast with no subscribers must not block.
	done := make(chan struct{})
	go func() {
		hub.Broadcast(api.ToggledEvent(true))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked with no subscribers")
	}
}
