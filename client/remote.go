package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"reticle/crosshair"
	"reticle/store"
)

// Remote talks to a running daemon over its HTTP boundary.
type Remote struct {
	baseURL string
	http    *http.Client
}

// NewRemote points at a daemon, e.g. "http://127.0.0.1:7420".
func NewRemote(baseURL string) *Remote {
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (r *Remote) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s: %d %s", ErrStorage, method, path,
			resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (r *Remote) LoadConfig(ctx context.Context) (crosshair.Config, error) {
	var cfg crosshair.Config
	err := r.do(ctx, http.MethodGet, "/api/config", nil, &cfg)
	return cfg, err
}

func (r *Remote) SaveConfig(ctx context.Context, cfg crosshair.Config) error {
	return r.do(ctx, http.MethodPut, "/api/config", cfg, nil)
}

func (r *Remote) UpdateLiveOverlay(ctx context.Context, cfg crosshair.Config) error {
	return r.do(ctx, http.MethodPost, "/api/overlay", cfg, nil)
}

func (r *Remote) ToggleOverlay(ctx context.Context, enabled bool) error {
	return r.do(ctx, http.MethodPost, "/api/toggle", map[string]bool{"enabled": enabled}, nil)
}

func (r *Remote) ListPresets(ctx context.Context) ([]store.Preset, error) {
	var out []store.Preset
	err := r.do(ctx, http.MethodGet, "/api/presets", nil, &out)
	return out, err
}

func (r *Remote) SavePreset(ctx context.Context, p store.Preset) (store.Preset, error) {
	var out store.Preset
	err := r.do(ctx, http.MethodPost, "/api/presets", p, &out)
	return out, err
}

func (r *Remote) DeletePreset(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, "/api/presets/"+id, nil, nil)
}

func (r *Remote) DuplicatePreset(ctx context.Context, id string) (store.Preset, error) {
	var out store.Preset
	err := r.do(ctx, http.MethodPost, "/api/presets/"+id+"/duplicate", nil, &out)
	return out, err
}

func (r *Remote) ExportPresets(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/presets/export", nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: export: %d", ErrStorage, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func (r *Remote) ImportPresets(ctx context.Context, data []byte) ([]store.Preset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/presets/import", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusBadRequest {
		return nil, store.ErrImportParse
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: import: %d", ErrStorage, resp.StatusCode)
	}
	var out []store.Preset
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Remote) ListFavorites(ctx context.Context) ([]crosshair.Config, error) {
	var out []crosshair.Config
	err := r.do(ctx, http.MethodGet, "/api/favorites", nil, &out)
	return out, err
}

func (r *Remote) ToggleFavorite(ctx context.Context, cfg crosshair.Config) (bool, error) {
	var out struct {
		Favorite bool `json:"favorite"`
	}
	err := r.do(ctx, http.MethodPost, "/api/favorites/toggle", cfg, &out)
	return out.Favorite, err
}

// Events dials the daemon's websocket stream and relays toggle notifications
// until ctx is cancelled or the connection drops.
func (r *Remote) Events(ctx context.Context) (<-chan ToggleEvent, error) {
	wsURL := "ws" + strings.TrimPrefix(r.baseURL, "http") + "/api/events"
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial events: %w", err)
	}

	ch := make(chan ToggleEvent, 8)
	go func() {
		<-ctx.Done()
		conn.Close()
	}()
	go func() {
		defer close(ch)
		defer conn.Close()
		for {
			var ev struct {
				Type    string `json:"type"`
				Enabled bool   `json:"enabled"`
			}
			if err := conn.ReadJSON(&ev); err != nil {
				return
			}
			if ev.Type != "crosshair-toggled" {
				continue
			}
			select {
			case ch <- ToggleEvent{Enabled: ev.Enabled}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
