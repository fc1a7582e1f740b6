// Package client gives the designer a single seam to the host: the Host
// interface covers every command the designer issues, with a Remote
// implementation speaking HTTP/websocket to a running daemon and a Local
// implementation backed directly by the stores and overlay.
package client

import (
	"context"
	"errors"

	"reticle/crosshair"
	"reticle/store"
)

// ErrStorage wraps any load/save/list/delete failure from the host. Callers
// keep their last known-good configuration when they see it.
var ErrStorage = errors.New("storage error")

// Host is everything the designer asks of the machine running the overlay.
type Host interface {
	// LoadConfig returns the persisted configuration. A host with nothing
	// persisted yet reports ErrStorage; the caller falls back to defaults.
	LoadConfig(ctx context.Context) (crosshair.Config, error)
	SaveConfig(ctx context.Context, cfg crosshair.Config) error

	// UpdateLiveOverlay repaints the overlay without persisting.
	UpdateLiveOverlay(ctx context.Context, cfg crosshair.Config) error
	ToggleOverlay(ctx context.Context, enabled bool) error

	ListPresets(ctx context.Context) ([]store.Preset, error)
	SavePreset(ctx context.Context, p store.Preset) (store.Preset, error)
	DeletePreset(ctx context.Context, id string) error
	DuplicatePreset(ctx context.Context, id string) (store.Preset, error)
	ExportPresets(ctx context.Context) ([]byte, error)
	ImportPresets(ctx context.Context, data []byte) ([]store.Preset, error)

	ListFavorites(ctx context.Context) ([]crosshair.Config, error)
	ToggleFavorite(ctx context.Context, cfg crosshair.Config) (bool, error)

	// Events delivers overlay-toggled notifications until ctx is done. The
	// returned channel is closed when the subscription ends.
	Events(ctx context.Context) (<-chan ToggleEvent, error)
}

// ToggleEvent reports that the overlay was switched on or off, whether by
// this client or another toggle source.
type ToggleEvent struct {
	Enabled bool
}
