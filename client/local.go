package client

import (
	"context"
	"fmt"
	"sync"

	"reticle/crosshair"
	"reticle/overlay"
	"reticle/store"
)

// Local serves the Host interface from in-process stores, for running the
// designer on the same machine as the overlay without a daemon.
type Local struct {
	configs   *store.ConfigStore
	presets   *store.Manager
	favorites *store.Favorites
	overlay   *overlay.Overlay // may be nil when no render surface exists

	mu   sync.Mutex
	subs []chan ToggleEvent
}

func NewLocal(configs *store.ConfigStore, presets *store.Manager, favorites *store.Favorites, ov *overlay.Overlay) *Local {
	return &Local{configs: configs, presets: presets, favorites: favorites, overlay: ov}
}

func (l *Local) LoadConfig(ctx context.Context) (crosshair.Config, error) {
	cfg, err := l.configs.Load()
	if err != nil {
		return crosshair.Config{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return cfg, nil
}

func (l *Local) SaveConfig(ctx context.Context, cfg crosshair.Config) error {
	if err := l.configs.Save(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return l.UpdateLiveOverlay(ctx, cfg)
}

func (l *Local) UpdateLiveOverlay(ctx context.Context, cfg crosshair.Config) error {
	if l.overlay == nil {
		return nil
	}
	return l.overlay.Update(cfg)
}

func (l *Local) ToggleOverlay(ctx context.Context, enabled bool) error {
	if l.overlay != nil {
		if _, err := l.overlay.Toggle(enabled); err != nil {
			return err
		}
	}
	l.notify(ToggleEvent{Enabled: enabled})
	return nil
}

func (l *Local) ListPresets(ctx context.Context) ([]store.Preset, error) {
	return l.presets.List(), nil
}

func (l *Local) SavePreset(ctx context.Context, p store.Preset) (store.Preset, error) {
	return l.presets.Save(p)
}

func (l *Local) DeletePreset(ctx context.Context, id string) error {
	return l.presets.Delete(id)
}

func (l *Local) DuplicatePreset(ctx context.Context, id string) (store.Preset, error) {
	return l.presets.Duplicate(id)
}

func (l *Local) ExportPresets(ctx context.Context) ([]byte, error) {
	return l.presets.ExportAll()
}

func (l *Local) ImportPresets(ctx context.Context, data []byte) ([]store.Preset, error) {
	return l.presets.ImportAll(data)
}

func (l *Local) ListFavorites(ctx context.Context) ([]crosshair.Config, error) {
	return l.favorites.List(), nil
}

func (l *Local) ToggleFavorite(ctx context.Context, cfg crosshair.Config) (bool, error) {
	return l.favorites.Toggle(cfg)
}

func (l *Local) Events(ctx context.Context) (<-chan ToggleEvent, error) {
	ch := make(chan ToggleEvent, 8)
	l.mu.Lock()
	l.subs = append(l.subs, ch)
	l.mu.Unlock()

	go func() {
		<-ctx.Done()
		l.mu.Lock()
		for i, sub := range l.subs {
			if sub == ch {
				l.subs = append(l.subs[:i], l.subs[i+1:]...)
				close(ch)
				break
			}
		}
		l.mu.Unlock()
	}()
	return ch, nil
}

func (l *Local) notify(ev ToggleEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ch := range l.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
