package client_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"reticle/api"
	"reticle/client"
	"reticle/crosshair"
	"reticle/overlay"
	"reticle/store"
)

var (
	_ client.Host = (*client.Remote)(nil)
	_ client.Host = (*client.Local)(nil)
)

func newRemote(t *testing.T) *client.Remote {
	t.Helper()
	dir := t.TempDir()
	pm, err := store.NewManager(dir + "/presets.json")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	fav, err := store.NewFavorites(dir + "/favorites.json")
	if err != nil {
		t.Fatalf("NewFavorites: %v", err)
	}
	srv := httptest.NewServer(api.RegisterRoutes(api.Deps{
		Overlay:   overlay.New(overlay.NewImageSurface(64, 64), crosshair.Default()),
		Configs:   store.NewConfigStore(dir + "/config.json"),
		Presets:   pm,
		Favorites: fav,
		Hub:       api.NewHub(),
	}))
	t.Cleanup(srv.Close)
	return client.NewRemote(srv.URL)
}

func newLocal(t *testing.T) *client.Local {
	t.Helper()
	dir := t.TempDir()
	pm, err := store.NewManager(dir + "/presets.json")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	fav, err := store.NewFavorites(dir + "/favorites.json")
	if err != nil {
		t.Fatalf("NewFavorites: %v", err)
	}
	ov := overlay.New(overlay.NewImageSurface(64, 64), crosshair.Default())
	return client.NewLocal(store.NewConfigStore(dir+"/config.json"), pm, fav, ov)
}

func hosts(t *testing.T) map[string]client.Host {
	return map[string]client.Host{
		"remote": newRemote(t),
		"local":  newLocal(t),
	}
}

func TestSaveThenLoadConfig(t *testing.T) {
	for name, h := range hosts(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			cfg := crosshair.Default()
			cfg.Color = 0x3366FF
			if err := h.SaveConfig(ctx, cfg); err != nil {
				t.Fatalf("SaveConfig: %v", err)
			}
			got, err := h.LoadConfig(ctx)
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			if got.Color != 0x3366FF {
				t.Fatalf("loaded color %#x", got.Color)
			}
		})
	}
}

func TestLocalLoadConfigMissing(t *testing.T) {
	h := newLocal(t)
	_, err := h.LoadConfig(context.Background())
	if !errors.Is(err, client.ErrStorage) {
		t.Fatalf("expected ErrStorage for missing config, got %v", err)
	}
}

func TestPresetRoundTrip(t *testing.T) {
	for name, h := range hosts(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			saved, err := h.SavePreset(ctx, store.Preset{Name: "Scout", Config: crosshair.Default()})
			if err != nil {
				t.Fatalf("SavePreset: %v", err)
			}
			if saved.ID == "" {
				t.Fatal("id must be assigned")
			}

			dup, err := h.DuplicatePreset(ctx, saved.ID)
			if err != nil {
				t.Fatalf("DuplicatePreset: %v", err)
			}
			if dup.ID == saved.ID {
				t.Fatal("duplicate must get its own id")
			}

			list, err := h.ListPresets(ctx)
			if err != nil {
				t.Fatalf("ListPresets: %v", err)
			}
			if len(list) != 2 {
				t.Fatalf("expected 2 presets, got %d", len(list))
			}

			if err := h.DeletePreset(ctx, dup.ID); err != nil {
				t.Fatalf("DeletePreset: %v", err)
			}
			list, _ = h.ListPresets(ctx)
			if len(list) != 1 {
				t.Fatalf("expected 1 preset after delete, got %d", len(list))
			}
		})
	}
}

func TestExportImportThroughHost(t *testing.T) {
	for name, h := range hosts(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if _, err := h.SavePreset(ctx, store.Preset{Name: "A", Config: crosshair.Default()}); err != nil {
				t.Fatalf("SavePreset: %v", err)
			}
			data, err := h.ExportPresets(ctx)
			if err != nil {
				t.Fatalf("ExportPresets: %v", err)
			}
			imported, err := h.ImportPresets(ctx, data)
			if err != nil {
				t.Fatalf("ImportPresets: %v", err)
			}
			if len(imported) != 1 {
				t.Fatalf("expected 1 imported preset, got %d", len(imported))
			}
		})
	}
}

func TestImportMalformedRejected(t *testing.T) {
	for name, h := range hosts(t) {
		t.Run(name, func(t *testing.T) {
			_, err := h.ImportPresets(context.Background(), []byte("garbage"))
			if !errors.Is(err, store.ErrImportParse) {
				t.Fatalf("expected ErrImportParse, got %v", err)
			}
		})
	}
}

func TestFavoriteToggleThroughHost(t *testing.T) {
	for name, h := range hosts(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			cfg := crosshair.Default()
			on, err := h.ToggleFavorite(ctx, cfg)
			if err != nil || !on {
				t.Fatalf("first toggle: on=%v err=%v", on, err)
			}
			favs, err := h.ListFavorites(ctx)
			if err != nil || len(favs) != 1 {
				t.Fatalf("favorites: %v err=%v", favs, err)
			}
			on, err = h.ToggleFavorite(ctx, cfg)
			if err != nil || on {
				t.Fatalf("second toggle: on=%v err=%v", on, err)
			}
		})
	}
}

func TestToggleDeliversEvent(t *testing.T) {
	for name, h := range hosts(t) {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			events, err := h.Events(ctx)
			if err != nil {
				t.Fatalf("Events: %v", err)
			}
			if err := h.ToggleOverlay(ctx, false); err != nil {
				t.Fatalf("ToggleOverlay: %v", err)
			}
			select {
			case ev, ok := <-events:
				if !ok {
					t.Fatal("event channel closed early")
				}
				if ev.Enabled {
					t.Fatal("event should carry enabled=false")
				}
			case <-ctx.Done():
				t.Fatal("no toggle event received")
			}
		})
	}
}
