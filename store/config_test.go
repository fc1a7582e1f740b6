package store_test

import (
	"errors"
	"os"
	"testing"

	"reticle/crosshair"
	"reticle/store"
)

func TestConfigLoadMissing(t *testing.T) {
	cs := store.NewConfigStore(t.TempDir() + "/config.json")
	if _, err := cs.Load(); !errors.Is(err, store.ErrNoConfig) {
		t.Fatalf("expected ErrNoConfig, got %v", err)
	}
}

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	path := t.TempDir() + "/config.json"
	cs := store.NewConfigStore(path)

	cfg := crosshair.Default()
	cfg.Style = crosshair.StyleCircle
	cfg.Color = 0xFF8800
	cfg.Opacity = 0.8
	if err := cs.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := cs.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !got.Equal(cfg) {
		t.Fatalf("round trip changed the config:\n%+v\n%+v", cfg, got)
	}
}

func TestConfigLoadMalformed(t *testing.T) {
	path := t.TempDir() + "/config.json"
	os.WriteFile(path, []byte("{broken"), 0644)

	cs := store.NewConfigStore(path)
	if _, err := cs.Load(); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestConfigSaveRejectsInvalid(t *testing.T) {
	path := t.TempDir() + "/config.json"
	cs := store.NewConfigStore(path)

	bad := crosshair.Default()
	bad.Rotation = 400
	if err := cs.Save(bad); err == nil {
		t.Fatal("expected validation error")
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Fatal("invalid config must not be written")
	}
}

func TestConfigLoadRejectsInvalidStored(t *testing.T) {
	path := t.TempDir() + "/config.json"
	os.WriteFile(path, []byte(`{"style":"Nonsense","opacity":1}`), 0644)

	cs := store.NewConfigStore(path)
	if _, err := cs.Load(); err == nil {
		t.Fatal("stored config violating invariants must not load")
	}
}
