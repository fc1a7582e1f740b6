package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"reticle/api"
	"reticle/crosshair"
	"reticle/overlay"
	"reticle/store"
)

func main() {
	listen := flag.String("listen", envOr("RETICLE_LISTEN", "127.0.0.1:7420"), "HTTP listen address")
	dataDir := flag.String("data", envOr("RETICLE_DATA", ""), "data directory (default: user config dir)")
	fbDevice := flag.String("fb", envOr("RETICLE_FB", ""), "framebuffer device to draw on, e.g. /dev/fb0 (headless when empty)")
	flag.Parse()

	dir := *dataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			log.Fatalf("cannot resolve config dir: %v", err)
		}
		dir = filepath.Join(base, "reticle")
	}

	configs := store.NewConfigStore(filepath.Join(dir, "config.json"))
	presets, err := store.NewManager(filepath.Join(dir, "presets.json"))
	if err != nil {
		log.Fatalf("failed to load presets: %v", err)
	}
	favorites, err := store.NewFavorites(filepath.Join(dir, "favorites.json"))
	if err != nil {
		log.Fatalf("failed to load favorites: %v", err)
	}

	cfg, err := configs.Load()
	if err != nil {
		if !errors.Is(err, store.ErrNoConfig) {
			log.Printf("stored config unusable, using defaults: %v", err)
		}
		cfg = crosshair.Default()
	}

	var surface overlay.Surface
	if *fbDevice != "" {
		surface, err = overlay.OpenFramebuffer(*fbDevice)
		if err != nil {
			log.Fatalf("framebuffer %s: %v", *fbDevice, err)
		}
		defer surface.Close()
	}

	ov := overlay.New(surface, cfg)
	hub := api.NewHub()
	router := api.RegisterRoutes(api.Deps{
		Overlay:   ov,
		Configs:   configs,
		Presets:   presets,
		Favorites: favorites,
		Hub:       hub,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// SIGUSR1 flips the overlay, mirroring the HTTP toggle endpoint.
	toggles := make(chan os.Signal, 1)
	signal.Notify(toggles, syscall.SIGUSR1)
	go func() {
		for range toggles {
			enabled, err := ov.Toggle(!ov.Config().Enabled)
			if err != nil {
				log.Printf("toggle error: %v", err)
				continue
			}
			hub.Broadcast(api.ToggledEvent(enabled))
			log.Printf("overlay toggled via signal: enabled=%v", enabled)
		}
	}()

	srv := &http.Server{Addr: *listen, Handler: router}
	go func() {
		log.Printf("reticled listening on %s (data: %s)", *listen, dir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
