package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"reticle/overlay"
	"reticle/store"
)

// Deps bundles everything the boundary exposes.
type Deps struct {
	Overlay   *overlay.Overlay
	Configs   *store.ConfigStore
	Presets   *store.Manager
	Favorites *store.Favorites
	Hub       *Hub
}

type handler struct {
	overlay   *overlay.Overlay
	configs   *store.ConfigStore
	presets   *store.Manager
	favorites *store.Favorites
	hub       *Hub
}

func RegisterRoutes(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handler{
		overlay:   d.Overlay,
		configs:   d.Configs,
		presets:   d.Presets,
		favorites: d.Favorites,
		hub:       d.Hub,
	}

	// Configuration and live overlay
	r.Get("/api/config", h.getConfig)
	r.Put("/api/config", h.putConfig)
	r.Post("/api/overlay", h.postOverlay)
	r.Post("/api/toggle", h.postToggle)
	r.Get("/api/preview.png", h.getPreview)

	// Presets
	r.Get("/api/presets", h.listPresets)
	r.Post("/api/presets", h.savePreset)
	r.Delete("/api/presets/{id}", h.deletePreset)
	r.Post("/api/presets/{id}/duplicate", h.duplicatePreset)
	r.Get("/api/presets/export", h.exportPresets)
	r.Post("/api/presets/import", h.importPresets)

	// Favorites
	r.Get("/api/favorites", h.listFavorites)
	r.Post("/api/favorites/toggle", h.toggleFavorite)
	r.Post("/api/favorites/contains", h.containsFavorite)

	// Event subscription
	r.Get("/api/events", h.handleEvents)

	return r
}
