package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"reticle/crosshair"
	"reticle/render"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// getConfig returns the live configuration the overlay currently holds.
func (h *handler) getConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.overlay.Config())
}

// putConfig validates, persists, and pushes a full replacement config.
func (h *handler) putConfig(w http.ResponseWriter, r *http.Request) {
	var cfg crosshair.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.configs.Save(cfg); err != nil {
		http.Error(w, "failed to save config", http.StatusInternalServerError)
		return
	}
	if err := h.overlay.Update(cfg); err != nil {
		http.Error(w, "failed to update overlay", http.StatusInternalServerError)
		return
	}
	writeJSON(w, h.overlay.Config())
}

// postOverlay pushes a config to the render surface without persisting it.
// Fire-and-forget from the designer's perspective.
func (h *handler) postOverlay(w http.ResponseWriter, r *http.Request) {
	var cfg crosshair.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.overlay.Update(cfg); err != nil {
		http.Error(w, "failed to update overlay", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type toggleRequest struct {
	Enabled bool `json:"enabled"`
}

// postToggle flips only the enabled flag and notifies subscribers.
func (h *handler) postToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	enabled, err := h.overlay.Toggle(req.Enabled)
	if err != nil {
		http.Error(w, "failed to toggle overlay", http.StatusInternalServerError)
		return
	}
	h.hub.Broadcast(ToggledEvent(enabled))
	writeJSON(w, map[string]bool{"enabled": enabled})
}

// getPreview renders the live configuration as a PNG.
func (h *handler) getPreview(w http.ResponseWriter, r *http.Request) {
	width := queryInt(r, "w", 256)
	height := queryInt(r, "h", 256)
	if width < 16 || width > 2048 || height < 16 || height > 2048 {
		http.Error(w, "preview size out of range", http.StatusBadRequest)
		return
	}

	img, err := render.Raster(h.overlay.Config(), width, height)
	if err != nil {
		http.Error(w, "failed to render preview", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	render.WritePNG(w, img)
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
