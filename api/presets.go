package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"reticle/crosshair"
	"reticle/store"
)

func (h *handler) listPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.presets.List())
}

func (h *handler) savePreset(w http.ResponseWriter, r *http.Request) {
	var p store.Preset
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	saved, err := h.presets.Save(p)
	if err != nil {
		var ve *crosshair.ValidationError
		if errors.As(err, &ve) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to save preset", http.StatusInternalServerError)
		return
	}
	writeJSON(w, saved)
}

func (h *handler) deletePreset(w http.ResponseWriter, r *http.Request) {
	if err := h.presets.Delete(chi.URLParam(r, "id")); err != nil {
		http.Error(w, "failed to delete preset", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) duplicatePreset(w http.ResponseWriter, r *http.Request) {
	dup, err := h.presets.Duplicate(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "preset not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to duplicate preset", http.StatusInternalServerError)
		return
	}
	writeJSON(w, dup)
}

func (h *handler) exportPresets(w http.ResponseWriter, r *http.Request) {
	data, err := h.presets.ExportAll()
	if err != nil {
		http.Error(w, "failed to export presets", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *handler) importPresets(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	imported, err := h.presets.ImportAll(data)
	if err != nil {
		if errors.Is(err, store.ErrImportParse) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to import presets", http.StatusInternalServerError)
		return
	}
	writeJSON(w, imported)
}

func (h *handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.favorites.List())
}

func (h *handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	cfg, ok := decodeConfig(w, r)
	if !ok {
		return
	}
	favorite, err := h.favorites.Toggle(cfg)
	if err != nil {
		http.Error(w, "failed to toggle favorite", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]bool{"favorite": favorite})
}

func (h *handler) containsFavorite(w http.ResponseWriter, r *http.Request) {
	cfg, ok := decodeConfig(w, r)
	if !ok {
		return
	}
	writeJSON(w, map[string]bool{"favorite": h.favorites.Contains(cfg)})
}

func decodeConfig(w http.ResponseWriter, r *http.Request) (crosshair.Config, bool) {
	var cfg crosshair.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return crosshair.Config{}, false
	}
	if cfg.Lines == nil {
		cfg.Lines = []crosshair.Line{}
	}
	return cfg, true
}
