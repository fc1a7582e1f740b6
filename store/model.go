package store

import (
	"errors"
	"time"

	"reticle/crosshair"
)

// Preset is a named configuration snapshot. The id is assigned once at
// creation and never reused; two presets may share a config but not an id.
type Preset struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Config    crosshair.Config `json:"config"`
	CreatedAt time.Time        `json:"created_at"`
}

// document is the on-disk shape of the preset collection.
type document struct {
	Presets []Preset `json:"presets"`
}

var (
	ErrNotFound    = errors.New("preset not found")
	ErrImportParse = errors.New("import document is malformed")
	ErrNoConfig    = errors.New("no stored config")
)
