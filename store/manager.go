package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager owns the persisted preset collection. All operations work against
// an in-memory copy guarded by a mutex and write through atomically, so a
// failed save never corrupts the collection.
type Manager struct {
	mu       sync.RWMutex
	filePath string
	presets  []Preset
}

// NewManager loads the preset collection from filePath, or starts empty if
// the file does not exist.
func NewManager(filePath string) (*Manager, error) {
	m := &Manager{filePath: filePath}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m, nil
		}
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("presets file: %w", err)
	}
	m.presets = doc.Presets
	return m, nil
}

// List returns a snapshot of all presets in persisted order.
func (m *Manager) List() []Preset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Preset, len(m.presets))
	for i, p := range m.presets {
		out[i] = p
		out[i].Config = p.Config.Clone()
	}
	return out
}

// Get returns the preset with the given id.
func (m *Manager) Get(id string) (Preset, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.presets {
		if p.ID == id {
			p.Config = p.Config.Clone()
			return p, true
		}
	}
	return Preset{}, false
}

// Save upserts by id: an existing id is replaced in place, a new id is
// appended. An empty id gets a fresh one assigned. The preset's config is
// validated before anything touches disk.
func (m *Manager) Save(p Preset) (Preset, error) {
	if err := p.Config.Validate(); err != nil {
		return Preset{}, err
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.Config = p.Config.Clone()

	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]Preset, 0, len(m.presets)+1)
	replaced := false
	for _, existing := range m.presets {
		if existing.ID == p.ID {
			next = append(next, p)
			replaced = true
			continue
		}
		next = append(next, existing)
	}
	if !replaced {
		next = append(next, p)
	}

	if err := m.writeAtomic(next); err != nil {
		return Preset{}, err
	}
	m.presets = next
	return p, nil
}

// Delete removes by id. Deleting a missing id is not an error.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.presets[:0:0]
	for _, p := range m.presets {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if len(next) == len(m.presets) {
		return nil
	}
	if err := m.writeAtomic(next); err != nil {
		return err
	}
	m.presets = next
	return nil
}

// Duplicate creates a copy of the preset with a fresh id, " (Copy)" appended
// to the name, and a new creation time.
func (m *Manager) Duplicate(id string) (Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.presets {
		if p.ID != id {
			continue
		}
		dup := Preset{
			ID:        uuid.New().String(),
			Name:      p.Name + " (Copy)",
			Config:    p.Config.Clone(),
			CreatedAt: time.Now(),
		}
		next := append(append([]Preset{}, m.presets...), dup)
		if err := m.writeAtomic(next); err != nil {
			return Preset{}, err
		}
		m.presets = next
		return dup, nil
	}
	return Preset{}, ErrNotFound
}

// ExportAll serializes every preset verbatim into one document.
func (m *Manager) ExportAll() ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc := document{Presets: m.presets}
	if doc.Presets == nil {
		doc.Presets = []Preset{}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ImportAll parses an exported document and upserts every entry under a
// fresh id — imported ids are never trusted, so a document carrying
// colliding or duplicate ids still yields distinct presets. A malformed
// document is rejected atomically; nothing is partially imported.
func (m *Manager) ImportAll(data []byte) ([]Preset, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil || doc.Presets == nil {
		// Tolerate a bare array as well as the wrapper document.
		var list []Preset
		if arrErr := json.Unmarshal(data, &list); arrErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrImportParse, err)
		}
		doc.Presets = list
	}
	for i, p := range doc.Presets {
		if err := p.Config.Validate(); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrImportParse, i, err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	imported := make([]Preset, 0, len(doc.Presets))
	next := append([]Preset{}, m.presets...)
	for _, p := range doc.Presets {
		p.ID = uuid.New().String()
		if p.CreatedAt.IsZero() {
			p.CreatedAt = time.Now()
		}
		p.Config = p.Config.Clone()
		next = append(next, p)
		imported = append(imported, p)
	}
	if err := m.writeAtomic(next); err != nil {
		return nil, err
	}
	m.presets = next
	return imported, nil
}

func (m *Manager) writeAtomic(presets []Preset) error {
	doc := document{Presets: presets}
	if doc.Presets == nil {
		doc.Presets = []Preset{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(m.filePath, data)
}

// writeAtomic writes to a temp file then renames it over path.
func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
