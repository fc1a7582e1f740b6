package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"reticle/crosshair"
)

// Favorites is a persisted set of bare configurations keyed by structural
// equality, not by preset id. Lookups are linear; at the expected scale of
// tens of entries that is cheaper than maintaining any index.
type Favorites struct {
	mu       sync.RWMutex
	filePath string
	configs  []crosshair.Config
}

// NewFavorites loads the favorite set from filePath, or starts empty if the
// file does not exist.
func NewFavorites(filePath string) (*Favorites, error) {
	f := &Favorites{filePath: filePath}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &f.configs); err != nil {
		return nil, fmt.Errorf("favorites file: %w", err)
	}
	return f, nil
}

// Contains reports whether a structurally equal configuration is stored.
func (f *Favorites) Contains(cfg crosshair.Config) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.indexOf(cfg) >= 0
}

// List returns a snapshot of all favorites in insertion order.
func (f *Favorites) List() []crosshair.Config {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]crosshair.Config, len(f.configs))
	for i, c := range f.configs {
		out[i] = c.Clone()
	}
	return out
}

// Toggle removes the configuration if an equal entry exists, otherwise adds
// a copy. Returns true when the config is a favorite after the call.
func (f *Favorites) Toggle(cfg crosshair.Config) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var next []crosshair.Config
	added := false
	if i := f.indexOf(cfg); i >= 0 {
		next = append(append([]crosshair.Config{}, f.configs[:i]...), f.configs[i+1:]...)
	} else {
		next = append(append([]crosshair.Config{}, f.configs...), cfg.Clone())
		added = true
	}
	if err := f.write(next); err != nil {
		return false, err
	}
	f.configs = next
	return added, nil
}

func (f *Favorites) indexOf(cfg crosshair.Config) int {
	for i, c := range f.configs {
		if c.Equal(cfg) {
			return i
		}
	}
	return -1
}

func (f *Favorites) write(configs []crosshair.Config) error {
	if configs == nil {
		configs = []crosshair.Config{}
	}
	data, err := json.MarshalIndent(configs, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(f.filePath, data)
}
