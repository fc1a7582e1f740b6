package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"reticle/crosshair"
)

// ConfigStore persists the active configuration. A missing or malformed
// file is reported as an error so the caller can fall back to the built-in
// default without treating disk garbage as a valid config.
type ConfigStore struct {
	mu       sync.Mutex
	filePath string
}

func NewConfigStore(filePath string) *ConfigStore {
	return &ConfigStore{filePath: filePath}
}

// Load reads and validates the stored configuration.
func (s *ConfigStore) Load() (crosshair.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return crosshair.Config{}, ErrNoConfig
		}
		return crosshair.Config{}, err
	}

	var cfg crosshair.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return crosshair.Config{}, fmt.Errorf("config file: %w", err)
	}
	if cfg.Lines == nil {
		cfg.Lines = []crosshair.Line{}
	}
	if err := cfg.Validate(); err != nil {
		return crosshair.Config{}, fmt.Errorf("config file: %w", err)
	}
	return cfg, nil
}

// Save validates and atomically writes the configuration.
func (s *ConfigStore) Save(cfg crosshair.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(s.filePath, data)
}
