package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hardchor/snoozr/internal/models"
)

type Store struct {
	Version  int                   `json:"version"`
	Settings models.Settings       `json:"settings"`
	Presets  []models.SnoozePreset `json:"snoozePresets"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	// Initialize with default settings; presets stay unset so loading
	// falls back to the built-in catalog until the user saves a list.
	s.store = &Store{
		Version:  1,
		Settings: models.DefaultSettings(),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'snoozr init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetPresets() ([]models.SnoozePreset, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	// A nil slice means the key was never written ("null"/absent in the
	// document); an empty slice round-trips as "[]" and is a real value.
	if s.store.Presets == nil {
		return nil, ErrNotFound
	}
	out := make([]models.SnoozePreset, 0, len(s.store.Presets))
	for _, p := range s.store.Presets {
		out = append(out, p.Copy())
	}
	return out, nil
}

func (s *JSONStore) SavePresets(presets []models.SnoozePreset) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	stored := make([]models.SnoozePreset, 0, len(presets))
	for _, p := range presets {
		stored = append(stored, p.Copy())
	}
	s.store.Presets = stored
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
