package storage

import (
	"errors"

	"github.com/hardchor/snoozr/internal/models"
)

// ErrNotFound is returned by GetPresets when no preset list has ever been
// written. An empty stored list is a real value (the user deleted all
// presets) and is not an error.
var ErrNotFound = errors.New("not found")

// Provider is the persistence backend for presets and settings. Backends
// must preserve preset list order.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Presets
	GetPresets() ([]models.SnoozePreset, error)
	SavePresets([]models.SnoozePreset) error

	// Utils
	GetConfigPath() string
}
