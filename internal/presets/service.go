package presets

import (
	"errors"

	"github.com/hardchor/snoozr/internal/logger"
	"github.com/hardchor/snoozr/internal/models"
	"github.com/hardchor/snoozr/internal/storage"
)

// Service is the thin adapter between the preset logic and a storage
// backend. Loading always succeeds: any store failure degrades to the
// normalized built-in catalog instead of propagating.
type Service struct {
	store storage.Provider
}

func NewService(store storage.Provider) *Service {
	return &Service{store: store}
}

// Load reads the persisted preset list and normalizes it. When no list
// was ever stored the built-in catalog is the raw input. The legacy
// settings.laterHours value, when present, feeds the normalizer's
// later_today migration.
func (s *Service) Load() []models.SnoozePreset {
	raw, err := s.store.GetPresets()
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("falling back to default presets", "error", err)
		}
		raw = models.DefaultPresets()
	}

	var laterHours *float64
	if settings, err := s.store.GetSettings(); err == nil {
		laterHours = settings.LaterHours
	}

	return NormalizeAll(raw, laterHours)
}

// Save persists the list verbatim. Normalization happens on load only,
// so whatever shape the caller hands over is what later loads will see
// as raw input.
func (s *Service) Save(list []models.SnoozePreset) error {
	return s.store.SavePresets(list)
}

// Reset replaces the stored list with the built-in catalog.
func (s *Service) Reset() error {
	return s.store.SavePresets(models.DefaultPresets())
}

// Find returns the preset with the given ID from a normalized list.
func Find(list []models.SnoozePreset, id string) (models.SnoozePreset, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return models.SnoozePreset{}, false
}
