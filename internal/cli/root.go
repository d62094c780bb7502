package cli

import (
	"fmt"
	"time"

	"github.com/hardchor/snoozr/internal/models"
	"github.com/hardchor/snoozr/internal/presets"
	"github.com/hardchor/snoozr/internal/storage"
)

type Context struct {
	Store   storage.Provider
	Presets *presets.Service
}

// Settings loads stored settings, filling any missing day boundaries
// with defaults so downstream rendering always has usable values.
func (c *Context) Settings() models.Settings {
	settings, err := c.Store.GetSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}
	models.ApplyDefaultSettings(&settings)
	return settings
}

// parseAt parses the --at flag. An empty value means the current instant.
func parseAt(at string) (time.Time, error) {
	if at == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(time.RFC3339, at, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at value %q (want RFC3339, e.g. 2025-07-12T21:00:00Z): %w", at, err)
	}
	return t.In(time.Local), nil
}
