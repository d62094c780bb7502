package models

import "github.com/hardchor/snoozr/internal/constants"

// Settings represents user-configured calendar boundaries
type Settings struct {
	StartOfDay     string `json:"startOfDay"`     // the time the day starts, e.g. "08:00"
	EndOfDay       string `json:"endOfDay"`       // the time the day ends, e.g. "20:00"
	StartOfWeek    int    `json:"startOfWeek"`    // first day of the week, 0=Sunday .. 6=Saturday
	StartOfWeekend int    `json:"startOfWeekend"` // first day of the weekend, 0=Sunday .. 6=Saturday

	// LaterHours is the legacy "snooze later" offset; new data stores the
	// offset on the later_today preset itself.
	LaterHours *float64 `json:"laterHours,omitempty"`

	NotificationsEnabled bool `json:"notificationsEnabled"` // whether wake notifications are enabled
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.StartOfDay == "" {
		settings.StartOfDay = constants.DefaultStartOfDay
	}
	if settings.EndOfDay == "" {
		settings.EndOfDay = constants.DefaultEndOfDay
	}
}

// DefaultSettings returns a Settings populated entirely from defaults.
func DefaultSettings() Settings {
	return Settings{
		StartOfDay:           constants.DefaultStartOfDay,
		EndOfDay:             constants.DefaultEndOfDay,
		StartOfWeek:          constants.DefaultStartOfWeek,
		StartOfWeekend:       constants.DefaultStartOfWeekend,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
	}
}
