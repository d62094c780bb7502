package cli

import (
	"fmt"
	"time"

	"github.com/hardchor/snoozr/internal/constants"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	StartOfDay           *string `help:"Start of day, HH:MM."`
	EndOfDay             *string `help:"End of day, HH:MM."`
	StartOfWeek          *int    `help:"First day of the week, 0=Sunday .. 6=Saturday."`
	StartOfWeekend       *int    `help:"First day of the weekend, 0=Sunday .. 6=Saturday."`
	NotificationsEnabled *bool   `help:"Enable or disable wake notifications."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Start of Day:          %s\n", settings.StartOfDay)
		fmt.Printf("  End of Day:            %s\n", settings.EndOfDay)
		fmt.Printf("  Start of Week:         %s\n", time.Weekday(settings.StartOfWeek))
		fmt.Printf("  Start of Weekend:      %s\n", time.Weekday(settings.StartOfWeekend))
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		if settings.LaterHours != nil {
			fmt.Printf("  Later Hours (legacy):  %g\n", *settings.LaterHours)
		}
		return nil
	}

	updated := false
	if c.StartOfDay != nil {
		if !validClock(*c.StartOfDay) {
			return fmt.Errorf("invalid start of day %q, want HH:MM", *c.StartOfDay)
		}
		settings.StartOfDay = *c.StartOfDay
		updated = true
	}
	if c.EndOfDay != nil {
		if !validClock(*c.EndOfDay) {
			return fmt.Errorf("invalid end of day %q, want HH:MM", *c.EndOfDay)
		}
		settings.EndOfDay = *c.EndOfDay
		updated = true
	}
	if c.StartOfWeek != nil {
		if !validWeekday(*c.StartOfWeek) {
			return fmt.Errorf("invalid start of week %d, want 0-6", *c.StartOfWeek)
		}
		settings.StartOfWeek = *c.StartOfWeek
		updated = true
	}
	if c.StartOfWeekend != nil {
		if !validWeekday(*c.StartOfWeekend) {
			return fmt.Errorf("invalid start of weekend %d, want 0-6", *c.StartOfWeekend)
		}
		settings.StartOfWeekend = *c.StartOfWeekend
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}

	if !updated {
		fmt.Println("Nothing to update. Use --list to view settings.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated.")
	return nil
}

// validClock checks HH:MM at the CLI edge; the core itself does not
// validate time strings.
func validClock(clock string) bool {
	_, err := time.Parse(constants.TimeFormat, clock)
	return err == nil
}

func validWeekday(day int) bool {
	return day >= 0 && day <= 6
}
