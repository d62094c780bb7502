package constants

const (
	AppName            = "snoozr"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/snoozr/snoozr.db"
	Version            = "v0.3.0"

	// TimeFormat is the clock format used for day boundaries (HH:MM)
	TimeFormat = "15:04"

	// Settings keys as persisted by the store backends. These match the
	// wire names the browser extension used so existing data round-trips.
	SettingStartOfDay           = "startOfDay"
	SettingEndOfDay             = "endOfDay"
	SettingStartOfWeek          = "startOfWeek"
	SettingStartOfWeekend       = "startOfWeekend"
	SettingLaterHours           = "laterHours"
	SettingNotificationsEnabled = "notificationsEnabled"

	// Default Settings Values
	DefaultStartOfDay           = "08:00"
	DefaultEndOfDay             = "20:00"
	DefaultStartOfWeek          = 1 // Monday
	DefaultStartOfWeekend       = 6 // Saturday
	DefaultNotificationsEnabled = true
)
