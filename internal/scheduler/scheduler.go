package scheduler

import (
	"fmt"
	"time"

	"github.com/hardchor/snoozr/internal/models"
)

// WakeTime computes the instant a snoozed tab should resurface, in the
// calendar of now's location. It is a total function: malformed input
// degrades (see parseClock) rather than erroring, and an unrecognized
// rule falls back to now itself.
func WakeTime(preset models.SnoozePreset, settings models.Settings, now time.Time) time.Time {
	if preset.Kind == models.PresetKindRelative {
		var hours, days float64
		if preset.Relative != nil {
			if preset.Relative.Hours != nil {
				hours = *preset.Relative.Hours
			}
			if preset.Relative.Days != nil {
				days = *preset.Relative.Days
			}
		}
		return now.Add(time.Duration(hours*float64(time.Hour)) + time.Duration(days*24*float64(time.Hour)))
	}

	switch preset.Rule {
	case models.RuleTonight:
		hour, minute := parseClock(settings.EndOfDay)
		target := onDayAt(now, 0, hour, minute)
		if tonightRollsOver(settings, now) {
			target = target.AddDate(0, 0, 1)
		}
		return target

	case models.RuleTomorrow:
		hour, minute := parseClock(settings.StartOfDay)
		return onDayAt(now, 1, hour, minute)

	case models.RuleWeekend:
		days := settings.StartOfWeekend - int(now.Weekday())
		if days < 0 {
			days += 7
		}
		return futureDayAt(now, days, settings.StartOfDay)

	case models.RuleNextWeek:
		// Unlike weekend, a same-day match always resolves to next week.
		days := settings.StartOfWeek - int(now.Weekday())
		if days <= 0 {
			days += 7
		}
		return futureDayAt(now, days, settings.StartOfDay)
	}

	return now
}

// tonightRollsOver reports whether today's EndOfDay has already passed at
// now, i.e. whether the tonight rule resolves to tomorrow evening. The
// renderer reuses this predicate so wording never drifts from the
// calculated wake time.
func tonightRollsOver(settings models.Settings, now time.Time) bool {
	hour, minute := parseClock(settings.EndOfDay)
	return onDayAt(now, 0, hour, minute).Before(now)
}

// inWeekend reports whether now's weekday falls inside the configured
// weekend span: StartOfWeekend through the day before StartOfWeek,
// wrapping past the week boundary when needed.
func inWeekend(settings models.Settings, now time.Time) bool {
	day := int(now.Weekday())
	if settings.StartOfWeekend <= settings.StartOfWeek {
		return settings.StartOfWeekend <= day && day < settings.StartOfWeek
	}
	return day >= settings.StartOfWeekend || day < settings.StartOfWeek
}

// futureDayAt resolves "daysAhead from now at startOfDay", pushing a full
// week ahead when the candidate has already passed (a same-day target
// whose time of day is behind now).
func futureDayAt(now time.Time, daysAhead int, startOfDay string) time.Time {
	hour, minute := parseClock(startOfDay)
	target := onDayAt(now, daysAhead, hour, minute)
	if !target.After(now) {
		target = target.AddDate(0, 0, 7)
	}
	return target
}

// onDayAt returns the given clock time on the calendar day daysAhead of
// ref, in ref's location. AddDate carries month and year boundaries.
func onDayAt(ref time.Time, daysAhead, hour, minute int) time.Time {
	day := ref.AddDate(0, 0, daysAhead)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, ref.Location())
}

// parseClock splits an "HH:MM" string into its components. Settings are
// trusted input: a malformed component simply parses as zero.
func parseClock(clock string) (hour, minute int) {
	fmt.Sscanf(clock, "%d:%d", &hour, &minute)
	return hour, minute
}
