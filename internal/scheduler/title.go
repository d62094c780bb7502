package scheduler

import (
	"strconv"
	"strings"
	"time"

	"github.com/hardchor/snoozr/internal/models"
)

// RenderTitle produces the display label for a preset by substituting the
// {placeholder} tokens in its title template. When a reference instant is
// supplied, rule presets additionally adjust their wording to match what
// WakeTime would actually schedule: "Tonight" becomes "Tomorrow Night"
// once EndOfDay has passed, and "This Weekend" becomes "Next Weekend"
// while the weekend is already underway.
func RenderTitle(preset models.SnoozePreset, settings models.Settings, now ...time.Time) string {
	title := preset.TitleTemplate

	if len(now) > 0 && preset.Kind == models.PresetKindRule {
		at := now[0]
		switch preset.Rule {
		case models.RuleTonight:
			if tonightRollsOver(settings, at) {
				title = strings.ReplaceAll(title, "Tonight", "Tomorrow Night")
			}
		case models.RuleWeekend:
			if inWeekend(settings, at) {
				title = strings.ReplaceAll(title, "This Weekend", "Next Weekend")
			}
		}
	}

	return substitute(title, preset, settings)
}

// substitute replaces the fixed placeholder set. Tokens outside the set
// are left verbatim, braces and all.
func substitute(title string, preset models.SnoozePreset, settings models.Settings) string {
	replacer := strings.NewReplacer(
		"{endOfDay}", settings.EndOfDay,
		"{startOfDay}", settings.StartOfDay,
		"{startOfWeekendName}", weekdayName(settings.StartOfWeekend),
		"{startOfWeekName}", weekdayName(settings.StartOfWeek),
		"{hours}", formatDelayHours(preset.Relative),
		"{days}", formatDelayDays(preset.Relative),
	)
	return replacer.Replace(title)
}

// weekdayName maps 0=Sunday .. 6=Saturday to the full English day name.
func weekdayName(day int) string {
	return time.Weekday(day).String()
}

func formatDelayHours(relative *models.RelativeDelay) string {
	if relative == nil || relative.Hours == nil {
		return ""
	}
	return strconv.FormatFloat(*relative.Hours, 'f', -1, 64)
}

func formatDelayDays(relative *models.RelativeDelay) string {
	if relative == nil || relative.Days == nil {
		return ""
	}
	return strconv.FormatFloat(*relative.Days, 'f', -1, 64)
}
