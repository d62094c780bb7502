package presets

import (
	"strings"

	"github.com/google/uuid"

	"github.com/hardchor/snoozr/internal/models"
)

// defaultLaterHours is used when legacy later_today data carries no
// offset and the stored settings have no laterHours value either.
const defaultLaterHours = 1.0

// NormalizeAll repairs and migrates a persisted preset list element-wise.
// It never appends missing built-in presets: a default the user deleted
// stays deleted. laterHours is the legacy settings.laterHours value, used
// to resolve old later_today data; pass nil when the setting is absent.
func NormalizeAll(list []models.SnoozePreset, laterHours *float64) []models.SnoozePreset {
	out := make([]models.SnoozePreset, 0, len(list))
	for _, p := range list {
		out = append(out, Normalize(p, laterHours))
	}
	return out
}

// Normalize reconciles a single preset against the built-in catalog,
// returning a fresh value. Missing fields fall back to the catalog entry
// with the same ID, then to hardcoded defaults; legacy shapes (the
// {laterHours} template token and the useSettingsLaterHours flag) are
// rewritten to the current format. Normalize is idempotent.
func Normalize(preset models.SnoozePreset, laterHours *float64) models.SnoozePreset {
	def, hasDef := models.DefaultPreset(preset.ID)

	out := models.SnoozePreset{
		ID:            preset.ID,
		TitleTemplate: preset.TitleTemplate,
		Kind:          preset.Kind,
		Icon:          preset.Icon,
	}

	if out.ID == "" {
		out.ID = uuid.NewString()
	}
	if out.TitleTemplate == "" {
		if hasDef {
			out.TitleTemplate = def.TitleTemplate
		} else {
			out.TitleTemplate = "Preset"
		}
	}
	out.TitleTemplate = strings.ReplaceAll(out.TitleTemplate, "{laterHours}", "{hours}")
	if out.Kind == "" {
		if hasDef {
			out.Kind = def.Kind
		} else {
			out.Kind = models.PresetKindRelative
		}
	}
	if out.Icon == "" && hasDef {
		out.Icon = def.Icon
	}

	if out.Kind == models.PresetKindRelative {
		out.Relative = resolveRelative(preset, def, hasDef, laterHours)
		return out
	}

	out.Rule = preset.Rule
	if out.Rule == "" && hasDef {
		out.Rule = def.Rule
	}
	if out.Rule == "" {
		out.Rule = models.RuleTomorrow
	}
	return out
}

func resolveRelative(preset, def models.SnoozePreset, hasDef bool, laterHours *float64) *models.RelativeDelay {
	var hours, days *float64
	if preset.Relative != nil {
		hours = preset.Relative.Hours
		days = preset.Relative.Days
	}
	if hasDef && def.Relative != nil {
		if hours == nil {
			hours = def.Relative.Hours
		}
		if days == nil {
			days = def.Relative.Days
		}
	}

	// Legacy data stored the later_today offset in settings.laterHours,
	// either implicitly (no hours on the preset) or via an explicit flag.
	legacyFlag := preset.Relative != nil && preset.Relative.UseSettingsLaterHours
	if (preset.ID == models.PresetLaterToday && hours == nil) || legacyFlag {
		v := defaultLaterHours
		if laterHours != nil {
			v = *laterHours
		}
		hours = &v
	}

	resolved := &models.RelativeDelay{}
	if hours != nil {
		v := *hours
		resolved.Hours = &v
	}
	if days != nil {
		v := *days
		resolved.Days = &v
	}
	return resolved
}
