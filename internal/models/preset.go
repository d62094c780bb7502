package models

type PresetKind string

const (
	PresetKindRelative PresetKind = "relative"
	PresetKindRule     PresetKind = "rule"
)

type RuleType string

const (
	RuleTonight  RuleType = "tonight"
	RuleTomorrow RuleType = "tomorrow"
	RuleWeekend  RuleType = "weekend"
	RuleNextWeek RuleType = "next_week"
)

type Icon string

const (
	IconClock    Icon = "clock"
	IconMoon     Icon = "moon"
	IconSunrise  Icon = "sunrise"
	IconCouch    Icon = "couch"
	IconCalendar Icon = "calendar"
)

// Built-in preset IDs.
const (
	PresetLaterToday = "later_today"
	PresetTonight    = "tonight"
	PresetTomorrow   = "tomorrow"
	PresetWeekend    = "weekend"
	PresetNextWeek   = "next_week"
)

// RelativeDelay is the payload of a relative preset. Hours and Days are
// pointers because "absent" and "zero" are distinct states: legacy data
// migration keys off a missing hours value.
type RelativeDelay struct {
	Hours *float64 `json:"hours,omitempty"`
	Days  *float64 `json:"days,omitempty"`
	// UseSettingsLaterHours is a legacy flag from old stored data; the
	// normalizer resolves it into a concrete Hours value.
	UseSettingsLaterHours bool `json:"useSettingsLaterHours,omitempty"`
}

// SnoozePreset is a named scheduling rule. Kind selects which payload is
// active: Relative for fixed offsets, Rule for calendar-based wake times.
// The inactive payload is ignored.
type SnoozePreset struct {
	ID            string         `json:"id"`
	TitleTemplate string         `json:"titleTemplate"`
	Kind          PresetKind     `json:"kind"`
	Relative      *RelativeDelay `json:"relative,omitempty"`
	Rule          RuleType       `json:"rule,omitempty"`
	Icon          Icon           `json:"icon,omitempty"`
}

// Copy returns a deep copy of the preset so callers can never alias the
// Relative payload of another preset value.
func (p SnoozePreset) Copy() SnoozePreset {
	if p.Relative != nil {
		r := *p.Relative
		if r.Hours != nil {
			v := *r.Hours
			r.Hours = &v
		}
		if r.Days != nil {
			v := *r.Days
			r.Days = &v
		}
		p.Relative = &r
	}
	return p
}

// defaultPresets is the built-in catalog, in display order. It is the
// fallback when no user presets are stored and the reference used to
// repair partial or legacy entries. later_today carries an empty relative
// payload on purpose: its hours come from the legacy laterHours setting
// during normalization.
var defaultPresets = []SnoozePreset{
	{ID: PresetLaterToday, TitleTemplate: "Later Today (in {hours}h)", Kind: PresetKindRelative, Relative: &RelativeDelay{}, Icon: IconClock},
	{ID: PresetTonight, TitleTemplate: "Tonight (at {endOfDay})", Kind: PresetKindRule, Rule: RuleTonight, Icon: IconMoon},
	{ID: PresetTomorrow, TitleTemplate: "Tomorrow (at {startOfDay})", Kind: PresetKindRule, Rule: RuleTomorrow, Icon: IconSunrise},
	{ID: PresetWeekend, TitleTemplate: "This Weekend ({startOfWeekendName}, {startOfDay})", Kind: PresetKindRule, Rule: RuleWeekend, Icon: IconCouch},
	{ID: PresetNextWeek, TitleTemplate: "Next Week ({startOfWeekName}, {startOfDay})", Kind: PresetKindRule, Rule: RuleNextWeek, Icon: IconCalendar},
}

// DefaultPresets returns a fresh copy of the built-in preset catalog.
func DefaultPresets() []SnoozePreset {
	out := make([]SnoozePreset, 0, len(defaultPresets))
	for _, p := range defaultPresets {
		out = append(out, p.Copy())
	}
	return out
}

// DefaultPreset looks up a built-in preset by ID and returns a copy of it.
func DefaultPreset(id string) (SnoozePreset, bool) {
	for _, p := range defaultPresets {
		if p.ID == id {
			return p.Copy(), true
		}
	}
	return SnoozePreset{}, false
}
