package presets

import (
	"errors"
	"testing"

	"github.com/hardchor/snoozr/internal/models"
	"github.com/hardchor/snoozr/internal/storage"
)

// fakeStore is an in-memory storage.Provider for exercising the service
// without touching disk.
type fakeStore struct {
	presets     []models.SnoozePreset
	hasPresets  bool
	settings    models.Settings
	hasSettings bool
	failGet     error
}

func (f *fakeStore) Init() error  { return nil }
func (f *fakeStore) Load() error  { return nil }
func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) GetSettings() (models.Settings, error) {
	if !f.hasSettings {
		return models.Settings{}, errors.New("settings not found")
	}
	return f.settings, nil
}

func (f *fakeStore) SaveSettings(s models.Settings) error {
	f.settings = s
	f.hasSettings = true
	return nil
}

func (f *fakeStore) GetPresets() ([]models.SnoozePreset, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	if !f.hasPresets {
		return nil, storage.ErrNotFound
	}
	return f.presets, nil
}

func (f *fakeStore) SavePresets(list []models.SnoozePreset) error {
	f.presets = list
	f.hasPresets = true
	return nil
}

func (f *fakeStore) GetConfigPath() string { return "fake" }

func TestServiceLoad_AbsentPresetsFallBackToCatalog(t *testing.T) {
	svc := NewService(&fakeStore{})

	got := svc.Load()

	want := []string{
		models.PresetLaterToday,
		models.PresetTonight,
		models.PresetTomorrow,
		models.PresetWeekend,
		models.PresetNextWeek,
	}
	if len(got) != len(want) {
		t.Fatalf("Load() returned %d presets, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: ID = %q, want %q", i, got[i].ID, id)
		}
	}
	// The catalog's later_today has no stored offset; loading resolves it.
	if got[0].Relative == nil || got[0].Relative.Hours == nil || *got[0].Relative.Hours != 1 {
		t.Errorf("later_today hours = %v, want resolved default 1", got[0].Relative)
	}
}

func TestServiceLoad_StoreFailureDegradesToDefaults(t *testing.T) {
	svc := NewService(&fakeStore{failGet: errors.New("disk on fire")})

	got := svc.Load()

	if len(got) != 5 {
		t.Fatalf("Load() returned %d presets, want the 5 defaults", len(got))
	}
}

func TestServiceLoad_LegacyLaterHoursFromSettings(t *testing.T) {
	hours := 4.0
	store := &fakeStore{
		presets: []models.SnoozePreset{
			{ID: models.PresetLaterToday, TitleTemplate: "Later (in {laterHours}h)", Kind: models.PresetKindRelative, Relative: &models.RelativeDelay{}},
		},
		hasPresets:  true,
		settings:    models.Settings{StartOfDay: "08:00", EndOfDay: "20:00", LaterHours: &hours},
		hasSettings: true,
	}
	svc := NewService(store)

	got := svc.Load()

	if len(got) != 1 {
		t.Fatalf("Load() returned %d presets, want 1", len(got))
	}
	if got[0].Relative == nil || got[0].Relative.Hours == nil || *got[0].Relative.Hours != 4 {
		t.Errorf("later_today hours = %v, want 4 from settings.laterHours", got[0].Relative)
	}
	if got[0].TitleTemplate != "Later (in {hours}h)" {
		t.Errorf("TitleTemplate = %q, want migrated template", got[0].TitleTemplate)
	}
}

func TestServiceLoad_EmptyListStaysEmpty(t *testing.T) {
	store := &fakeStore{presets: []models.SnoozePreset{}, hasPresets: true}
	svc := NewService(store)

	if got := svc.Load(); len(got) != 0 {
		t.Errorf("Load() returned %d presets for a stored empty list, want 0", len(got))
	}
}

func TestServiceSave_VerbatimNoNormalization(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	raw := []models.SnoozePreset{
		{ID: models.PresetLaterToday, TitleTemplate: "Later (in {laterHours}h)"},
	}
	if err := svc.Save(raw); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// Normalization happens on load only; the stored value keeps the
	// legacy template.
	if store.presets[0].TitleTemplate != "Later (in {laterHours}h)" {
		t.Errorf("stored template = %q, want the raw legacy template", store.presets[0].TitleTemplate)
	}
}

func TestServiceReset_WritesCatalog(t *testing.T) {
	store := &fakeStore{presets: []models.SnoozePreset{{ID: "custom"}}, hasPresets: true}
	svc := NewService(store)

	if err := svc.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	if len(store.presets) != 5 {
		t.Fatalf("Reset() stored %d presets, want the 5 defaults", len(store.presets))
	}
	if store.presets[0].ID != models.PresetLaterToday {
		t.Errorf("first stored preset = %q, want %q", store.presets[0].ID, models.PresetLaterToday)
	}
}

func TestFind(t *testing.T) {
	list := []models.SnoozePreset{{ID: "a"}, {ID: "b"}}

	if p, ok := Find(list, "b"); !ok || p.ID != "b" {
		t.Errorf("Find(b) = %v, %v", p, ok)
	}
	if _, ok := Find(list, "missing"); ok {
		t.Error("Find(missing) reported a match")
	}
}
