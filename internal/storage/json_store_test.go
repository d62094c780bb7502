package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hardchor/snoozr/internal/models"
)

func newTestStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "snoozr.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return store
}

func TestJSONStoreInitTwiceFails(t *testing.T) {
	store := newTestStore(t)

	if err := store.Init(); err == nil {
		t.Error("second Init() should fail on existing storage")
	}
}

func TestJSONStoreLoadWithoutInitFails(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))

	if err := store.Load(); err == nil {
		t.Error("Load() should fail when storage was never initialized")
	}
}

func TestJSONStoreSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if settings.StartOfDay == "" || settings.EndOfDay == "" {
		t.Error("Init() should seed default day boundaries")
	}

	hours := 2.5
	settings.StartOfDay = "07:30"
	settings.LaterHours = &hours
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	// Reload from disk and verify persistence.
	reloaded := NewJSONStore(store.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	got, err := reloaded.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() after reload failed: %v", err)
	}
	if got.StartOfDay != "07:30" {
		t.Errorf("StartOfDay = %q, want %q", got.StartOfDay, "07:30")
	}
	if got.LaterHours == nil || *got.LaterHours != 2.5 {
		t.Errorf("LaterHours = %v, want 2.5", got.LaterHours)
	}
}

func TestJSONStorePresetsAbsentUntilWritten(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetPresets()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetPresets() error = %v, want ErrNotFound before any save", err)
	}
}

func TestJSONStorePresetsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	hours := 3.0
	saved := []models.SnoozePreset{
		{ID: "custom", TitleTemplate: "Wait (in {hours}h)", Kind: models.PresetKindRelative, Relative: &models.RelativeDelay{Hours: &hours}},
		{ID: "tonight", TitleTemplate: "Tonight (at {endOfDay})", Kind: models.PresetKindRule, Rule: models.RuleTonight, Icon: models.IconMoon},
	}
	if err := store.SavePresets(saved); err != nil {
		t.Fatalf("SavePresets() failed: %v", err)
	}

	reloaded := NewJSONStore(store.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	got, err := reloaded.GetPresets()
	if err != nil {
		t.Fatalf("GetPresets() failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("GetPresets() returned %d presets, want 2", len(got))
	}
	if got[0].ID != "custom" || got[1].ID != "tonight" {
		t.Errorf("preset order not preserved: %q, %q", got[0].ID, got[1].ID)
	}
	if got[0].Relative == nil || got[0].Relative.Hours == nil || *got[0].Relative.Hours != 3 {
		t.Errorf("Relative.Hours = %v, want 3", got[0].Relative)
	}
	if got[1].Rule != models.RuleTonight || got[1].Icon != models.IconMoon {
		t.Errorf("rule preset did not round-trip: %+v", got[1])
	}
}

func TestJSONStoreEmptyListIsNotAbsent(t *testing.T) {
	store := newTestStore(t)

	if err := store.SavePresets([]models.SnoozePreset{}); err != nil {
		t.Fatalf("SavePresets() failed: %v", err)
	}

	reloaded := NewJSONStore(store.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	got, err := reloaded.GetPresets()
	if err != nil {
		t.Fatalf("GetPresets() = %v, want empty list rather than ErrNotFound", err)
	}
	if len(got) != 0 {
		t.Errorf("GetPresets() returned %d presets, want 0", len(got))
	}
}

func TestJSONStoreGetPresetsCopies(t *testing.T) {
	store := newTestStore(t)

	hours := 1.0
	if err := store.SavePresets([]models.SnoozePreset{
		{ID: "a", Kind: models.PresetKindRelative, Relative: &models.RelativeDelay{Hours: &hours}},
	}); err != nil {
		t.Fatalf("SavePresets() failed: %v", err)
	}

	first, _ := store.GetPresets()
	*first[0].Relative.Hours = 99

	second, _ := store.GetPresets()
	if *second[0].Relative.Hours != 1 {
		t.Error("mutating a returned preset leaked into the store")
	}
}
