package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/hardchor/snoozr/internal/constants"
	"github.com/hardchor/snoozr/internal/models"
	"github.com/hardchor/snoozr/internal/storage"
)

// Store persists settings as key/value rows and the preset list as a
// single JSON document row, mirroring the key-value shape of the
// browser extension storage this data originally lived in.
type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS documents (
	key  TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
`

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	// Seed default settings when none exist yet. Presets stay unwritten
	// so loads fall back to the built-in catalog.
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'snoozr init' first")
	}

	return s.open()
}

func (s *Store) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Single-writer engine; keep the pool at one connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return fmt.Errorf("apply pragmas: %w", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		if err := applySetting(&settings, key, value); err != nil {
			return models.Settings{}, err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func applySetting(settings *models.Settings, key, value string) error {
	switch key {
	case constants.SettingStartOfDay:
		settings.StartOfDay = value
	case constants.SettingEndOfDay:
		settings.EndOfDay = value
	case constants.SettingStartOfWeek:
		if _, err := fmt.Sscanf(value, "%d", &settings.StartOfWeek); err != nil {
			return fmt.Errorf("parsing startOfWeek: %w", err)
		}
	case constants.SettingStartOfWeekend:
		if _, err := fmt.Sscanf(value, "%d", &settings.StartOfWeekend); err != nil {
			return fmt.Errorf("parsing startOfWeekend: %w", err)
		}
	case constants.SettingLaterHours:
		var hours float64
		if _, err := fmt.Sscanf(value, "%g", &hours); err != nil {
			return fmt.Errorf("parsing laterHours: %w", err)
		}
		settings.LaterHours = &hours
	case constants.SettingNotificationsEnabled:
		settings.NotificationsEnabled = value == "true"
	}
	return nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(constants.SettingStartOfDay, settings.StartOfDay); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingEndOfDay, settings.EndOfDay); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingStartOfWeek, fmt.Sprintf("%d", settings.StartOfWeek)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingStartOfWeekend, fmt.Sprintf("%d", settings.StartOfWeekend)); err != nil {
		return err
	}
	if _, err := stmt.Exec(constants.SettingNotificationsEnabled, fmt.Sprintf("%v", settings.NotificationsEnabled)); err != nil {
		return err
	}
	if settings.LaterHours != nil {
		if _, err := stmt.Exec(constants.SettingLaterHours, fmt.Sprintf("%g", *settings.LaterHours)); err != nil {
			return err
		}
	} else {
		if _, err := tx.Exec("DELETE FROM settings WHERE key = ?", constants.SettingLaterHours); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetPresets() ([]models.SnoozePreset, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM documents WHERE key = ?", "snoozePresets").Scan(&data)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var presets []models.SnoozePreset
	if err := json.Unmarshal([]byte(data), &presets); err != nil {
		return nil, fmt.Errorf("failed to parse stored presets: %w", err)
	}
	if presets == nil {
		presets = []models.SnoozePreset{}
	}
	return presets, nil
}

func (s *Store) SavePresets(presets []models.SnoozePreset) error {
	if presets == nil {
		presets = []models.SnoozePreset{}
	}
	data, err := json.Marshal(presets)
	if err != nil {
		return fmt.Errorf("failed to serialize presets: %w", err)
	}

	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO documents (key, data) VALUES (?, ?)",
		"snoozePresets", string(data),
	)
	return err
}

func (s *Store) GetConfigPath() string {
	return s.path
}
