package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"

	_ "github.com/lib/pq"

	"github.com/hardchor/snoozr/internal/constants"
	"github.com/hardchor/snoozr/internal/keyring"
	"github.com/hardchor/snoozr/internal/models"
	"github.com/hardchor/snoozr/internal/storage"
)

// ErrEmbeddedCredentials is returned when a connection string carries an
// inline password, which we refuse to accept on the command line.
var ErrEmbeddedCredentials = errors.New("connection string contains embedded credentials")

// Store persists settings and presets in PostgreSQL, with the same
// key/value + document layout as the SQLite backend.
type Store struct {
	connStr string
	db      *sql.DB
}

func New(connStr string) *Store {
	return &Store{
		connStr: connStr,
	}
}

// ValidateConnString rejects connection strings with an inline password.
// Credentials belong in the environment, .pgpass, or the OS keyring.
func ValidateConnString(connStr string) (bool, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return false, fmt.Errorf("invalid connection string: %w", err)
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			return false, ErrEmbeddedCredentials
		}
	}
	return true, nil
}

// ResolveConnString picks the effective connection string: the explicit
// argument wins, then the SNOOZR_DB_CONNECTION environment variable,
// then the OS keyring.
func ResolveConnString(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if env := os.Getenv("SNOOZR_DB_CONNECTION"); env != "" {
		return env, nil
	}
	connStr, err := keyring.GetConnectionString()
	if err != nil {
		return "", fmt.Errorf("no connection string configured: %w", err)
	}
	return connStr, nil
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
	if err := s.open(); err != nil {
		return err
	}

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
	return s.open()
}

func (s *Store) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
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

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`)
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
		if _, err := tx.Exec("DELETE FROM settings WHERE key = $1", constants.SettingLaterHours); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetPresets() ([]models.SnoozePreset, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM documents WHERE key = $1", "snoozePresets").Scan(&data)
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

	_, err = s.db.Exec(`
		INSERT INTO documents (key, data) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data
	`, "snoozePresets", string(data))
	return err
}

func (s *Store) GetConfigPath() string {
	return s.connStr
}
