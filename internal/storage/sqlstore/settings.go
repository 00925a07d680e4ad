package sqlstore

import (
	"github.com/julianstephens/cadence/internal/models"
)

// GetSettings returns the stored settings for owner, with defaults for any
// key never saved.
func (s *Store) GetSettings(owner string) (models.Settings, error) {
	rows, err := s.query("SELECT key, value FROM settings WHERE owner = ?", owner)
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	settings, err := models.MapToSettings(data)
	if err != nil {
		return models.Settings{}, err
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

func (s *Store) SaveSettings(owner string, settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(Rebind(s.dialect, `
		INSERT INTO settings (owner, key, value) VALUES (?, ?, ?)
		ON CONFLICT (owner, key) DO UPDATE SET value = excluded.value`))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, value := range models.SettingsToMap(settings) {
		if _, err := stmt.Exec(owner, key, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}
