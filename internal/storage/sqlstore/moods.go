package sqlstore

import (
	"github.com/julianstephens/cadence/internal/models"
)

// AddMoodLog records a mood log, replacing any earlier log for the same date
func (s *Store) AddMoodLog(m models.MoodLog) error {
	_, err := s.exec(`
		INSERT INTO mood_logs (id, owner, date, mood, energy) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (owner, date) DO UPDATE SET mood = excluded.mood, energy = excluded.energy`,
		m.ID, m.Owner, m.Date, m.Mood, m.Energy,
	)
	return err
}

func (s *Store) GetRecentMoodLogs(owner string, limit int) ([]models.MoodLog, error) {
	if limit <= 0 {
		limit = 30
	}
	rows, err := s.query(`
		SELECT id, owner, date, mood, energy FROM mood_logs
		WHERE owner = ? ORDER BY date DESC LIMIT ?`, owner, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.MoodLog
	for rows.Next() {
		var m models.MoodLog
		if err := rows.Scan(&m.ID, &m.Owner, &m.Date, &m.Mood, &m.Energy); err != nil {
			return nil, err
		}
		logs = append(logs, m)
	}
	return logs, rows.Err()
}
