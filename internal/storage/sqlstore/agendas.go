package sqlstore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/julianstephens/cadence/internal/models"
)

// SaveAgenda stores agenda as the next revision for its owner and date and
// returns it with Revision and CreatedAt filled in. Earlier revisions are kept.
func (s *Store) SaveAgenda(agenda models.Agenda) (models.Agenda, error) {
	blocks := agenda.Blocks
	if blocks == nil {
		blocks = []models.ScheduledBlock{}
	}
	blocksJSON, err := json.Marshal(blocks)
	if err != nil {
		return models.Agenda{}, fmt.Errorf("failed to encode blocks: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.Agenda{}, err
	}
	defer tx.Rollback()

	var latest sql.NullInt64
	err = tx.QueryRow(Rebind(s.dialect, "SELECT MAX(revision) FROM agendas WHERE owner = ? AND date = ?"),
		agenda.Owner, agenda.Date).Scan(&latest)
	if err != nil {
		return models.Agenda{}, fmt.Errorf("failed to check existing agenda: %w", err)
	}

	agenda.Revision = int(latest.Int64) + 1
	agenda.CreatedAt = now()
	agenda.Blocks = blocks

	_, err = tx.Exec(Rebind(s.dialect, `
		INSERT INTO agendas (owner, date, revision, confidence, blocks, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`),
		agenda.Owner, agenda.Date, agenda.Revision, agenda.Confidence, string(blocksJSON), agenda.CreatedAt,
	)
	if err != nil {
		return models.Agenda{}, fmt.Errorf("failed to save agenda: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Agenda{}, err
	}
	return agenda, nil
}

func (s *Store) GetLatestAgenda(owner, date string) (models.Agenda, error) {
	row := s.queryRow(`
		SELECT owner, date, revision, confidence, blocks, created_at FROM agendas
		WHERE owner = ? AND date = ? ORDER BY revision DESC LIMIT 1`, owner, date)
	return scanAgenda(row, date)
}

func (s *Store) GetAgendaRevision(owner, date string, revision int) (models.Agenda, error) {
	row := s.queryRow(`
		SELECT owner, date, revision, confidence, blocks, created_at FROM agendas
		WHERE owner = ? AND date = ? AND revision = ?`, owner, date, revision)
	return scanAgenda(row, fmt.Sprintf("%s revision %d", date, revision))
}

// GetAllAgendas returns every stored revision for owner, oldest first
func (s *Store) GetAllAgendas(owner string) ([]models.Agenda, error) {
	rows, err := s.query(`
		SELECT owner, date, revision, confidence, blocks, created_at FROM agendas
		WHERE owner = ? ORDER BY date, revision`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agendas []models.Agenda
	for rows.Next() {
		a, err := scanAgenda(rows, owner)
		if err != nil {
			return nil, err
		}
		agendas = append(agendas, a)
	}
	return agendas, rows.Err()
}

func scanAgenda(row rowScanner, id string) (models.Agenda, error) {
	var a models.Agenda
	var blocks string
	if err := row.Scan(&a.Owner, &a.Date, &a.Revision, &a.Confidence, &blocks, &a.CreatedAt); err != nil {
		return models.Agenda{}, notFound(err, "agenda", id)
	}
	if err := json.Unmarshal([]byte(blocks), &a.Blocks); err != nil {
		return models.Agenda{}, fmt.Errorf("failed to decode agenda blocks: %w", err)
	}
	return a, nil
}
