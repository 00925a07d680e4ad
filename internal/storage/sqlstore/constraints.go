package sqlstore

import (
	"fmt"
	"time"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
)

const constraintColumns = `id, owner, kind, start_at, end_at, label`

func scanConstraint(row rowScanner) (models.Constraint, error) {
	var c models.Constraint
	var kind, start, end string
	if err := row.Scan(&c.ID, &c.Owner, &kind, &start, &end, &c.Label); err != nil {
		return models.Constraint{}, err
	}
	c.Kind = constants.ConstraintKind(kind)

	var err error
	if c.Start, err = parseTime(start); err != nil {
		return models.Constraint{}, fmt.Errorf("constraint %s has invalid start %q: %w", c.ID, start, err)
	}
	if c.End, err = parseTime(end); err != nil {
		return models.Constraint{}, fmt.Errorf("constraint %s has invalid end %q: %w", c.ID, end, err)
	}
	return c, nil
}

// AddConstraint stores c with its instants normalized to UTC seconds
func (s *Store) AddConstraint(c models.Constraint) error {
	_, err := s.exec(`
		INSERT INTO constraints (`+constraintColumns+`, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Owner, string(c.Kind), formatTime(c.Start), formatTime(c.End), c.Label, now(),
	)
	if err != nil {
		return fmt.Errorf("failed to add constraint %s: %w", c.ID, err)
	}
	return nil
}

func (s *Store) GetConstraint(id string) (models.Constraint, error) {
	row := s.queryRow("SELECT "+constraintColumns+" FROM constraints WHERE id = ? AND deleted_at IS NULL", id)
	c, err := scanConstraint(row)
	if err != nil {
		return models.Constraint{}, notFound(err, "constraint", id)
	}
	return c, nil
}

func (s *Store) GetConstraints(owner string) ([]models.Constraint, error) {
	return s.listConstraints("SELECT "+constraintColumns+" FROM constraints WHERE owner = ? AND deleted_at IS NULL ORDER BY start_at, id", owner)
}

// GetConstraintsInRange relies on UTC RFC3339 strings sorting chronologically
func (s *Store) GetConstraintsInRange(owner string, from, to time.Time) ([]models.Constraint, error) {
	return s.listConstraints(`
		SELECT `+constraintColumns+` FROM constraints
		WHERE owner = ? AND deleted_at IS NULL AND start_at < ? AND end_at > ?
		ORDER BY start_at, id`,
		owner, formatTime(to), formatTime(from),
	)
}

func (s *Store) listConstraints(query string, args ...interface{}) ([]models.Constraint, error) {
	rows, err := s.query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs []models.Constraint
	for rows.Next() {
		c, err := scanConstraint(rows)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, rows.Err()
}

func (s *Store) DeleteConstraint(id string) error {
	return s.softDelete("constraints", "constraint", id)
}
