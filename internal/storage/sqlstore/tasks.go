package sqlstore

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
)

const taskColumns = `id, owner, title, area, estimate_minutes, importance, energy_type, flexibility, deadline`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var area, energy string
	err := row.Scan(&t.ID, &t.Owner, &t.Title, &area, &t.EstimateMinutes, &t.Importance, &energy, &t.Flexibility, &t.Deadline)
	if err != nil {
		return models.Task{}, err
	}
	t.Area = constants.Area(area)
	t.EnergyType = constants.EnergyType(energy)
	return t, nil
}

func (s *Store) AddTask(task models.Task) error {
	_, err := s.exec(`
		INSERT INTO tasks (`+taskColumns+`, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Owner, task.Title, string(task.Area), task.EstimateMinutes, task.Importance,
		string(task.EnergyType), task.Flexibility, task.Deadline, now(),
	)
	if err != nil {
		return fmt.Errorf("failed to add task %s: %w", task.ID, err)
	}
	return nil
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.queryRow("SELECT "+taskColumns+" FROM tasks WHERE id = ? AND deleted_at IS NULL", id)
	t, err := scanTask(row)
	if err != nil {
		return models.Task{}, notFound(err, "task", id)
	}
	return t, nil
}

// GetAllTasks returns the live tasks of owner in creation order
func (s *Store) GetAllTasks(owner string) ([]models.Task, error) {
	rows, err := s.query("SELECT "+taskColumns+" FROM tasks WHERE owner = ? AND deleted_at IS NULL ORDER BY created_at, id", owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateTask(task models.Task) error {
	res, err := s.exec(`
		UPDATE tasks SET title = ?, area = ?, estimate_minutes = ?, importance = ?,
		       energy_type = ?, flexibility = ?, deadline = ?
		WHERE id = ? AND deleted_at IS NULL`,
		task.Title, string(task.Area), task.EstimateMinutes, task.Importance,
		string(task.EnergyType), task.Flexibility, task.Deadline, task.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound(sql.ErrNoRows, "task", task.ID)
	}
	return nil
}

// DeleteTask soft deletes a task
func (s *Store) DeleteTask(id string) error {
	return s.softDelete("tasks", "task", id)
}

func (s *Store) RestoreTask(id string) error {
	var deletedAt sql.NullString
	err := s.queryRow("SELECT deleted_at FROM tasks WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		return notFound(err, "task", id)
	}
	if !deletedAt.Valid {
		return fmt.Errorf("cannot restore a task that is not deleted: %s", id)
	}

	_, err = s.exec("UPDATE tasks SET deleted_at = NULL WHERE id = ?", id)
	return err
}
