package sqlstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
)

func (s *Store) GetPreference(owner string) (models.Preference, error) {
	var p models.Preference
	var weights string
	var moderate, strength sql.NullInt64

	err := s.queryRow(`
		SELECT owner, area_weights, deep_work_capacity, break_preference, sleep_target_hours,
		       weekly_moderate_minutes, weekly_strength_days
		FROM preferences WHERE owner = ?`, owner,
	).Scan(&p.Owner, &weights, &p.DeepWorkCapacity, &p.BreakPreference, &p.SleepTargetHours, &moderate, &strength)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultPreference(owner), nil
	}
	if err != nil {
		return models.Preference{}, err
	}

	p.AreaWeights = map[constants.Area]int{}
	if weights != "" {
		if err := json.Unmarshal([]byte(weights), &p.AreaWeights); err != nil {
			return models.Preference{}, fmt.Errorf("failed to decode area weights for %s: %w", owner, err)
		}
	}
	if moderate.Valid {
		v := int(moderate.Int64)
		p.WeeklyModerateMinutesTarget = &v
	}
	if strength.Valid {
		v := int(strength.Int64)
		p.WeeklyStrengthDaysTarget = &v
	}
	return p, nil
}

func (s *Store) SavePreference(p models.Preference) error {
	weights := p.AreaWeights
	if weights == nil {
		weights = map[constants.Area]int{}
	}
	weightsJSON, err := json.Marshal(weights)
	if err != nil {
		return fmt.Errorf("failed to encode area weights: %w", err)
	}

	var moderate, strength sql.NullInt64
	if p.WeeklyModerateMinutesTarget != nil {
		moderate = sql.NullInt64{Int64: int64(*p.WeeklyModerateMinutesTarget), Valid: true}
	}
	if p.WeeklyStrengthDaysTarget != nil {
		strength = sql.NullInt64{Int64: int64(*p.WeeklyStrengthDaysTarget), Valid: true}
	}

	_, err = s.exec(`
		INSERT INTO preferences (owner, area_weights, deep_work_capacity, break_preference,
		       sleep_target_hours, weekly_moderate_minutes, weekly_strength_days)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner) DO UPDATE SET
		       area_weights = excluded.area_weights,
		       deep_work_capacity = excluded.deep_work_capacity,
		       break_preference = excluded.break_preference,
		       sleep_target_hours = excluded.sleep_target_hours,
		       weekly_moderate_minutes = excluded.weekly_moderate_minutes,
		       weekly_strength_days = excluded.weekly_strength_days`,
		p.Owner, string(weightsJSON), p.DeepWorkCapacity, p.BreakPreference,
		p.SleepTargetHours, moderate, strength,
	)
	return err
}
