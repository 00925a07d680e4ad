package models

import "github.com/julianstephens/cadence/internal/constants"

type Task struct {
	ID              string               `json:"id"`
	Owner           string               `json:"owner"`
	Title           string               `json:"title"`
	Area            constants.Area       `json:"area"`
	EstimateMinutes int                  `json:"estimate_minutes"`
	Importance      int                  `json:"importance"` // 0..10
	EnergyType      constants.EnergyType `json:"energy_type"`
	Flexibility     int                  `json:"flexibility"`        // 0..10, carried but not used by the engine
	Deadline        string               `json:"deadline,omitempty"` // ISO-8601 timestamp
}

// IsDeep reports whether the task needs deep focus
func (t Task) IsDeep() bool {
	return t.EnergyType == constants.EnergyDeep
}
