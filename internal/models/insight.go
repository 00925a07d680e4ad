package models

import "github.com/julianstephens/cadence/internal/constants"

// Insight is an advisory metric or note. It never feeds back into scheduling.
type Insight struct {
	Metric constants.InsightMetric `json:"metric"`
	Value  float64                 `json:"value"`
	Note   string                  `json:"note,omitempty"`
}

// WorkoutSuggestion is a proposed activity session for one day.
type WorkoutSuggestion struct {
	Date      string                `json:"date"`       // YYYY-MM-DD format
	StartTime string                `json:"start_time"` // HH:MM format
	Minutes   int                   `json:"minutes"`
	Kind      constants.WorkoutKind `json:"kind"`
	Label     string                `json:"label"`
}
