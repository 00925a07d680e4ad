package models

import "github.com/julianstephens/cadence/internal/constants"

// ScheduledBlock is a placed span of one day. TaskID is nil for synthetic
// blocks such as breaks.
type ScheduledBlock struct {
	TaskID   *string             `json:"task_id"`
	Type     constants.BlockType `json:"type"`
	StartMin int                 `json:"start_min"` // minutes since local midnight
	EndMin   int                 `json:"end_min"`
	Label    string              `json:"label,omitempty"`
}

// Minutes returns the block length
func (b ScheduledBlock) Minutes() int {
	return b.EndMin - b.StartMin
}

// IsTask reports whether the block belongs to a task
func (b ScheduledBlock) IsTask() bool {
	return b.TaskID != nil
}

// Agenda is a generated day of blocks as stored by the host application.
type Agenda struct {
	Date       string           `json:"date"` // YYYY-MM-DD format
	Owner      string           `json:"owner"`
	Revision   int              `json:"revision"`
	Confidence float64          `json:"confidence"`
	Blocks     []ScheduledBlock `json:"blocks"`
	CreatedAt  string           `json:"created_at"` // RFC3339 timestamp
}
