package models

import (
	"time"

	"github.com/julianstephens/cadence/internal/constants"
)

// Constraint is a hard time span that may cross midnight.
type Constraint struct {
	ID    string                   `json:"id"`
	Owner string                   `json:"owner"`
	Kind  constants.ConstraintKind `json:"kind"`
	Start time.Time                `json:"start"`
	End   time.Time                `json:"end"`
	Label string                   `json:"label,omitempty"`
}

// Duration returns the length of the constraint span
func (c Constraint) Duration() time.Duration {
	return c.End.Sub(c.Start)
}
