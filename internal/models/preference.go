package models

import "github.com/julianstephens/cadence/internal/constants"

// Preference holds per-owner scheduling preferences. The engine never mutates
// a Preference it receives; adjustments return a Clone.
type Preference struct {
	Owner            string                 `json:"owner"`
	AreaWeights      map[constants.Area]int `json:"area_weights,omitempty"` // 0..10
	DeepWorkCapacity int                    `json:"deep_work_capacity"`     // deep blocks per day
	BreakPreference  int                    `json:"break_preference"`       // 0..10
	SleepTargetHours float64                `json:"sleep_target_hours"`

	WeeklyModerateMinutesTarget *int `json:"weekly_moderate_minutes_target,omitempty"`
	WeeklyStrengthDaysTarget    *int `json:"weekly_strength_days_target,omitempty"`
}

// AreaWeight returns the configured weight for an area, or the default weight
// when none is set.
func (p Preference) AreaWeight(area constants.Area) int {
	if w, ok := p.AreaWeights[area]; ok {
		return w
	}
	return constants.DefaultAreaWeight
}

// Clone returns a deep copy of the preference.
func (p Preference) Clone() Preference {
	out := p
	if p.AreaWeights != nil {
		out.AreaWeights = make(map[constants.Area]int, len(p.AreaWeights))
		for k, v := range p.AreaWeights {
			out.AreaWeights[k] = v
		}
	}
	if p.WeeklyModerateMinutesTarget != nil {
		v := *p.WeeklyModerateMinutesTarget
		out.WeeklyModerateMinutesTarget = &v
	}
	if p.WeeklyStrengthDaysTarget != nil {
		v := *p.WeeklyStrengthDaysTarget
		out.WeeklyStrengthDaysTarget = &v
	}
	return out
}

// DefaultPreference returns the preference used when an owner has none stored.
func DefaultPreference(owner string) Preference {
	return Preference{
		Owner:            owner,
		AreaWeights:      map[constants.Area]int{},
		DeepWorkCapacity: constants.DefaultDeepWorkCapacity,
		BreakPreference:  constants.DefaultBreakPreference,
		SleepTargetHours: constants.DefaultSleepTargetHours,
	}
}
