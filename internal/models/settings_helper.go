package models

import (
	"fmt"

	"github.com/julianstephens/cadence/internal/constants"
)

// DefaultSettings returns settings populated with the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		BufferMinutes:         constants.DefaultBufferMinutes,
		BreakThresholdMinutes: constants.DefaultBreakThresholdMinutes,
		BreakMinutes:          constants.DefaultBreakMinutes,
		Chronotype:            constants.DefaultChronotype,
		Timezone:              constants.DefaultTimezone,
		WeeklyBufferPercent:   constants.DefaultCapacityBufferPercent,
	}
}

// MapToSettings converts stored key-value pairs to Settings. Keys that are
// absent keep their default value, so a stored zero buffer stays zero.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := DefaultSettings()

	for key, value := range data {
		switch key {
		case constants.SettingBufferMinutes:
			if _, err := fmt.Sscanf(value, "%d", &settings.BufferMinutes); err != nil {
				return Settings{}, fmt.Errorf("parsing buffer_minutes: %w", err)
			}
		case constants.SettingBreakThresholdMinutes:
			if _, err := fmt.Sscanf(value, "%d", &settings.BreakThresholdMinutes); err != nil {
				return Settings{}, fmt.Errorf("parsing break_threshold_minutes: %w", err)
			}
		case constants.SettingBreakMinutes:
			if _, err := fmt.Sscanf(value, "%d", &settings.BreakMinutes); err != nil {
				return Settings{}, fmt.Errorf("parsing break_minutes: %w", err)
			}
		case constants.SettingWeeklyBufferPercent:
			if _, err := fmt.Sscanf(value, "%d", &settings.WeeklyBufferPercent); err != nil {
				return Settings{}, fmt.Errorf("parsing weekly_buffer_percent: %w", err)
			}
		case constants.SettingChronotype:
			settings.Chronotype = value
		case constants.SettingTimezone:
			settings.Timezone = value
		}
	}
	return settings, nil
}

// SettingsToMap converts Settings to key-value pairs for storage.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingBufferMinutes:         fmt.Sprintf("%d", settings.BufferMinutes),
		constants.SettingBreakThresholdMinutes: fmt.Sprintf("%d", settings.BreakThresholdMinutes),
		constants.SettingBreakMinutes:          fmt.Sprintf("%d", settings.BreakMinutes),
		constants.SettingWeeklyBufferPercent:   fmt.Sprintf("%d", settings.WeeklyBufferPercent),
		constants.SettingChronotype:            settings.Chronotype,
		constants.SettingTimezone:              settings.Timezone,
	}
}

// ApplyDefaultSettings fills fields that cannot legitimately be empty.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.BreakThresholdMinutes <= 0 {
		settings.BreakThresholdMinutes = constants.DefaultBreakThresholdMinutes
	}
	if settings.BreakMinutes < 0 {
		settings.BreakMinutes = constants.DefaultBreakMinutes
	}
	if settings.BufferMinutes < 0 {
		settings.BufferMinutes = constants.DefaultBufferMinutes
	}
}
