package constants

// ConstraintKind represents the kind of a hard time constraint
type ConstraintKind string

// Area represents one of the fixed life areas a task belongs to
type Area string

// EnergyType represents how focus-intensive a task is
type EnergyType string

// BlockType represents the kind of a scheduled block
type BlockType string

// Chronotype represents a circadian preference
type Chronotype string

// ThrottleReason explains which rule produced a throttle factor
type ThrottleReason string

// InsightMetric names the metric an insight reports
type InsightMetric string

// WorkoutKind represents the kind of suggested workout session
type WorkoutKind string

const (
	AppName            = "cadence"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/cadence/cadence.db"
	DefaultOwner       = "me"
	Version            = "v0.3.0"

	// EnvConnection overrides the --config flag when set
	EnvConnection = "CADENCE_DB_CONNECTION"
	// KeyringConfigValue tells the CLI to read the connection string from the OS keyring
	KeyringConfigValue = "keyring"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "cadence-"
	BackupFileSuffix = ".db"

	// Constraint kinds
	ConstraintSleep   ConstraintKind = "sleep"
	ConstraintFixed   ConstraintKind = "fixed"
	ConstraintCommute ConstraintKind = "commute"
	ConstraintNoGo    ConstraintKind = "no-go"

	// Areas
	AreaWork     Area = "work"
	AreaHealth   Area = "health"
	AreaSocial   Area = "social"
	AreaLearning Area = "learning"
	AreaAdmin    Area = "admin"
	AreaCreative Area = "creative"
	AreaRecovery Area = "recovery"

	// Energy types
	EnergyDeep    EnergyType = "deep"
	EnergyShallow EnergyType = "shallow"

	// Block types
	BlockDeep    BlockType = "deep"
	BlockShallow BlockType = "shallow"
	BlockBreak   BlockType = "break"
	BlockSleep   BlockType = "sleep"
	BlockCommute BlockType = "commute"
	BlockWorkout BlockType = "workout"
	BlockMeal    BlockType = "meal"
	BlockBuffer  BlockType = "buffer"

	// Chronotypes
	ChronotypeEarly        Chronotype = "early"
	ChronotypeIntermediate Chronotype = "intermediate"
	ChronotypeLate         Chronotype = "late"

	// Throttle reasons
	ThrottleOK             ThrottleReason = "ok"
	ThrottleLowMood        ThrottleReason = "low_mood"
	ThrottleDecliningTrend ThrottleReason = "declining_trend"
	ThrottleLowEnergy      ThrottleReason = "low_energy"

	// Insight metrics
	MetricAvgMood    InsightMetric = "avg_mood"
	MetricAvgEnergy  InsightMetric = "avg_energy"
	MetricMoodTrend  InsightMetric = "mood_trend"
	MetricSuggestion InsightMetric = "suggestion"

	// Workout kinds
	WorkoutModerate WorkoutKind = "moderate"
	WorkoutStrength WorkoutKind = "strength"
)

// Areas lists every area in display order.
var Areas = []Area{AreaWork, AreaHealth, AreaSocial, AreaLearning, AreaAdmin, AreaCreative, AreaRecovery}

// IsValidArea reports whether a is one of the fixed areas.
func IsValidArea(a Area) bool {
	for _, known := range Areas {
		if a == known {
			return true
		}
	}
	return false
}

// IsBlockingConstraint reports whether constraints of kind k remove time from the day.
func IsBlockingConstraint(k ConstraintKind) bool {
	switch k {
	case ConstraintSleep, ConstraintFixed, ConstraintCommute, ConstraintNoGo:
		return true
	default:
		return false
	}
}
