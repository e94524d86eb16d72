// Package config provides YAML-based tuning configuration loading and
// difficulty management for the runner.
package config

// TimelessConfig contains all tuning parameters for the simulation.
// Distances are world units of a 640x480 logical view; speeds are units per second.
type TimelessConfig struct {
	View       ViewConfig       `yaml:"view"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Blocks     BlocksConfig     `yaml:"blocks"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Bullet     BulletConfig     `yaml:"bullet"`
	SlowMotion SlowMotionConfig `yaml:"slow_motion"`
	Wall       WallConfig       `yaml:"wall"`
	World      WorldConfig      `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ViewConfig defines the logical view and camera-follow parameters.
type ViewConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	FollowThreshold float64 `yaml:"follow_threshold"`
}

// PlayerConfig defines the player's box, start state and movement.
type PlayerConfig struct {
	StartX           float64 `yaml:"start_x"`
	StartY           float64 `yaml:"start_y"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	BaseSpeed        float64 `yaml:"base_speed"`
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
	JumpImpulse      float64 `yaml:"jump_impulse"` // Negative = up
	WallNudge        float64 `yaml:"wall_nudge"`   // Push-out speed while blocked
	SensorSkin       float64 `yaml:"sensor_skin"`  // Extra reach of the landing/support sensors
}

// PhysicsConfig defines vertical motion parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// BlocksConfig defines platform tiles and their procedural placement.
type BlocksConfig struct {
	TileWidth    float64     `yaml:"tile_width"`
	TileHeight   float64     `yaml:"tile_height"`
	InitialCount int         `yaml:"initial_count"`
	InitialY     float64     `yaml:"initial_y"`
	Spacing      float64     `yaml:"spacing"` // Distance between block spawns
	Bands        []BlockBand `yaml:"bands"`
}

// BlockSpriteNames lists the asset names a block band may use.
var BlockSpriteNames = []string{"block_grass", "block_stone", "block_dirt"}

// BlockBand maps a slice of the [0,100) roll to a block height.
type BlockBand struct {
	Upper  int     `yaml:"upper"` // Exclusive upper bound of the roll
	Y      float64 `yaml:"y"`
	Sprite string  `yaml:"sprite"`
}

// SpawnConfig defines the forward spawn window and per-kind spawners.
type SpawnConfig struct {
	WindowMin   float64   `yaml:"window_min"` // Offset ahead of traveled distance
	WindowMax   float64   `yaml:"window_max"`
	Backgrounds SpawnKind `yaml:"backgrounds"`
	Enemies     SpawnKind `yaml:"enemies"`
	Pickups     SpawnKind `yaml:"pickups"`
}

// SpawnKind defines spacing, vertical band and box size of one entity kind.
type SpawnKind struct {
	Spacing float64 `yaml:"spacing"`
	MinY    float64 `yaml:"min_y"`
	MaxY    float64 `yaml:"max_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// EnemyConfig defines enemy fire.
type EnemyConfig struct {
	Cooldown      float64 `yaml:"cooldown"`       // Distance between shots
	BulletDivisor float64 `yaml:"bullet_divisor"` // Seconds to reach the aim point
	BulletWidth   float64 `yaml:"bullet_width"`
	BulletHeight  float64 `yaml:"bullet_height"`
	InitialX      float64 `yaml:"initial_x"`
	InitialY      float64 `yaml:"initial_y"`
}

// BulletConfig defines player-fired bullets.
type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SlowMotionConfig defines the pickup time-dilation effect.
type SlowMotionConfig struct {
	Multiplier float64 `yaml:"multiplier"`
	Duration   float64 `yaml:"duration"` // Seconds
	InitialX   float64 `yaml:"initial_x"`
	InitialY   float64 `yaml:"initial_y"`
}

// WallConfig defines the pursuing wall.
type WallConfig struct {
	NormalSpeed      float64 `yaml:"normal_speed"`
	AcceleratedSpeed float64 `yaml:"accelerated_speed"`
	RetreatSpeed     float64 `yaml:"retreat_speed"`
	CatchUpLag       float64 `yaml:"catch_up_lag"` // Lag beyond which the wall accelerates
	MaxLag           float64 `yaml:"max_lag"`      // Lag at which the wall is pinned
	OvertakeMargin   float64 `yaml:"overtake_margin"`
	StartLag         float64 `yaml:"start_lag"`
	Width            float64 `yaml:"width"`
	Lethal           bool    `yaml:"lethal"` // Overtaking resets the run
}

// WorldConfig defines world housekeeping.
type WorldConfig struct {
	EvictBehind float64 `yaml:"evict_behind"` // 0 disables eviction
	BackgroundX float64 `yaml:"background_x"`
	BackgroundY float64 `yaml:"background_y"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "distance" or "none"
	MaxAt float64 `yaml:"max_at"` // Distance at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	WallSpeed         float64 `yaml:"wall_speed"`         // Fraction added to wall speeds at max difficulty
	CooldownReduction float64 `yaml:"cooldown_reduction"` // Fraction removed from enemy cooldown at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
