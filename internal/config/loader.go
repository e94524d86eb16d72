package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.timeless/config.yaml -> ./configs/timeless.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (TimelessConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "timeless.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTimelessYAML)
	if err != nil {
		return DefaultTimelessConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hard-coded defaults.
func Parse(data []byte) (TimelessConfig, error) {
	cfg := DefaultTimelessConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg TimelessConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func loadFile(path string) (TimelessConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTimelessConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".timeless", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c TimelessConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"view.follow_threshold", c.View.FollowThreshold},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"blocks.tile_width", c.Blocks.TileWidth},
		{"blocks.tile_height", c.Blocks.TileHeight},
		{"blocks.spacing", c.Blocks.Spacing},
		{"spawn.backgrounds.spacing", c.Spawn.Backgrounds.Spacing},
		{"spawn.enemies.spacing", c.Spawn.Enemies.Spacing},
		{"spawn.pickups.spacing", c.Spawn.Pickups.Spacing},
		{"enemy.cooldown", c.Enemy.Cooldown},
		{"enemy.bullet_divisor", c.Enemy.BulletDivisor},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.max_fall_speed", c.Physics.MaxFallSpeed},
		{"slow_motion.duration", c.SlowMotion.Duration},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", p.name, p.value)
		}
	}

	if c.Blocks.InitialCount < 0 {
		return fmt.Errorf("config: blocks.initial_count must not be negative, got %d", c.Blocks.InitialCount)
	}
	if len(c.Blocks.Bands) == 0 {
		return fmt.Errorf("config: blocks.bands must not be empty")
	}
	prev := 0
	for i, b := range c.Blocks.Bands {
		if b.Upper <= prev {
			return fmt.Errorf("config: blocks.bands[%d].upper must increase, got %d after %d", i, b.Upper, prev)
		}
		if !slices.Contains(BlockSpriteNames, b.Sprite) {
			return fmt.Errorf("config: blocks.bands[%d].sprite %q is not one of %v", i, b.Sprite, BlockSpriteNames)
		}
		prev = b.Upper
	}
	if prev != 100 {
		return fmt.Errorf("config: last blocks.bands upper must be 100, got %d", prev)
	}
	if err := c.checkJumpReach(); err != nil {
		return err
	}

	if c.Spawn.WindowMax <= c.Spawn.WindowMin {
		return fmt.Errorf("config: spawn.window_max (%v) must exceed window_min (%v)", c.Spawn.WindowMax, c.Spawn.WindowMin)
	}
	for _, k := range []struct {
		name string
		kind SpawnKind
	}{
		{"backgrounds", c.Spawn.Backgrounds},
		{"enemies", c.Spawn.Enemies},
		{"pickups", c.Spawn.Pickups},
	} {
		if k.kind.MaxY < k.kind.MinY {
			return fmt.Errorf("config: spawn.%s.max_y (%v) is below min_y (%v)", k.name, k.kind.MaxY, k.kind.MinY)
		}
	}

	if c.SlowMotion.Multiplier <= 0 || c.SlowMotion.Multiplier >= 1 {
		return fmt.Errorf("config: slow_motion.multiplier must be in (0, 1), got %v", c.SlowMotion.Multiplier)
	}
	if c.Wall.MaxLag < c.Wall.CatchUpLag {
		return fmt.Errorf("config: wall.max_lag (%v) is below catch_up_lag (%v)", c.Wall.MaxLag, c.Wall.CatchUpLag)
	}
	if c.World.EvictBehind < 0 {
		return fmt.Errorf("config: world.evict_behind must not be negative, got %v", c.World.EvictBehind)
	}
	return nil
}

// nominalFrame is the tick length jump reach is checked at.
const nominalFrame = 1.0 / 60

// checkJumpReach makes sure a player standing on the lowest band can jump
// onto a neighbouring tile of the highest band. The horizontal sensor covers
// the middle half of the body, so its bottom has to rise above the higher
// tile's top.
func (c TimelessConfig) checkJumpReach() error {
	if c.Player.JumpImpulse >= 0 {
		return fmt.Errorf("config: player.jump_impulse must be negative (up), got %v", c.Player.JumpImpulse)
	}

	low, high := c.Blocks.Bands[0].Y, c.Blocks.Bands[0].Y
	for _, b := range c.Blocks.Bands[1:] {
		low = math.Max(low, b.Y)
		high = math.Min(high, b.Y)
	}
	need := low - high - c.Player.Height/4

	// Apex of the per-tick integration: velocity is updated before position.
	v := -c.Player.JumpImpulse
	reach := v*v/(2*c.Physics.Gravity) - v*nominalFrame/2
	if reach < need {
		return fmt.Errorf("config: player.jump_impulse %v rises %.1f units, the band step from y=%v to y=%v needs %.1f",
			c.Player.JumpImpulse, reach, low, high, need)
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *TimelessConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust hazards based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Wall.NormalSpeed *= 0.75
		cfg.Wall.AcceleratedSpeed *= 0.75
		cfg.Enemy.Cooldown *= 1.5
	case DifficultyHard:
		cfg.Wall.NormalSpeed *= 1.25
		cfg.Wall.AcceleratedSpeed *= 1.25
		cfg.Enemy.Cooldown *= 0.75
	}
}
