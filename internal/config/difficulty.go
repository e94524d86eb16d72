package config

import "math"

// ProgressionDistance ramps difficulty with traveled distance.
const ProgressionDistance = "distance"

// DifficultyManager turns traveled distance into a difficulty level and
// scales hazard tuning by it. The zero level leaves tuning unchanged.
type DifficultyManager struct {
	enabled   bool
	ramp      bool
	start     float64
	maxAt     float64
	wallBoost float64
	cooldown  float64
}

// maxCooldownCut caps the share of an enemy cooldown difficulty can remove.
const maxCooldownCut = 0.9

// NewDifficultyManager creates a manager for the given settings.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		enabled:   cfg.Enabled,
		ramp:      cfg.Progression.Type == ProgressionDistance && cfg.Progression.MaxAt > 0,
		start:     unit(cfg.InitialLevel),
		maxAt:     cfg.Progression.MaxAt,
		wallBoost: cfg.Scaling.WallSpeed,
		cooldown:  cfg.Scaling.CooldownReduction,
	}
}

// Level returns the difficulty in [0, 1] at a traveled distance. It starts at
// the initial level and reaches 1 at progression.max_at.
func (d *DifficultyManager) Level(distance float64) float64 {
	switch {
	case !d.enabled:
		return 0
	case !d.ramp:
		return d.start
	}
	return d.start + unit(distance/d.maxAt)*(1-d.start)
}

// WallSpeed scales a wall speed up by the level.
func (d *DifficultyManager) WallSpeed(base, distance float64) float64 {
	return base * (1 + d.Level(distance)*d.wallBoost)
}

// Cooldown shortens an enemy cooldown by the level, by at most 90%.
func (d *DifficultyManager) Cooldown(base, distance float64) float64 {
	cut := math.Min(d.Level(distance)*d.cooldown, maxCooldownCut)
	return base * (1 - math.Max(cut, 0))
}

// unit clamps v to [0, 1].
func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
