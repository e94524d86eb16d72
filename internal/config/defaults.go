package config

import (
	_ "embed"
)

//go:embed defaults/timeless.yaml
var defaultTimelessYAML []byte

// DefaultTimelessConfig returns the hard-coded default configuration.
// It mirrors defaults/timeless.yaml and is the last fallback of Load.
func DefaultTimelessConfig() TimelessConfig {
	return TimelessConfig{
		View: ViewConfig{
			Width:           640,
			Height:          480,
			FollowThreshold: 320,
		},
		Player: PlayerConfig{
			StartX:           45,
			StartY:           192,
			Width:            64,
			Height:           64,
			BaseSpeed:        300,
			SprintMultiplier: 2,
			JumpImpulse:      -760,
			WallNudge:        60,
			SensorSkin:       1,
		},
		Physics: PhysicsConfig{
			Gravity:      1800,
			MaxFallSpeed: 900,
		},
		Blocks: BlocksConfig{
			TileWidth:    128,
			TileHeight:   128,
			InitialCount: 9,
			InitialY:     320,
			Spacing:      128,
			Bands: []BlockBand{
				{Upper: 60, Y: 320, Sprite: "block_grass"},
				{Upper: 85, Y: 256, Sprite: "block_stone"},
				{Upper: 100, Y: 384, Sprite: "block_dirt"},
			},
		},
		Spawn: SpawnConfig{
			WindowMin:   640,
			WindowMax:   1280,
			Backgrounds: SpawnKind{Spacing: 300, MinY: 0, MaxY: 320, Width: 128, Height: 128},
			Enemies:     SpawnKind{Spacing: 900, MinY: 32, MaxY: 224, Width: 64, Height: 64},
			Pickups:     SpawnKind{Spacing: 1500, MinY: 128, MaxY: 256, Width: 32, Height: 32},
		},
		Enemy: EnemyConfig{
			Cooldown:      600,
			BulletDivisor: 1.5,
			BulletWidth:   16,
			BulletHeight:  16,
			InitialX:      900,
			InitialY:      96,
		},
		Bullet: BulletConfig{
			Speed:  900,
			Width:  16,
			Height: 8,
		},
		SlowMotion: SlowMotionConfig{
			Multiplier: 0.4,
			Duration:   3.0,
			InitialX:   700,
			InitialY:   192,
		},
		Wall: WallConfig{
			NormalSpeed:      240,
			AcceleratedSpeed: 420,
			RetreatSpeed:     120,
			CatchUpLag:       480,
			MaxLag:           960,
			OvertakeMargin:   32,
			StartLag:         400,
			Width:            64,
		},
		World: WorldConfig{
			BackgroundX: 400,
			BackgroundY: 64,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionDistance,
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				WallSpeed:         0.5,
				CooldownReduction: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTimelessYAML
}
