package config

import (
	_ "embed"
)

//go:embed defaults/omegavoid.yaml
var defaultYAML []byte

// Default returns the built-in configuration. Values mirror the embedded
// defaults/omegavoid.yaml and serve as the last-resort fallback when the
// embedded file cannot be parsed.
func Default() Config {
	return Config{
		World: WorldConfig{
			CellSize:           2000,
			ViewBufferFactor:   1.2,
			StationProbability: 0.15,
			StarsMin:           6,
			StarsMax:           16,
			StarSizeMin:        1,
			StarSizeMax:        3,
			StationRadiusMin:   55,
			StationRadiusMax:   90,
			AsteroidDenseProb:  0.06,
			AsteroidSparseProb: 0.18,
			AsteroidSizeMin:    10,
			AsteroidSizeMax:    26,
			AsteroidOrbitMin:   80,
			AsteroidOrbitMax:   420,
		},
		Physics: PhysicsConfig{
			PlayerAccel:    0.35,
			PlayerMaxSpeed: 4.5,
			PlayerDrag:     0.96,
			PlayerRadius:   8,
			EnemySpeed:     2.2,
			EnemyRadius:    7,
		},
		Docking: DockingConfig{
			EntranceHalfAngleDeg: 30,
			CommitDistance:       12,
			PushEpsilon:          0.5,
			DockingDurationMs:    1500,
			UndockingDurationMs:  1500,
			ExitOffset:           25,
		},
		Combat: CombatConfig{
			ProjectileSpeed:    5,
			ProjectileLife:     60,
			ProjectileRadius:   2,
			FireCooldownTicks:  9,
			ShieldMax:          100,
			ShieldDamagePerHit: 10,
			RespawnDelayMs:     3000,
			BurstGraceMs:       500,
		},
		Spawn: SpawnConfig{
			MaxEnemies:         8,
			CapScale:           2.0,
			TechLevelReduction: 0.5,
			SpawnIntervalTicks: 180,
			SpawnRadius:        1600,
			DespawnRadius:      2400,
		},
		Progression: ProgressionConfig{
			WinScore: 100,
		},
	}
}
