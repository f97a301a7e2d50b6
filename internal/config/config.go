// Package config provides YAML-based configuration loading for the
// simulation: world generation parameters, flight physics, docking rules,
// combat tuning and transition timings.
package config

// Config contains all tunables for the simulation core.
type Config struct {
	World       WorldConfig       `yaml:"world"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Docking     DockingConfig     `yaml:"docking"`
	Combat      CombatConfig      `yaml:"combat"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Progression ProgressionConfig `yaml:"progression"`
}

// WorldConfig defines procedural generation parameters.
// Changing these on an existing save breaks station identity: cell contents
// are a pure function of (cell coordinates, seed, these values).
type WorldConfig struct {
	CellSize           float64 `yaml:"cell_size"`            // side of a generation cell in world units
	ViewBufferFactor   float64 `yaml:"view_buffer_factor"`   // viewport expansion for object queries
	StationProbability float64 `yaml:"station_probability"`  // Bernoulli trial per cell
	StarsMin           int     `yaml:"stars_min"`            // stars per cell, inclusive
	StarsMax           int     `yaml:"stars_max"`            // stars per cell, inclusive
	StarSizeMin        float64 `yaml:"star_size_min"`
	StarSizeMax        float64 `yaml:"star_size_max"`
	StationRadiusMin   float64 `yaml:"station_radius_min"`
	StationRadiusMax   float64 `yaml:"station_radius_max"`
	AsteroidDenseProb  float64 `yaml:"asteroid_dense_prob"`  // dense cluster regime roll
	AsteroidSparseProb float64 `yaml:"asteroid_sparse_prob"` // sparse cluster regime roll
	AsteroidSizeMin    float64 `yaml:"asteroid_size_min"`
	AsteroidSizeMax    float64 `yaml:"asteroid_size_max"`
	AsteroidOrbitMin   float64 `yaml:"asteroid_orbit_min"`
	AsteroidOrbitMax   float64 `yaml:"asteroid_orbit_max"`
}

// PhysicsConfig defines flight integration parameters.
// Speeds and accelerations are in world units per simulation tick.
type PhysicsConfig struct {
	PlayerAccel    float64 `yaml:"player_accel"`
	PlayerMaxSpeed float64 `yaml:"player_max_speed"`
	PlayerDrag     float64 `yaml:"player_drag"` // velocity fraction retained per tick without thrust
	PlayerRadius   float64 `yaml:"player_radius"`
	EnemySpeed     float64 `yaml:"enemy_speed"`
	EnemyRadius    float64 `yaml:"enemy_radius"`
}

// DockingConfig defines how and when docking triggers, plus transition
// animation timings.
type DockingConfig struct {
	// EntranceHalfAngleDeg is half the docking arc: approach is accepted when
	// the player's bearing relative to the station's rotated front is within
	// this many degrees on either side.
	EntranceHalfAngleDeg float64 `yaml:"entrance_half_angle_deg"`
	CommitDistance       float64 `yaml:"commit_distance"` // extra reach beyond radius sum
	PushEpsilon          float64 `yaml:"push_epsilon"`    // pushback overlap margin
	DockingDurationMs    float64 `yaml:"docking_duration_ms"`
	UndockingDurationMs  float64 `yaml:"undocking_duration_ms"`
	ExitOffset           float64 `yaml:"exit_offset"` // distance outside the hull after undock
}

// CombatConfig defines projectiles, damage and destruction timings.
type CombatConfig struct {
	ProjectileSpeed    float64 `yaml:"projectile_speed"` // units per tick
	ProjectileLife     int     `yaml:"projectile_life"`  // ticks
	ProjectileRadius   float64 `yaml:"projectile_radius"`
	FireCooldownTicks  int     `yaml:"fire_cooldown_ticks"`
	ShieldMax          float64 `yaml:"shield_max"`
	ShieldDamagePerHit float64 `yaml:"shield_damage_per_hit"`
	RespawnDelayMs     float64 `yaml:"respawn_delay_ms"`
	BurstGraceMs       float64 `yaml:"burst_grace_ms"` // burst data kept this long after it finishes
}

// SpawnConfig defines enemy spawn and despawn behavior. The cap is dynamic:
// it grows with the log of carried cargo value and shrinks with the nav
// destination's tech level.
type SpawnConfig struct {
	MaxEnemies         int     `yaml:"max_enemies"`    // hard ceiling on the dynamic cap
	CapScale           float64 `yaml:"cap_scale"`      // multiplier on log10(cargo value)
	TechLevelReduction float64 `yaml:"tech_reduction"` // cap reduction per destination tech level
	SpawnIntervalTicks int     `yaml:"spawn_interval_ticks"`
	SpawnRadius        float64 `yaml:"spawn_radius"`   // enemies appear at this distance from the player
	DespawnRadius      float64 `yaml:"despawn_radius"` // and are culled beyond this one
}

// ProgressionConfig defines the victory condition.
type ProgressionConfig struct {
	// WinScore is the externally supplied completion score at which the
	// simulation enters the terminal won state.
	WinScore int `yaml:"win_score"`
}
