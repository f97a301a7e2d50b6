// Package entity holds the frame-updated simulation entities. Entities are
// a tagged-variant family rather than a class hierarchy: each variant is a
// plain struct with its own Update, and callers dispatch on Kind when they
// iterate mixed lists.
package entity

import (
	"github.com/alexkorep-games/omega-void-sub000/internal/core"
)

// Kind tags an entity variant.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
)

// Player is the player's ship. Shield is clamped to [0, ShieldMax] by the
// collision resolver, not here.
type Player struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Angle     float64 // facing, radians
	Radius    float64
	Shield    float64
	ShieldMax float64
}

// Update integrates the player's position. dt is in simulation ticks.
func (p *Player) Update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

// Enemy is a hostile ship steering toward the player.
type Enemy struct {
	ID     int64
	Pos    core.Vec2
	Vel    core.Vec2
	Angle  float64
	Radius float64
}

// Update integrates the enemy's position and keeps its facing aligned with
// its velocity.
func (e *Enemy) Update(dt float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	if e.Vel.Len2() > 0 {
		e.Angle = e.Vel.Angle()
	}
}

// Projectile is a fired shot with a tick-counted lifetime.
type Projectile struct {
	ID     int64
	Pos    core.Vec2
	Vel    core.Vec2 // units per tick
	Radius float64
	Life   int // remaining updates before expiry
}

// Update integrates the projectile's position and decrements its life by
// exactly one, regardless of dt.
func (pr *Projectile) Update(dt float64) {
	pr.Pos = pr.Pos.Add(pr.Vel.Scale(dt))
	pr.Life--
}

// Expired reports whether the projectile's lifetime has run out.
func (pr *Projectile) Expired() bool {
	return pr.Life <= 0
}

// NewProjectile spawns a projectile at pos heading along angle.
func NewProjectile(id int64, pos core.Vec2, angle, speed, radius float64, life int) Projectile {
	return Projectile{
		ID:     id,
		Pos:    pos,
		Vel:    core.FromAngle(angle).Scale(speed),
		Radius: radius,
		Life:   life,
	}
}

// NewEnemy spawns an enemy at pos with the given collision radius.
func NewEnemy(id int64, pos core.Vec2, radius float64) Enemy {
	return Enemy{ID: id, Pos: pos, Radius: radius}
}
