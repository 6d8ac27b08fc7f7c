// internal/component/projectile.go
package component

import (
	"go-space-survivor/internal/config"
	"go-space-survivor/internal/defs"
	"go-space-survivor/pkg/geom"
)

// Bullet представляет летящий снаряд. Owner решает, кого он может ранить.
type Bullet struct {
	Pos    geom.Vec
	Vel    geom.Vec
	Damage int
	Owner  defs.Owner
}

// Advance moves the bullet by one tick of velocity.
func (b *Bullet) Advance() {
	b.Pos = b.Pos.Add(b.Vel)
}

func (b Bullet) Box() geom.Rect {
	return geom.Box(b.Pos, config.BulletBox)
}
