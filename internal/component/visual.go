// internal/component/visual.go
package component

import (
	"image/color"

	"go-space-survivor/pkg/geom"
)

const (
	ParticleLifetime = 20
	ParticleShrink   = 0.95
)

// Particle is a purely visual spark. It drifts, shrinks and dies after Lifetime ticks.
type Particle struct {
	Pos      geom.Vec
	Vel      geom.Vec
	Color    color.RGBA
	Lifetime int
	Size     float64
}

// Update advances the particle one tick and reports whether it is still alive.
func (p *Particle) Update() bool {
	p.Pos = p.Pos.Add(p.Vel)
	p.Lifetime--
	p.Size *= ParticleShrink
	return p.Lifetime > 0
}
