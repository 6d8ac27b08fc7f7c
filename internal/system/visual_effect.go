// internal/system/visual_effect.go
package system

import (
	"go-space-survivor/internal/component"
	"go-space-survivor/internal/entity"
)

// VisualEffectSystem управляет частицами взрывов.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

// Update двигает частицы и отбрасывает догоревшие.
func (s *VisualEffectSystem) Update() {
	alive := make([]component.Particle, 0, len(s.world.Particles))
	for _, p := range s.world.Particles {
		if p.Update() {
			alive = append(alive, p)
		}
	}
	s.world.Particles = alive
}
