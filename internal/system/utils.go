// internal/system/utils.go
package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"go-space-survivor/internal/component"
	"go-space-survivor/internal/config"
	"go-space-survivor/internal/entity"
	"go-space-survivor/internal/event"
	"go-space-survivor/pkg/geom"
	"go-space-survivor/pkg/logger"
)

const (
	ExplosionParticles = 10
	explosionMaxSpeed  = 4.0
	explosionMinSize   = 2.0
	explosionMaxSize   = 4.0
)

// Explode добавляет в мир вспышку из ExplosionParticles частиц и шлёт событие Explosion.
func Explode(w *entity.World, d *event.Dispatcher, pos geom.Vec) {
	for i := 0; i < ExplosionParticles; i++ {
		angle := w.Rng.Float64() * 2 * math.Pi
		speed := w.Rng.Float64() * explosionMaxSpeed
		w.Particles = append(w.Particles, component.Particle{
			Pos:      pos,
			Vel:      geom.FromAngle(angle, speed),
			Color:    config.ExplosionColors[w.Rng.Intn(len(config.ExplosionColors))],
			Lifetime: component.ParticleLifetime,
			Size:     w.Rng.Uniform(explosionMinSize, explosionMaxSize),
		})
	}
	d.Emit(event.Explosion, event.ExplosionData{Pos: pos})
}

// logFields returns the fields every system log line carries.
func logFields(w *entity.World, name string) logrus.Fields {
	return logrus.Fields{
		"component": name,
		"session":   w.Session.String(),
		"tick":      w.Tick,
	}
}

func logEntry(w *entity.World, name string) *logrus.Entry {
	return logger.Log.WithFields(logFields(w, name))
}
