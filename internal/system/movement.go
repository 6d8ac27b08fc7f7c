// internal/system/movement.go
package system

import (
	"go-space-survivor/internal/component"
	"go-space-survivor/internal/entity"
)

// MovementSystem двигает игрока со скольжением вдоль стен и ведёт камеру.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update applies one tick of player movement.
func (s *MovementSystem) Update(intent component.MoveIntent) {
	s.world.Player.Move(intent, s.world.Walls)
}

// FollowCamera recenters the camera on the player.
func (s *MovementSystem) FollowCamera() {
	w := s.world
	w.Camera.Follow(w.Player.Pos, w.Cfg.ScreenWidth, w.Cfg.ScreenHeight)
}
