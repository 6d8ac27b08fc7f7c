// internal/component/movement.go
package component

import (
	"go-space-survivor/internal/defs"
	"go-space-survivor/pkg/geom"
	"go-space-survivor/pkg/tilemap"
)

// Navigator plans short paths over the current map.
type Navigator interface {
	FindPath(start, goal geom.Vec) []tilemap.Cell
	TileSize() float64
}

// PathFollower - кэшированный путь A* и таймер его пересчёта.
type PathFollower struct {
	Path      []tilemap.Cell
	PathTimer int
}

// follow пересчитывает путь (если он пуст или устарел, и только с вероятностью
// chance, чтобы пересчёты разных врагов не совпадали по тикам), затем делает
// шаг к центру следующей клетки. Возвращает false, если пути нет.
func (f *PathFollower) follow(pos *geom.Vec, speed float64, target geom.Vec, nav Navigator, rng Rand, chance float64, cooldown int) bool {
	f.PathTimer--
	if (len(f.Path) == 0 || f.PathTimer <= 0) && rng.Float64() < chance {
		f.Path = nav.FindPath(*pos, target)
		f.PathTimer = cooldown
	}
	if len(f.Path) == 0 {
		return false
	}

	next := tilemap.CellCenter(f.Path[0], nav.TileSize())
	delta := next.Sub(*pos)
	dist := delta.Len()
	if dist > defs.WaypointReached {
		*pos = pos.Add(delta.Scale(speed / dist))
	} else {
		f.Path = f.Path[1:]
	}
	return true
}

// Camera follows the player with a plain offset: no smoothing, no clamping to the map.
type Camera struct {
	Offset geom.Vec
}

// Follow centers the view of a screenW×screenH screen on target.
func (c *Camera) Follow(target geom.Vec, screenW, screenH int) {
	c.Offset = geom.V(target.X-float64(screenW/2), target.Y-float64(screenH/2))
}

// ToScreen converts a world position to screen coordinates.
func (c Camera) ToScreen(p geom.Vec) geom.Vec {
	return p.Sub(c.Offset)
}

// ToWorld converts a screen position (e.g. the cursor) to world coordinates.
func (c Camera) ToWorld(p geom.Vec) geom.Vec {
	return p.Add(c.Offset)
}
