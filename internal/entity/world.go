// internal/entity/world.go
package entity

import (
	"github.com/google/uuid"

	"go-space-survivor/internal/component"
	"go-space-survivor/internal/config"
	"go-space-survivor/internal/utils"
	"go-space-survivor/pkg/geom"
	"go-space-survivor/pkg/tilemap"
)

// World - единственный владелец всего изменяемого состояния симуляции.
// Системы получают его явно и пересобирают коллекции каждый тик.
type World struct {
	Session uuid.UUID
	Tick    uint64
	Cfg     *config.Config
	Rng     *utils.PRNGService

	Map   *tilemap.Map
	Walls []geom.Rect

	Player    *component.Player
	Camera    component.Camera
	Enemies   []*component.Enemy
	Boss      *component.Boss
	Bullets   []component.Bullet
	Particles []component.Particle
	Items     []component.Item
	Chests    []component.Chest
}

// NewWorld creates a world with a freshly generated map and player.
func NewWorld(cfg *config.Config, rng *utils.PRNGService) *World {
	w := &World{Cfg: cfg, Rng: rng}
	w.Reset()
	return w
}

// Reset starts a new session in place: new map, fresh player, empty collections.
// Systems keep their pointer to the same World.
func (w *World) Reset() {
	w.Session = uuid.New()
	w.Tick = 0
	w.Map = tilemap.Generate(w.Rng, w.Cfg.MapWidth, w.Cfg.MapHeight, w.Cfg.TileSize, w.Cfg.WallProbability)
	w.Walls = w.Map.Walls()
	w.Player = component.NewPlayer(w.SpawnPoint())
	w.Camera = component.Camera{}
	w.Camera.Follow(w.Player.Pos, w.Cfg.ScreenWidth, w.Cfg.ScreenHeight)
	w.Enemies = nil
	w.Boss = nil
	w.Bullets = nil
	w.Particles = nil
	w.Items = nil
	w.Chests = nil
}

// SpawnPoint is the middle of the center cell, which the generator keeps open.
func (w *World) SpawnPoint() geom.Vec {
	return tilemap.CellCenter(w.Map.Center(), w.Map.TileSize)
}

// FindPath plans a path over the current walls.
func (w *World) FindPath(start, goal geom.Vec) []tilemap.Cell {
	return tilemap.FindPath(start, goal, w.Walls, w.Map.Bounds())
}

func (w *World) TileSize() float64 {
	return w.Map.TileSize
}

// Blocked reports whether a size×size box centered at c touches a wall.
func (w *World) Blocked(c geom.Vec, size float64) bool {
	return geom.Box(c, size).IntersectsAny(w.Walls)
}

// RandomTileCenter picks the center of a uniformly random cell.
func (w *World) RandomTileCenter() geom.Vec {
	c := tilemap.Cell{X: w.Rng.Intn(w.Map.Width), Y: w.Rng.Intn(w.Map.Height)}
	return tilemap.CellCenter(c, w.Map.TileSize)
}

// InPlayArea reports whether p is within the map extended by one screen width
// on every side. Bullets outside it are discarded.
func (w *World) InPlayArea(p geom.Vec) bool {
	mw, mh := w.Map.PixelSize()
	margin := float64(w.Cfg.ScreenWidth)
	return p.X >= -margin && p.X <= mw+margin && p.Y >= -margin && p.Y <= mh+margin
}
