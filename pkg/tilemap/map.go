// pkg/tilemap/map.go
package tilemap

import (
	"math"

	"go-space-survivor/pkg/geom"
)

// Tile is the kind of a map cell.
type Tile uint8

const (
	Open Tile = iota
	Wall
)

// Cell is an integer (column, row) grid coordinate.
type Cell struct {
	X, Y int
}

// Rand is the subset of a random source the generator needs.
type Rand interface {
	Float64() float64
}

// Map is a rectangular tile grid. Tiles are stored row-major: Tiles[y][x].
type Map struct {
	Width    int
	Height   int
	TileSize float64
	Tiles    [][]Tile
}

// Generate builds a width×height map where every cell is independently a wall
// with probability wallChance. The center cell is always open so the player
// has somewhere to spawn.
func Generate(rng Rand, width, height int, tileSize, wallChance float64) *Map {
	m := &Map{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    make([][]Tile, height),
	}
	for y := 0; y < height; y++ {
		m.Tiles[y] = make([]Tile, width)
		for x := 0; x < width; x++ {
			if rng.Float64() < wallChance {
				m.Tiles[y][x] = Wall
			}
		}
	}
	c := m.Center()
	m.Tiles[c.Y][c.X] = Open
	return m
}

// Center returns the middle cell of the map.
func (m *Map) Center() Cell {
	return Cell{X: m.Width / 2, Y: m.Height / 2}
}

// InBounds reports whether c lies inside the grid.
func (m *Map) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.Width && c.Y >= 0 && c.Y < m.Height
}

// IsWall reports whether c is a wall. Cells outside the grid are open.
func (m *Map) IsWall(c Cell) bool {
	return m.InBounds(c) && m.Tiles[c.Y][c.X] == Wall
}

// Walls returns one tile-sized rectangle per wall cell, in row-major order.
// Callers cache the result until the map is regenerated.
func (m *Map) Walls() []geom.Rect {
	var walls []geom.Rect
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == Wall {
				walls = append(walls, CellRect(Cell{x, y}, m.TileSize))
			}
		}
	}
	return walls
}

// Bounds describes the grid for the pathfinder.
func (m *Map) Bounds() Bounds {
	return Bounds{Width: m.Width, Height: m.Height, TileSize: m.TileSize}
}

// PixelSize returns the map extent in world units.
func (m *Map) PixelSize() (float64, float64) {
	return float64(m.Width) * m.TileSize, float64(m.Height) * m.TileSize
}

// CellOf converts a world position to the cell containing it.
func CellOf(p geom.Vec, tileSize float64) Cell {
	return Cell{X: int(math.Floor(p.X / tileSize)), Y: int(math.Floor(p.Y / tileSize))}
}

// CellRect returns the world rectangle covered by c.
func CellRect(c Cell, tileSize float64) geom.Rect {
	return geom.Rect{X: float64(c.X) * tileSize, Y: float64(c.Y) * tileSize, W: tileSize, H: tileSize}
}

// CellCenter returns the world position of the middle of c.
func CellCenter(c Cell, tileSize float64) geom.Vec {
	return geom.Vec{X: float64(c.X)*tileSize + tileSize/2, Y: float64(c.Y)*tileSize + tileSize/2}
}
