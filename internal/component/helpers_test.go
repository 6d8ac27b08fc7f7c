package component

import (
	"go-space-survivor/pkg/geom"
	"go-space-survivor/pkg/tilemap"
)

// stubRand returns fixed values so behaviors are deterministic.
type stubRand struct {
	f float64 // Float64 result
}

func (r stubRand) Float64() float64 { return r.f }

// Uniform always returns the lower bound.
func (r stubRand) Uniform(lo, hi float64) float64 { return lo }

type stubNav struct {
	path  []tilemap.Cell
	calls int
}

func (n *stubNav) FindPath(start, goal geom.Vec) []tilemap.Cell {
	n.calls++
	return append([]tilemap.Cell(nil), n.path...)
}

func (n *stubNav) TileSize() float64 { return 32 }
