// internal/ui/minimap.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-survivor/internal/app"
	"go-space-survivor/internal/config"
	"go-space-survivor/pkg/geom"
	"go-space-survivor/pkg/tilemap"
)

const markerSize = 4

// Minimap - уменьшенная карта в правом нижнем углу. Стены рисуются один раз
// на каждую новую карту, метки сущностей каждый кадр.
type Minimap struct {
	X, Y    float32
	Size    int
	tilemap *tilemap.Map
	walls   *ebiten.Image
}

func NewMinimap(screenWidth, screenHeight int) *Minimap {
	size := config.MinimapSize
	return &Minimap{
		X:    float32(screenWidth - size - panelMargin),
		Y:    float32(screenHeight - size - panelMargin),
		Size: size,
	}
}

func (m *Minimap) render(tm *tilemap.Map) {
	if m.walls == nil {
		m.walls = ebiten.NewImage(m.Size, m.Size)
	}
	m.walls.Fill(color.Black)
	scale := MinimapScale(tm, m.Size)
	cell := float32(tm.TileSize * scale)
	for y := 0; y < tm.Height; y++ {
		for x := 0; x < tm.Width; x++ {
			if tm.IsWall(tilemap.Cell{X: x, Y: y}) {
				vector.DrawFilledRect(m.walls, float32(x)*cell, float32(y)*cell, cell, cell, config.WallColor, false)
			}
		}
	}
	m.tilemap = tm
}

func (m *Minimap) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	if snap.Map == nil {
		return
	}
	if snap.Map != m.tilemap {
		m.render(snap.Map)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(m.X), float64(m.Y))
	screen.DrawImage(m.walls, op)

	scale := MinimapScale(snap.Map, m.Size)
	m.marker(screen, snap.Player.Pos, scale, config.PlayerColor)
	for _, e := range snap.Enemies {
		m.marker(screen, e.Pos, scale, config.DroneColor)
	}
	for _, c := range snap.Chests {
		m.marker(screen, c.Pos, scale, config.ChestColor)
	}
	if snap.Boss != nil {
		m.marker(screen, snap.Boss.Pos, scale, config.BossColor)
	}
	vector.StrokeRect(screen, m.X, m.Y, float32(m.Size), float32(m.Size), borderWidth, borderColor, false)
}

func (m *Minimap) marker(screen *ebiten.Image, pos geom.Vec, scale float64, clr color.RGBA) {
	p := MinimapPoint(pos, scale)
	vector.DrawFilledRect(screen, m.X+float32(p.X)-markerSize/2, m.Y+float32(p.Y)-markerSize/2, markerSize, markerSize, clr, false)
}

// MinimapScale maps the larger map side onto size pixels.
func MinimapScale(tm *tilemap.Map, size int) float64 {
	w, h := tm.PixelSize()
	return float64(size) / max(w, h)
}

// MinimapPoint converts a world position to minimap pixels.
func MinimapPoint(pos geom.Vec, scale float64) geom.Vec {
	return pos.Scale(scale)
}
