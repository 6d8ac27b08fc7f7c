// pkg/render/world_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-survivor/internal/app"
	"go-space-survivor/internal/component"
	"go-space-survivor/internal/config"
	"go-space-survivor/internal/defs"
	"go-space-survivor/pkg/geom"
	"go-space-survivor/pkg/tilemap"
)

const (
	entityBarHeight = 4
	entityBarGap    = 6
)

// WorldRenderer рисует карту и всё, что на ней находится, со смещением камеры.
type WorldRenderer struct {
	colors       MapColors
	bars         HealthBarColors
	screenWidth  int
	screenHeight int
	tilemap      *tilemap.Map
	mapImage     *ebiten.Image // предрендеренная карта
}

func NewWorldRenderer(screenWidth, screenHeight int) *WorldRenderer {
	return &WorldRenderer{
		colors: MapColors{
			BackgroundColor: config.BackgroundColor,
			FloorColor:      config.FloorColor,
			WallColor:       config.WallColor,
			GridColor:       color.RGBA{20, 20, 20, 255},
			StrokeWidth:     1,
		},
		bars:         HealthBarColors{Back: config.HealthBarBack, Front: config.HealthBarFront},
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// RenderMapImage создаёт предрендеренное изображение карты. Вызывается
// заново, только когда мир сгенерировал новую карту.
func (r *WorldRenderer) RenderMapImage(m *tilemap.Map) {
	w, h := m.PixelSize()
	if r.mapImage != nil {
		r.mapImage.Deallocate()
	}
	r.mapImage = ebiten.NewImage(int(w), int(h))
	r.mapImage.Fill(r.colors.FloorColor)

	ts := float32(m.TileSize)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := tilemap.Cell{X: x, Y: y}
			px, py := float32(x)*ts, float32(y)*ts
			if m.IsWall(c) {
				vector.DrawFilledRect(r.mapImage, px, py, ts, ts, r.colors.WallColor, false)
				vector.StrokeRect(r.mapImage, px, py, ts, ts, r.colors.StrokeWidth, DarkenColor(r.colors.WallColor), false)
				continue
			}
			vector.StrokeRect(r.mapImage, px, py, ts, ts, r.colors.StrokeWidth, r.colors.GridColor, false)
		}
	}
	r.tilemap = m
}

// Draw рисует кадр мира. HUD и меню рисуются поверх пакетом ui.
func (r *WorldRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	screen.Fill(r.colors.BackgroundColor)
	if snap.Map == nil {
		return
	}
	if snap.Map != r.tilemap {
		r.RenderMapImage(snap.Map)
	}
	cam := snap.Camera

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-cam.Offset.X, -cam.Offset.Y)
	screen.DrawImage(r.mapImage, op)

	for _, it := range snap.Items {
		clr := config.ItemColor
		if it.Type == defs.ItemHealth || it.Type == defs.ItemTempHealth {
			clr = config.HealthItemColor
		}
		r.drawBox(screen, cam, it.Box(), clr)
	}
	for _, c := range snap.Chests {
		r.drawBox(screen, cam, c.Box(), config.ChestColor)
	}
	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		clr := config.DroneColor
		if e.Kind == defs.KindTank {
			clr = config.TankColor
		}
		if r.drawBox(screen, cam, e.Box(), clr) {
			r.drawHealthBar(screen, cam, e.Box(), e.Health, e.MaxHealth)
		}
	}
	if b := snap.Boss; b != nil {
		if r.drawBox(screen, cam, b.Box(), config.BossColor) {
			r.drawHealthBar(screen, cam, b.Box(), b.Health, b.MaxHealth)
		}
	}
	r.drawBox(screen, cam, snap.Player.Box(), config.PlayerColor)

	for _, b := range snap.Bullets {
		r.drawBox(screen, cam, b.Box(), config.BulletColor)
	}
	for _, p := range snap.Particles {
		s := cam.ToScreen(p.Pos)
		alpha := float64(p.Lifetime) / component.ParticleLifetime
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(p.Size), FadeColor(p.Color, alpha), true)
	}
}

// DrawAimLine рисует линию прицела от игрока к курсору фиксированной длины.
func (r *WorldRenderer) DrawAimLine(screen *ebiten.Image, snap *app.Snapshot, cursor geom.Vec) {
	from, to := AimLine(snap.Player.Pos, cursor, config.AimLineLength)
	a, b := snap.Camera.ToScreen(from), snap.Camera.ToScreen(to)
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, config.PlayerColor, true)
}

// drawBox рисует прямоугольник, если он попадает на экран.
func (r *WorldRenderer) drawBox(screen *ebiten.Image, cam component.Camera, box geom.Rect, clr color.RGBA) bool {
	if !OnScreen(box, cam, r.screenWidth, r.screenHeight) {
		return false
	}
	s := cam.ToScreen(geom.Vec{X: box.X, Y: box.Y})
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(box.W), float32(box.H), clr, false)
	return true
}

func (r *WorldRenderer) drawHealthBar(screen *ebiten.Image, cam component.Camera, box geom.Rect, health, maxHealth int) {
	s := cam.ToScreen(geom.Vec{X: box.X, Y: box.Y - entityBarGap})
	x, y, w := float32(s.X), float32(s.Y), float32(box.W)
	vector.DrawFilledRect(screen, x, y, w, entityBarHeight, r.bars.Back, false)
	vector.DrawFilledRect(screen, x, y, w*float32(HealthRatio(health, maxHealth)), entityBarHeight, r.bars.Front, false)
}

// HealthRatio returns health/maxHealth clamped to [0, 1].
func HealthRatio(health, maxHealth int) float64 {
	if maxHealth <= 0 || health <= 0 {
		return 0
	}
	if health >= maxHealth {
		return 1
	}
	return float64(health) / float64(maxHealth)
}

// OnScreen reports whether box, in world space, is at least partly visible.
func OnScreen(box geom.Rect, cam component.Camera, screenWidth, screenHeight int) bool {
	view := geom.Rect{X: cam.Offset.X, Y: cam.Offset.Y, W: float64(screenWidth), H: float64(screenHeight)}
	return view.Intersects(box)
}

// AimLine returns a segment of the given length from pos toward target.
// When target coincides with pos the segment points right.
func AimLine(pos, target geom.Vec, length float64) (geom.Vec, geom.Vec) {
	angle := 0.0
	if target != pos {
		angle = geom.Angle(pos, target)
	}
	return pos, pos.Add(geom.FromAngle(angle, length))
}
