// internal/ui/menus.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-survivor/internal/app"
	"go-space-survivor/internal/config"
)

const (
	optionSpacing = 30
	menuWidth     = 320
)

var overlayColor = color.RGBA{0, 0, 0, 200}

var titleLines = []string{
	"You are the last survivor on a derelict space station.",
	"Fight enemies, collect resources, and defeat the Core.",
	"",
	"WASD: Move | Mouse: Aim/Shoot | E: Items | Q: Chests",
	"1-9/Scroll: Switch Weapon | ESC: Pause",
}

// MenuRenderer рисует экраны режимов поверх кадра мира.
type MenuRenderer struct {
	screenWidth  int
	screenHeight int
}

func NewMenuRenderer(screenWidth, screenHeight int) *MenuRenderer {
	return &MenuRenderer{screenWidth: screenWidth, screenHeight: screenHeight}
}

func (r *MenuRenderer) DrawTitle(screen *ebiten.Image) {
	screen.Fill(color.Black)
	cx := r.screenWidth / 2
	drawCentered(screen, "SPACE SURVIVOR", cx, 100, config.HighlightColor)
	for i, l := range titleLines {
		drawCentered(screen, l, cx, 200+i*lineHeight*2, config.TextLightColor)
	}
	drawCentered(screen, "Press SPACE to start", cx, 400, config.TextLightColor)
}

func (r *MenuRenderer) DrawPause(screen *ebiten.Image, snap *app.Snapshot) {
	r.drawOptions(screen, "Paused", snap.PauseOptions, snap.PauseCursor)
}

func (r *MenuRenderer) DrawUpgrade(screen *ebiten.Image, snap *app.Snapshot) {
	r.drawOptions(screen, "Choose an Upgrade", snap.UpgradeOptions, snap.UpgradeCursor)
}

func (r *MenuRenderer) DrawGameOver(screen *ebiten.Image, snap *app.Snapshot) {
	lines := GameOverLines(snap)
	h := float32((len(lines)+2)*lineHeight*2)
	x := float32(r.screenWidth-menuWidth) / 2
	y := float32(r.screenHeight)/2 - h/2
	vector.DrawFilledRect(screen, 0, 0, float32(r.screenWidth), float32(r.screenHeight), overlayColor, false)
	drawPanel(screen, x, y, menuWidth, h)
	cx := r.screenWidth / 2
	for i, l := range lines {
		clr := config.TextLightColor
		if i == 0 {
			clr = config.HighlightColor
		}
		drawCentered(screen, l, cx, int(y)+lineHeight+i*lineHeight*2, clr)
	}
}

func (r *MenuRenderer) drawOptions(screen *ebiten.Image, title string, options []string, cursor int) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.screenWidth), float32(r.screenHeight), overlayColor, false)
	cx := r.screenWidth / 2
	y := r.screenHeight/2 - (len(options)*optionSpacing)/2
	drawCentered(screen, title, cx, y-2*optionSpacing, config.TextLightColor)
	for i, opt := range options {
		label := opt
		clr := config.TextLightColor
		if i == cursor {
			label = "> " + opt + " <"
			clr = config.HighlightColor
		}
		drawCentered(screen, label, cx, y+i*optionSpacing, clr)
	}
	drawCentered(screen, "Use UP/DOWN to select, ENTER to confirm", cx, y+len(options)*optionSpacing+optionSpacing, config.TextLightColor)
}

// GameOverLines - итоги сессии для экрана поражения.
func GameOverLines(snap *app.Snapshot) []string {
	s := snap.Stats
	return []string{
		"Game Over! Press R to Restart",
		fmt.Sprintf("Level reached: %d", snap.Player.Level),
		fmt.Sprintf("Enemies killed: %d", s.EnemiesKilled),
		fmt.Sprintf("Bosses defeated: %d", s.BossesDefeated),
		fmt.Sprintf("Survived: %ds", snap.Tick/config.DefaultTickRate),
	}
}
