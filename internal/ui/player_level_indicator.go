// internal/ui/player_level_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerLevelIndicator отображает уровень и опыт игрока.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	xpBarWidth  = 100
	xpBarHeight = 8
)

var xpBarColorFill = color.RGBA{70, 100, 120, 220}

// NewPlayerLevelIndicator создает новый индикатор уровня.
func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор.
func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, borderColor, true)

	fillWidth := float32(float64(xpBarWidth-borderWidth*2) * XPFill(currentXP, xpToNext))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, xpBarHeight-borderWidth*2, xpBarColorFill, true)
	}

	label := fmt.Sprintf("Level %s  %d/%d", toRoman(level), currentXP, xpToNext)
	drawText(screen, label, int(i.X+xpBarWidth)+6, int(i.Y)-3, LevelColor(level))
}

// XPFill returns the filled share of the experience bar.
func XPFill(currentXP, xpToNext int) float64 {
	if xpToNext <= 0 || currentXP <= 0 {
		return 0
	}
	if currentXP >= xpToNext {
		return 1
	}
	return float64(currentXP) / float64(xpToNext)
}
