// internal/ui/ui.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight  = 16
	panelMargin = 10
	borderWidth = 1
)

var (
	panelColor  = color.RGBA{R: 25, G: 35, B: 45, A: 230}
	panelBorder = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	borderColor = color.White
)

// Face - шрифт интерфейса. Растровый, поэтому не нужен файл со шрифтом.
var Face font.Face = basicfont.Face7x13

// TextWidth возвращает ширину строки в пикселях.
func TextWidth(s string) int {
	return text.BoundString(Face, s).Dx()
}

// drawText рисует строку; y - верхний край строки, а не базовая линия.
func drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(screen, s, Face, x, y+Face.Metrics().Ascent.Ceil(), clr)
}

// drawCentered рисует строку по центру относительно cx.
func drawCentered(screen *ebiten.Image, s string, cx, y int, clr color.Color) {
	drawText(screen, s, cx-TextWidth(s)/2, y, clr)
}

// drawPanel рисует полупрозрачную подложку с рамкой.
func drawPanel(screen *ebiten.Image, x, y, w, h float32) {
	vector.DrawFilledRect(screen, x, y, w, h, panelColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, panelBorder, true)
}
