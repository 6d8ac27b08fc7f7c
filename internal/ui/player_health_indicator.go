// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-survivor/internal/component"
	"go-space-survivor/internal/config"
)

const healthBarHeight = 10

// PlayerHealthIndicator отображает здоровье и броню игрока.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует полосу здоровья. Временный бонус показан отдельным отрезком
// после основного максимума.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, p *component.Player) {
	w := float32(config.HealthBarW)
	vector.DrawFilledRect(screen, i.X, i.Y, w, healthBarHeight, config.HealthBarBack, false)
	vector.DrawFilledRect(screen, i.X, i.Y, w*float32(HealthFill(p.Health, p.HealthCap())), healthBarHeight, config.HealthBarFront, false)
	vector.StrokeRect(screen, i.X, i.Y, w, healthBarHeight, borderWidth, borderColor, false)

	drawText(screen, HealthLabel(p), int(i.X+w)+6, int(i.Y)-2, config.TextLightColor)
}

// HealthFill returns the filled share of the health bar.
func HealthFill(health, capacity int) float64 {
	if capacity <= 0 || health <= 0 {
		return 0
	}
	if health >= capacity {
		return 1
	}
	return float64(health) / float64(capacity)
}

// HealthLabel is the text next to the health bar.
func HealthLabel(p *component.Player) string {
	s := fmt.Sprintf("%d/%d", p.Health, p.HealthCap())
	if p.TempHealthBoost > 0 {
		s += fmt.Sprintf(" (+%d %ds)", p.TempHealthBoost, p.TempHealthTimer/config.DefaultTickRate)
	}
	if p.Armor > 0 {
		s += fmt.Sprintf(" Armor %d", p.Armor)
	}
	return s
}
