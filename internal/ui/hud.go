// internal/ui/hud.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-space-survivor/internal/app"
)

// HUD собирает индикаторы игрового экрана.
type HUD struct {
	health  *PlayerHealthIndicator
	level   *PlayerLevelIndicator
	info    *InfoPanel
	minimap *Minimap
}

func NewHUD(screenWidth, screenHeight int) *HUD {
	return &HUD{
		health:  NewPlayerHealthIndicator(panelMargin, panelMargin),
		level:   NewPlayerLevelIndicator(panelMargin, panelMargin+24),
		info:    NewInfoPanel(float32(screenWidth-infoPanelWidth-panelMargin), panelMargin),
		minimap: NewMinimap(screenWidth, screenHeight),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	p := &snap.Player
	h.health.Draw(screen, p)
	h.level.Draw(screen, p.Level, p.Exp, p.ExpToNext)
	h.info.Draw(screen, p, &snap.Inventory)
	h.minimap.Draw(screen, snap)
}
