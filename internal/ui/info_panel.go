// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-survivor/internal/component"
	"go-space-survivor/internal/config"
	"go-space-survivor/internal/defs"
)

const (
	infoPanelWidth = 190
	maxItemLines   = 6
)

// InfoPanel показывает оружие, патроны и содержимое инвентаря.
type InfoPanel struct {
	X, Y float32
}

func NewInfoPanel(x, y float32) *InfoPanel {
	return &InfoPanel{X: x, Y: y}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, player *component.Player, inv *component.Inventory) {
	lines := InfoLines(player, inv)
	h := float32(len(lines)*lineHeight + panelMargin)
	drawPanel(screen, p.X, p.Y, infoPanelWidth, h)
	for i, l := range lines {
		clr := config.TextLightColor
		if i == 0 {
			clr = config.HighlightColor
		}
		drawText(screen, l, int(p.X)+panelMargin/2+2, int(p.Y)+panelMargin/2+i*lineHeight, clr)
	}
}

// InfoLines собирает строки панели: выбранное оружие, остальные слоты,
// ресурсы и первые предметы инвентаря.
func InfoLines(player *component.Player, inv *component.Inventory) []string {
	w := inv.Weapon()
	lines := []string{fmt.Sprintf("%s  %s", w.Name, AmmoLabel(inv, w))}
	for i, other := range inv.Weapons {
		if i == inv.Selected {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d %s %s", i+1, other.Name, AmmoLabel(inv, other)))
	}
	lines = append(lines,
		fmt.Sprintf("Resources: %d", player.Resources),
		fmt.Sprintf("Items: %d/%d", len(inv.Items), inv.Capacity),
	)
	for i, it := range inv.Items {
		if i == maxItemLines {
			lines = append(lines, fmt.Sprintf("  +%d more", len(inv.Items)-maxItemLines))
			break
		}
		lines = append(lines, "  "+it.Name)
	}
	return lines
}

// AmmoLabel returns "inf" for weapons without an ammo limit.
func AmmoLabel(inv *component.Inventory, w defs.Weapon) string {
	n := inv.AmmoOf(w.Name)
	if n == defs.InfiniteAmmo {
		return "inf"
	}
	return fmt.Sprint(n)
}
