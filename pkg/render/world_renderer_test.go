package render

import (
	"image/color"
	"math"
	"testing"

	"go-space-survivor/internal/component"
	"go-space-survivor/pkg/geom"
)

func TestHealthRatio(t *testing.T) {
	tests := []struct {
		health, max int
		want        float64
	}{
		{50, 100, 0.5},
		{0, 100, 0},
		{-10, 100, 0},
		{150, 100, 1},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := HealthRatio(tt.health, tt.max); got != tt.want {
			t.Errorf("HealthRatio(%d, %d) = %v, want %v", tt.health, tt.max, got, tt.want)
		}
	}
}

func TestOnScreen(t *testing.T) {
	cam := component.Camera{Offset: geom.V(100, 100)}
	tests := []struct {
		name string
		box  geom.Rect
		want bool
	}{
		{"inside", geom.Box(geom.V(400, 300), 20), true},
		{"partly left", geom.Rect{X: 90, Y: 200, W: 20, H: 20}, true},
		{"touching left edge", geom.Rect{X: 80, Y: 200, W: 20, H: 20}, false},
		{"below", geom.Rect{X: 200, Y: 800, W: 20, H: 20}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OnScreen(tt.box, cam, 800, 600); got != tt.want {
				t.Errorf("OnScreen = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAimLine(t *testing.T) {
	from, to := AimLine(geom.V(10, 10), geom.V(10, 110), 50)
	if from != geom.V(10, 10) {
		t.Errorf("from = %v", from)
	}
	if math.Abs(to.X-10) > 1e-9 || math.Abs(to.Y-60) > 1e-9 {
		t.Errorf("to = %v, want (10, 60)", to)
	}

	_, to = AimLine(geom.V(5, 5), geom.V(5, 5), 50)
	if to != geom.V(55, 5) {
		t.Errorf("degenerate aim to = %v, want (55, 5)", to)
	}
}

func TestFadeColor(t *testing.T) {
	c := FadeColor(DarkenColor(color.RGBA{255, 255, 255, 255}), 0.5)
	if c.A != 127 {
		t.Errorf("alpha = %d, want 127", c.A)
	}
}
