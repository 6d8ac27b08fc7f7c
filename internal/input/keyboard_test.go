package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-survivor/internal/component"
	"go-space-survivor/pkg/geom"
)

type fakeDevice struct {
	held, just map[ebiten.Key]bool
	mouse      bool
	x, y       int
	wheel      float64
}

func (d *fakeDevice) Pressed(k ebiten.Key) bool     { return d.held[k] }
func (d *fakeDevice) JustPressed(k ebiten.Key) bool { return d.just[k] }
func (d *fakeDevice) MousePressed() bool            { return d.mouse }
func (d *fakeDevice) Cursor() (int, int)            { return d.x, d.y }
func (d *fakeDevice) Wheel() float64                { return d.wheel }

func TestPollMovementAndAim(t *testing.T) {
	d := &fakeDevice{
		held:  map[ebiten.Key]bool{ebiten.KeyW: true, ebiten.KeyD: true},
		mouse: true,
		x:     100,
		y:     50,
	}
	in := Poll(d, component.Camera{Offset: geom.V(400, 300)})
	if !in.Up || !in.Right || in.Down || in.Left {
		t.Errorf("move = %+v", in.Move())
	}
	if !in.Fire {
		t.Error("fire should follow the mouse button")
	}
	if in.Cursor != geom.V(500, 350) {
		t.Errorf("cursor = %v, want world (500, 350)", in.Cursor)
	}
}

func TestPollEdgeTriggered(t *testing.T) {
	d := &fakeDevice{
		held: map[ebiten.Key]bool{ebiten.KeyE: true, ebiten.KeyEscape: true},
		just: map[ebiten.Key]bool{ebiten.KeySpace: true, ebiten.Key3: true, ebiten.KeyQ: true},
	}
	in := Poll(d, component.Camera{})
	if in.UseItem || in.Pause {
		t.Error("held keys must not trigger one-shot actions")
	}
	if !in.Confirm || !in.OpenChest {
		t.Errorf("confirm=%v openChest=%v", in.Confirm, in.OpenChest)
	}
	if in.SelectWeapon != 3 {
		t.Errorf("SelectWeapon = %d, want 3", in.SelectWeapon)
	}
}

func TestPollWheel(t *testing.T) {
	tests := []struct {
		wheel float64
		want  int
	}{{0.5, 1}, {-2, -1}, {0, 0}}
	for _, tt := range tests {
		if got := Poll(&fakeDevice{wheel: tt.wheel}, component.Camera{}).Scroll; got != tt.want {
			t.Errorf("wheel %v: Scroll = %d, want %d", tt.wheel, got, tt.want)
		}
	}
}
