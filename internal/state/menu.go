// internal/state/menu.go
package state

// Menu - вертикальный список пунктов с курсором, как в меню паузы и улучшений.
type Menu struct {
	Options []string
	Cursor  int
}

func NewMenu(options ...string) *Menu {
	return &Menu{Options: options}
}

// Up moves the cursor up, wrapping to the last entry.
func (m *Menu) Up() {
	m.move(-1)
}

// Down moves the cursor down, wrapping to the first entry.
func (m *Menu) Down() {
	m.move(1)
}

func (m *Menu) move(delta int) {
	n := len(m.Options)
	if n == 0 {
		return
	}
	m.Cursor = ((m.Cursor+delta)%n + n) % n
}

// Selected returns the highlighted option, or "" for an empty menu.
func (m *Menu) Selected() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Options) {
		return ""
	}
	return m.Options[m.Cursor]
}

// Pause menu entries.
const (
	PauseContinue = "Continue"
	PauseExit     = "Exit"
)

// NewPauseMenu returns the {Continue, Exit} menu with Continue highlighted.
func NewPauseMenu() *Menu {
	return NewMenu(PauseContinue, PauseExit)
}
