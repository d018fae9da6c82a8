package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/tickertape/internal/style"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
	fini   bool
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.fini {
		return
	}
	t.fini = true
	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, nil, convertStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyRune {
			return Event{Type: EventKey, Rune: e.Rune()}
		}
		switch e.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Event{Type: EventKey, Rune: 'q'}
		}
		return Event{Type: EventKey}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case nil:
		// PollEvent returns nil once the screen is finalized.
		return Event{Type: EventClosed}

	default:
		return Event{Type: EventNone}
	}
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s style.Style) tcell.Style {
	st := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		st = st.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		st = st.Background(convertColor(s.Background))
	}
	if s.Bold {
		st = st.Bold(true)
	}
	return st
}

// convertColor converts our Color to tcell.Color.
func convertColor(c style.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
