// Package backend abstracts the display surface widget lines are drawn to.
//
// A rendered line is a byte sequence with embedded zero-width marker bytes;
// DrawLine walks it, consuming one style-sheet entry per marker to switch
// the active style, and writes the printable runes as cells.
package backend

import (
	"unicode/utf8"

	"github.com/dshills/tickertape/internal/style"
)

// Cell is one display cell.
type Cell struct {
	Rune  rune
	Style style.Style
}

// EventType identifies the kind of input event.
type EventType uint8

const (
	// EventNone is an event with no interpretation.
	EventNone EventType = iota
	// EventKey is a key press; Rune carries the character.
	EventKey
	// EventResize reports a new surface size.
	EventResize
	// EventClosed means the backend has shut down.
	EventClosed
)

// Event is an input event from the display surface.
type Event struct {
	Type   EventType
	Rune   rune
	Width  int
	Height int
}

// Backend is a display surface.
type Backend interface {
	// Init prepares the surface for drawing.
	Init() error

	// Fini releases the surface. Idempotent.
	Fini()

	// Size returns the surface dimensions in cells.
	Size() (width, height int)

	// SetCell writes one cell. Out-of-range coordinates are ignored.
	SetCell(x, y int, cell Cell)

	// Clear blanks the surface.
	Clear()

	// Show makes all writes since the last Show visible.
	Show()

	// PollEvent blocks until the next input event.
	PollEvent() Event
}

// DrawLine renders one evaluated line onto row y of the backend, starting
// from the base style and switching styles as marker bytes consume sheet
// entries in order. Drawing stops silently at the right edge. The remainder
// of the row is cleared to the base style.
func DrawLine(b Backend, y int, text string, sheet *style.Sheet, base style.Style) {
	width, height := b.Size()
	if y < 0 || y >= height {
		return
	}

	cur := base
	x := 0
	for i := 0; i < len(text); {
		if text[i] == style.Marker {
			if sheet != nil {
				if st, ok := sheet.Take(); ok {
					cur = st
				}
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if x >= width {
			// Keep consuming markers past the edge so the sheet stays
			// aligned for anything drawn after this line.
			continue
		}
		b.SetCell(x, y, Cell{Rune: r, Style: cur})
		x++
	}

	for ; x < width; x++ {
		b.SetCell(x, y, Cell{Rune: ' ', Style: base})
	}
}
