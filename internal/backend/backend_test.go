package backend

import (
	"testing"

	"github.com/dshills/tickertape/internal/style"
)

func TestLineBufferSetCell(t *testing.T) {
	lb := NewLineBuffer(10, 2)

	lb.SetCell(0, 0, Cell{Rune: 'a'})
	lb.SetCell(9, 1, Cell{Rune: 'z'})
	// Out-of-range writes are ignored.
	lb.SetCell(-1, 0, Cell{Rune: 'x'})
	lb.SetCell(10, 0, Cell{Rune: 'x'})
	lb.SetCell(0, 2, Cell{Rune: 'x'})

	if got := lb.Cell(0, 0).Rune; got != 'a' {
		t.Errorf("cell(0,0) = %q, want 'a'", got)
	}
	if got := lb.Cell(9, 1).Rune; got != 'z' {
		t.Errorf("cell(9,1) = %q, want 'z'", got)
	}
	if got := lb.Row(0); got != "a" {
		t.Errorf("row 0 = %q, want %q", got, "a")
	}
}

func TestLineBufferClear(t *testing.T) {
	lb := NewLineBuffer(4, 1)
	lb.SetCell(0, 0, Cell{Rune: 'x'})
	lb.Clear()

	if got := lb.Row(0); got != "" {
		t.Errorf("row after clear = %q, want empty", got)
	}
}

func TestDrawLinePlainText(t *testing.T) {
	lb := NewLineBuffer(10, 1)
	base := style.NewStyle(style.ColorWhite)

	DrawLine(lb, 0, "hello", nil, base)

	if got := lb.Row(0); got != "hello" {
		t.Errorf("row = %q, want %q", got, "hello")
	}
	if !lb.Cell(0, 0).Style.Equals(base) {
		t.Errorf("cell style = %v, want base", lb.Cell(0, 0).Style)
	}
	// The remainder of the row is cleared to the base style.
	if got := lb.Cell(9, 0); got.Rune != ' ' || !got.Style.Equals(base) {
		t.Errorf("tail cell = %v, want blank in base style", got)
	}
}

func TestDrawLineSwitchesStyleOnMarker(t *testing.T) {
	lb := NewLineBuffer(10, 1)
	base := style.DefaultStyle()
	red := style.NewStyle(style.ColorRed)

	sheet := style.NewSheet()
	sheet.Push(red)
	sheet.Push(base)

	text := "a" + string(style.Marker) + "b" + string(style.Marker) + "c"
	DrawLine(lb, 0, text, sheet, base)

	if got := lb.Row(0); got != "abc" {
		t.Fatalf("row = %q, want %q", got, "abc")
	}
	if !lb.Cell(0, 0).Style.Equals(base) {
		t.Errorf("'a' style = %v, want base", lb.Cell(0, 0).Style)
	}
	if !lb.Cell(1, 0).Style.Equals(red) {
		t.Errorf("'b' style = %v, want red", lb.Cell(1, 0).Style)
	}
	if !lb.Cell(2, 0).Style.Equals(base) {
		t.Errorf("'c' style = %v, want base", lb.Cell(2, 0).Style)
	}
}

func TestDrawLineClipsAtEdge(t *testing.T) {
	lb := NewLineBuffer(3, 1)

	DrawLine(lb, 0, "abcdef", nil, style.DefaultStyle())

	if got := lb.Row(0); got != "abc" {
		t.Errorf("row = %q, want %q", got, "abc")
	}
}

func TestDrawLineConsumesMarkersPastEdge(t *testing.T) {
	lb := NewLineBuffer(2, 1)
	red := style.NewStyle(style.ColorRed)

	sheet := style.NewSheet()
	sheet.Push(red)

	// Marker beyond the right edge must still consume its sheet entry.
	text := "abcd" + string(style.Marker) + "e"
	DrawLine(lb, 0, text, sheet, style.DefaultStyle())

	if _, ok := sheet.Take(); ok {
		t.Error("sheet entry was not consumed for off-screen marker")
	}
}

func TestDrawLineIgnoresBadRow(t *testing.T) {
	lb := NewLineBuffer(4, 1)

	DrawLine(lb, 5, "text", nil, style.DefaultStyle())
	DrawLine(lb, -1, "text", nil, style.DefaultStyle())

	if got := lb.Row(0); got != "" {
		t.Errorf("row 0 = %q, want untouched", got)
	}
}

func TestDrawLineMultibyteRunes(t *testing.T) {
	lb := NewLineBuffer(6, 1)

	DrawLine(lb, 0, "héllo", nil, style.DefaultStyle())

	if got := lb.Row(0); got != "héllo" {
		t.Errorf("row = %q, want %q", got, "héllo")
	}
}
