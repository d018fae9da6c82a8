package template

import (
	"github.com/dshills/tickertape/internal/style"
)

// MaxEvalSize is the default capacity bound for one evaluation pass.
const MaxEvalSize = 16 * 1024

// Output is the bounded buffer one evaluation pass writes into, together
// with the style sheet that records a change for every marker byte written.
// Writes past capacity are dropped silently; truncation is a capacity
// guard, not an error.
type Output struct {
	buf   []byte
	max   int
	sheet *style.Sheet
}

// NewOutput creates an output bounded at max bytes, recording style
// changes onto sheet. A nil sheet suppresses style recording and marker
// emission entirely.
func NewOutput(max int, sheet *style.Sheet) *Output {
	if max <= 0 {
		max = MaxEvalSize
	}
	return &Output{
		buf:   make([]byte, 0, min(max, MaxEvalSize)),
		max:   max,
		sheet: sheet,
	}
}

// WriteString appends s, truncating silently at capacity.
func (o *Output) WriteString(s string) {
	room := o.max - len(o.buf)
	if room <= 0 {
		return
	}
	if len(s) > room {
		s = s[:room]
	}
	o.buf = append(o.buf, s...)
}

// WriteByte appends a single byte if there is room.
func (o *Output) WriteByte(b byte) error {
	if len(o.buf) < o.max {
		o.buf = append(o.buf, b)
	}
	return nil
}

// PushStyle records a style change: one marker byte in the text and one
// sheet entry, kept in lockstep. Dropped as a pair when the buffer is full
// or no sheet is attached, so marker count and sheet length always agree.
func (o *Output) PushStyle(st style.Style) {
	if o.sheet == nil || len(o.buf) >= o.max {
		return
	}
	o.buf = append(o.buf, style.Marker)
	o.sheet.Push(st)
}

// Sheet returns the attached style sheet, which may be nil.
func (o *Output) Sheet() *style.Sheet {
	return o.sheet
}

// Len returns the number of bytes written so far.
func (o *Output) Len() int {
	return len(o.buf)
}

// Remaining returns the capacity left before truncation begins.
func (o *Output) Remaining() int {
	return o.max - len(o.buf)
}

// String returns the accumulated text.
func (o *Output) String() string {
	return string(o.buf)
}

// Bytes returns the accumulated text without copying.
// The slice is invalidated by further writes.
func (o *Output) Bytes() []byte {
	return o.buf
}
