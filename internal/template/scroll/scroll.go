// Package scroll implements the scrolling ticker field: a fixed-width
// window that slides across a regenerated text on every refresh tick,
// marquee-style.
//
// The evaluated text may contain zero-width style marker bytes
// (style.Marker). Markers never count toward the visible width, but every
// marker in the full text must survive into the rendered slice so that the
// slice's marker sequence stays aligned with the pass's style sheet.
// Markers that fall before the window are collapsed to its front, markers
// past the window are collapsed to its back, and markers inside the window
// keep their relative positions.
package scroll

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/tickertape/internal/style"
	"github.com/dshills/tickertape/internal/template"
)

// LineSeparator replaces newlines in the evaluated text so multi-line
// content scrolls as one continuous line.
const LineSeparator = '|'

// ErrNeedArguments is returned when the field argument string has no
// usable width token.
var ErrNeedArguments = errors.New("scroll needs arguments: <length> [<step>] <text>")

// Field is a scrolling text field. It owns the compiled lead-in template
// and the scroll cursor, which is the only state mutated between ticks.
//
// Field is not safe for concurrent use; the refresh loop renders each
// field at most once per tick from a single goroutine.
type Field struct {
	width  int
	step   int
	cursor int
	reset  style.Style
	source *template.Source
	closed bool
}

// New configures a field from an argument string of the form
// "<width> [<step>] <text>", capturing reset as the style restored after
// each rendered slice.
//
// The text is seeded with width leading spaces so the ticker starts blank
// and the content scrolls in from the right. The combined lead-in is
// compiled against reg, so the scrolled text may itself contain variable
// references and color changes.
func New(reg *template.Registry, args string, reset style.Style) (*Field, error) {
	width, step, text, err := parseArgs(args)
	if err != nil {
		return nil, err
	}

	source, err := template.Parse(strings.Repeat(" ", width)+text, reg)
	if err != nil {
		return nil, err
	}

	return &Field{
		width:  width,
		step:   step,
		reset:  reset,
		source: source,
	}, nil
}

// parseArgs splits "<width> [<step>] <text>". The step token is optional:
// a second integer token is consumed as the step when any text follows it.
// A trailing integer with no text after it is still consumed, but the step
// falls back to 1 since there is nothing left to scroll by more than that.
func parseArgs(args string) (width, step int, text string, err error) {
	tok, rest := nextToken(args)
	if tok == "" {
		return 0, 0, "", ErrNeedArguments
	}
	width, perr := strconv.Atoi(tok)
	if perr != nil || width < 0 {
		return 0, 0, "", fmt.Errorf("%w: bad length %q", ErrNeedArguments, tok)
	}
	if width == 0 {
		return 0, 0, "", fmt.Errorf("%w: length must be at least 1", ErrNeedArguments)
	}

	step = 1
	tok, stepRest := nextToken(rest)
	if tok != "" {
		if n, perr := strconv.Atoi(tok); perr == nil && n >= 0 {
			rest = stepRest
			if rest != "" {
				step = n
			}
		}
	}

	return width, step, rest, nil
}

// nextToken returns the first whitespace-delimited token and the remainder
// just past the single separating space, keeping any further whitespace in
// the remainder verbatim.
func nextToken(s string) (tok, rest string) {
	s = strings.TrimLeft(s, " \t")
	sp := strings.IndexAny(s, " \t")
	if sp < 0 {
		return s, ""
	}
	return s[:sp], s[sp+1:]
}

// Eval renders the field's current slice into a template evaluation pass,
// letting a field stand as an ordinary template object.
func (f *Field) Eval(out *template.Output) {
	out.WriteString(f.Render(out.Sheet(), out.Remaining()))
}

// Render evaluates the lead-in template and returns the slice currently
// visible through the window, truncated to max bytes. The slice contains
// exactly the configured width of printable characters (unless the whole
// text already fits), every marker of the evaluated text, and a trailing
// reset-style marker.
//
// Render advances the cursor by the configured step; it is the only
// mutation between ticks.
func (f *Field) Render(sheet *style.Sheet, max int) string {
	if f.closed {
		return ""
	}

	out := template.NewOutput(template.MaxEvalSize, sheet)
	f.source.Eval(out)
	buf := out.Bytes()

	// Flatten newlines and count markers in one pass.
	total := 0
	for i, b := range buf {
		switch b {
		case '\n':
			buf[i] = LineSeparator
		case style.Marker:
			total++
		}
	}

	// The whole text fits: no scrolling, no cursor movement.
	if len(buf)-total <= f.width {
		return clip(string(buf), max)
	}

	// The text may have shrunk since the last tick.
	if f.cursor >= len(buf) {
		f.cursor = 0
	}

	// A marker sitting exactly at the cursor belongs to the front set;
	// letting it into the window would count it twice.
	for f.cursor < len(buf) && buf[f.cursor] == style.Marker {
		f.cursor++
	}

	// Fill the window: exactly width printable characters, plus any
	// markers encountered along the way. Pad with spaces when the text
	// runs out before the window is full.
	window := make([]byte, 0, f.width+total)
	shown, inWindow := 0, 0
	for i := f.cursor; shown < f.width && i < len(buf); i++ {
		window = append(window, buf[i])
		if buf[i] == style.Marker {
			inWindow++
		} else {
			shown++
		}
	}
	for ; shown < f.width; shown++ {
		window = append(window, ' ')
	}

	front := 0
	for _, b := range buf[:f.cursor] {
		if b == style.Marker {
			front++
		}
	}

	// front + window + trailing markers conserves the total marker count,
	// keeping the slice aligned with the sheet entries already pushed.
	composed := make([]byte, 0, total+f.width+1)
	for i := 0; i < front; i++ {
		composed = append(composed, style.Marker)
	}
	composed = append(composed, window...)
	for i := 0; i < total-front-inWindow; i++ {
		composed = append(composed, style.Marker)
	}

	f.cursor += f.step
	if f.cursor >= len(buf) {
		f.cursor = 0
	}

	// Restore the field's own style after the slice.
	if sheet != nil {
		sheet.Push(f.reset)
		composed = append(composed, style.Marker)
	}

	return clip(string(composed), max)
}

// Width returns the configured number of printable characters per slice.
func (f *Field) Width() int {
	return f.width
}

// Step returns the cursor advance per tick.
func (f *Field) Step() int {
	return f.step
}

// Cursor returns the current scroll offset into the evaluated text.
func (f *Field) Cursor() int {
	return f.cursor
}

// Close releases the compiled lead-in template. Idempotent.
func (f *Field) Close() {
	if f.closed {
		return
	}
	f.closed = true
	f.source.Close()
	f.source = nil
}

// clip truncates s to at most max bytes. Negative max means unlimited.
func clip(s string, max int) string {
	if max >= 0 && len(s) > max {
		return s[:max]
	}
	return s
}
