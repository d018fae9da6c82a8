// Package style defines the style model shared by the template evaluator
// and the rendering backends: color and style value types, the zero-width
// marker sentinel embedded in evaluated text, and the Sheet that carries
// the style change queue for one evaluation pass.
package style

// Marker is the reserved sentinel byte embedded in evaluated text to signal
// a style change. It occupies no display width. Each Marker byte in a text
// corresponds, in order, to one entry pushed onto the pass's Sheet.
const Marker byte = 0x01

// Style represents the visual style of text.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
	}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{
		Foreground: fg,
		Background: ColorDefault,
	}
}

// WithForeground returns a new style with the given foreground color.
func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Bold == other.Bold
}

// IsDefault returns true if this is the default style.
func (s Style) IsDefault() bool {
	return s.Foreground.IsDefault() &&
		s.Background.IsDefault() &&
		!s.Bold
}
