package style

// Sheet is the ordered queue of style changes produced during one template
// evaluation pass. Every Marker byte written into the evaluated text pushes
// exactly one entry here; a renderer walking the text consumes entries in
// the same order. The queue is per-pass and caller-owned, so no global
// rendering state is shared between widget lines or ticks.
//
// Sheet is not safe for concurrent use; an evaluation pass is
// single-threaded by contract.
type Sheet struct {
	changes []Style
	next    int
}

// NewSheet creates an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{}
}

// Push appends a style change and returns its queue position.
func (s *Sheet) Push(st Style) int {
	s.changes = append(s.changes, st)
	return len(s.changes) - 1
}

// Len returns the number of recorded style changes.
func (s *Sheet) Len() int {
	return len(s.changes)
}

// At returns the style change at position i.
func (s *Sheet) At(i int) Style {
	return s.changes[i]
}

// Take consumes and returns the next unconsumed style change.
// The second return is false when the queue is exhausted, which means the
// text contained more marker bytes than recorded changes.
func (s *Sheet) Take() (Style, bool) {
	if s.next >= len(s.changes) {
		return Style{}, false
	}
	st := s.changes[s.next]
	s.next++
	return st, true
}

// Rewind resets the consumption position without discarding changes.
func (s *Sheet) Rewind() {
	s.next = 0
}

// Reset discards all changes and rewinds, allowing reuse across ticks.
func (s *Sheet) Reset() {
	s.changes = s.changes[:0]
	s.next = 0
}
