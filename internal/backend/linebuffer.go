package backend

// LineBuffer is an in-memory Backend for tests: a fixed grid of cells with
// no terminal behind it. Events are fed through a channel.
type LineBuffer struct {
	width, height int
	cells         [][]Cell
	events        chan Event
	shows         int
}

// NewLineBuffer creates an in-memory surface with the given dimensions.
func NewLineBuffer(width, height int) *LineBuffer {
	lb := &LineBuffer{
		width:  width,
		height: height,
		events: make(chan Event, 16),
	}
	lb.allocate()
	return lb
}

// allocate creates the cell grid filled with blanks.
func (lb *LineBuffer) allocate() {
	lb.cells = make([][]Cell, lb.height)
	for y := 0; y < lb.height; y++ {
		lb.cells[y] = make([]Cell, lb.width)
		for x := 0; x < lb.width; x++ {
			lb.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

func (lb *LineBuffer) Init() error { return nil }

func (lb *LineBuffer) Fini() {}

func (lb *LineBuffer) Size() (int, int) {
	return lb.width, lb.height
}

func (lb *LineBuffer) SetCell(x, y int, cell Cell) {
	if x < 0 || x >= lb.width || y < 0 || y >= lb.height {
		return
	}
	lb.cells[y][x] = cell
}

func (lb *LineBuffer) Clear() {
	lb.allocate()
}

func (lb *LineBuffer) Show() {
	lb.shows++
}

func (lb *LineBuffer) PollEvent() Event {
	ev, ok := <-lb.events
	if !ok {
		return Event{Type: EventClosed}
	}
	return ev
}

// Post injects an event for PollEvent to return.
func (lb *LineBuffer) Post(ev Event) {
	lb.events <- ev
}

// CloseEvents ends the event stream; PollEvent returns EventClosed after.
func (lb *LineBuffer) CloseEvents() {
	close(lb.events)
}

// Cell returns the cell at the given position.
func (lb *LineBuffer) Cell(x, y int) Cell {
	if x < 0 || x >= lb.width || y < 0 || y >= lb.height {
		return Cell{}
	}
	return lb.cells[y][x]
}

// Row returns the printable text of row y, without trailing blanks.
func (lb *LineBuffer) Row(y int) string {
	if y < 0 || y >= lb.height {
		return ""
	}
	end := lb.width
	for end > 0 && lb.cells[y][end-1].Rune == ' ' {
		end--
	}
	runes := make([]rune, 0, end)
	for x := 0; x < end; x++ {
		runes = append(runes, lb.cells[y][x].Rune)
	}
	return string(runes)
}

// Shows returns how many times Show has been called.
func (lb *LineBuffer) Shows() int {
	return lb.shows
}
