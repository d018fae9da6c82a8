package style

import "testing"

func TestSheetPushTake(t *testing.T) {
	s := NewSheet()

	if s.Len() != 0 {
		t.Fatalf("new sheet length = %d, want 0", s.Len())
	}
	if _, ok := s.Take(); ok {
		t.Fatal("Take on empty sheet should report exhaustion")
	}

	red := NewStyle(ColorRed)
	blue := NewStyle(ColorBlue)
	if pos := s.Push(red); pos != 0 {
		t.Errorf("first push position = %d, want 0", pos)
	}
	if pos := s.Push(blue); pos != 1 {
		t.Errorf("second push position = %d, want 1", pos)
	}

	got, ok := s.Take()
	if !ok || !got.Equals(red) {
		t.Errorf("first Take = %v/%v, want red", got, ok)
	}
	got, ok = s.Take()
	if !ok || !got.Equals(blue) {
		t.Errorf("second Take = %v/%v, want blue", got, ok)
	}
	if _, ok := s.Take(); ok {
		t.Error("third Take should report exhaustion")
	}
}

func TestSheetRewind(t *testing.T) {
	s := NewSheet()
	s.Push(NewStyle(ColorRed))
	s.Take()

	s.Rewind()
	if got, ok := s.Take(); !ok || !got.Foreground.Equals(ColorRed) {
		t.Errorf("Take after Rewind = %v/%v, want red", got, ok)
	}
}

func TestSheetReset(t *testing.T) {
	s := NewSheet()
	s.Push(NewStyle(ColorRed))
	s.Reset()

	if s.Len() != 0 {
		t.Errorf("length after Reset = %d, want 0", s.Len())
	}
	if _, ok := s.Take(); ok {
		t.Error("Take after Reset should report exhaustion")
	}
}
