package style

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"#FF0000", ColorRed, false},
		{"FF0000", ColorRed, false},
		{"#F00", ColorRed, false},
		{"#00FF00", ColorGreen, false},
		{"#GGGGGG", Color{}, true},
		{"#FFFF", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ColorFromHex(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ColorFromHex(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColorFromHex(%q): %v", tt.input, err)
			continue
		}
		if !got.Equals(tt.want) {
			t.Errorf("ColorFromHex(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"red", ColorRed},
		{"RED", ColorRed},
		{"grey", ColorGray},
		{"default", ColorDefault},
		{"#0000FF", ColorBlue},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.input, err)
			continue
		}
		if !got.Equals(tt.want) {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseColor("notacolor"); err == nil {
		t.Error("ParseColor(notacolor): expected error")
	}
}

func TestColorEquals(t *testing.T) {
	if !ColorDefault.Equals(Color{Default: true}) {
		t.Error("default colors should be equal")
	}
	if ColorDefault.Equals(ColorRed) {
		t.Error("default should not equal red")
	}
	if !ColorFromIndex(3).Equals(ColorFromIndex(3)) {
		t.Error("same palette index should be equal")
	}
	if ColorFromIndex(3).Equals(ColorFromIndex(4)) {
		t.Error("different palette indexes should not be equal")
	}
	if ColorFromIndex(255).Equals(ColorFromRGB(255, 0, 0)) {
		t.Error("indexed and RGB colors should not be equal")
	}
}

func TestColorString(t *testing.T) {
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("String = %q, want %q", got, "default")
	}
	if got := ColorFromIndex(7).String(); got != "idx(7)" {
		t.Errorf("String = %q, want %q", got, "idx(7)")
	}
	if got := ColorRed.String(); got != "#FF0000" {
		t.Errorf("String = %q, want %q", got, "#FF0000")
	}
}
