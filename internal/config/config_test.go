package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/tickertape/internal/style"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tickertape.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
interval_ms = 250
foreground  = "white"
background  = "#202020"
lua_script  = "vars.lua"

[[line]]
template = "host ${hostname}"

[[line]]
template = "${scroll 20 1 news ticker}"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.IntervalMS != 250 {
		t.Errorf("IntervalMS = %d, want 250", cfg.IntervalMS)
	}
	if cfg.Interval() != 250*time.Millisecond {
		t.Errorf("Interval = %v, want 250ms", cfg.Interval())
	}
	if cfg.LuaScript != "vars.lua" {
		t.Errorf("LuaScript = %q", cfg.LuaScript)
	}
	if len(cfg.Lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(cfg.Lines))
	}
	if cfg.Lines[0].Template != "host ${hostname}" {
		t.Errorf("line 1 template = %q", cfg.Lines[0].Template)
	}
}

func TestLoadDefaultInterval(t *testing.T) {
	path := writeConfig(t, `
[[line]]
template = "x"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IntervalMS != DefaultIntervalMS {
		t.Errorf("IntervalMS = %d, want default %d", cfg.IntervalMS, DefaultIntervalMS)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("error = %v, want ErrFileNotFound", err)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := writeConfig(t, "interval_ms = [[[")

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error %T = %v, want ParseError", err, err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			"no lines",
			`interval_ms = 100`,
			ErrNoLines,
		},
		{
			"empty template",
			"[[line]]\ntemplate = \"\"",
			ErrEmptyTemplate,
		},
		{
			"negative interval",
			"interval_ms = -5\n[[line]]\ntemplate = \"x\"",
			ErrBadInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); !errors.Is(err, tt.wantErr) {
				t.Errorf("Load error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBadColors(t *testing.T) {
	path := writeConfig(t, "foreground = \"nosuch\"\n[[line]]\ntemplate = \"x\"")
	if _, err := Load(path); err == nil {
		t.Error("expected error for bad foreground color")
	}
}

func TestBaseStyle(t *testing.T) {
	cfg := &Config{Foreground: "red", Background: "#000000"}
	st := cfg.BaseStyle()

	if !st.Foreground.Equals(style.ColorRed) {
		t.Errorf("foreground = %v, want red", st.Foreground)
	}
	if !st.Background.Equals(style.ColorBlack) {
		t.Errorf("background = %v, want black", st.Background)
	}

	empty := &Config{}
	if !empty.BaseStyle().IsDefault() {
		t.Error("empty config should yield the default style")
	}
}

func TestWatcherSignalsOnWrite(t *testing.T) {
	path := writeConfig(t, "[[line]]\ntemplate = \"x\"")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.WriteFile(path, []byte("interval_ms = 100\n[[line]]\ntemplate = \"y\""), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("no change event after rewrite")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	path := writeConfig(t, "[[line]]\ntemplate = \"x\"")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	sibling := filepath.Join(filepath.Dir(path), "other.txt")
	if err := os.WriteFile(sibling, []byte("noise"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case <-w.Changes():
		t.Error("unexpected change event for sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := writeConfig(t, "[[line]]\ntemplate = \"x\"")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
