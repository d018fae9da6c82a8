// Package config loads and watches the tickertape configuration file.
//
// The file is TOML:
//
//	interval_ms = 500
//	foreground  = "white"
//	background  = "default"
//	lua_script  = "vars.lua"
//
//	[[line]]
//	template = "host ${hostname} ${scroll 20 1 ${color red}hello world}"
//
//	[[line]]
//	template = "time ${time 15:04:05}"
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/tickertape/internal/style"
)

// DefaultIntervalMS is the refresh interval used when the config omits one.
const DefaultIntervalMS = 500

// Config is the top-level configuration.
type Config struct {
	// IntervalMS is the refresh interval in milliseconds.
	IntervalMS int `toml:"interval_ms"`

	// Foreground is the base text color (name or hex).
	Foreground string `toml:"foreground"`

	// Background is the base background color (name or hex).
	Background string `toml:"background"`

	// LuaScript is an optional path to a script defining ${lua ...} functions.
	LuaScript string `toml:"lua_script"`

	// Lines are the widget lines, drawn top to bottom.
	Lines []Line `toml:"line"`
}

// Line configures one widget line.
type Line struct {
	// Template is the line's text template.
	Template string `toml:"template"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	cfg := &Config{IntervalMS: DefaultIntervalMS}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	if c.IntervalMS <= 0 {
		return fmt.Errorf("%w: %dms", ErrBadInterval, c.IntervalMS)
	}
	if len(c.Lines) == 0 {
		return ErrNoLines
	}
	for i, line := range c.Lines {
		if line.Template == "" {
			return fmt.Errorf("%w: line %d", ErrEmptyTemplate, i+1)
		}
	}
	if c.Foreground != "" {
		if _, err := style.ParseColor(c.Foreground); err != nil {
			return fmt.Errorf("foreground: %w", err)
		}
	}
	if c.Background != "" {
		if _, err := style.ParseColor(c.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	return nil
}

// Interval returns the refresh interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// BaseStyle resolves the configured base colors into a style.
// Unparseable or absent colors fall back to the terminal defaults;
// Validate has already rejected bad values on the load path.
func (c *Config) BaseStyle() style.Style {
	st := style.DefaultStyle()
	if c.Foreground != "" {
		if fg, err := style.ParseColor(c.Foreground); err == nil {
			st.Foreground = fg
		}
	}
	if c.Background != "" {
		if bg, err := style.ParseColor(c.Background); err == nil {
			st.Background = bg
		}
	}
	return st
}
