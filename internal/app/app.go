// Package app wires configuration, templates, and a display backend into
// the tickertape engine: a loop that re-evaluates every widget line on a
// fixed interval and draws the results.
package app

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/tickertape/internal/backend"
	"github.com/dshills/tickertape/internal/config"
	"github.com/dshills/tickertape/internal/plugin/lua"
	"github.com/dshills/tickertape/internal/style"
	"github.com/dshills/tickertape/internal/template"
)

// Options configures the engine.
type Options struct {
	// ConfigPath is the path to the TOML configuration file.
	ConfigPath string

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string

	// LogOutput is where logs are written; nil discards them, since
	// stderr usually shares the terminal the widget draws on.
	LogOutput io.Writer
}

// line is one compiled widget line.
type line struct {
	id     string
	source *template.Source
}

// Engine owns the compiled widget lines and the refresh loop.
type Engine struct {
	mu sync.Mutex

	opts    Options
	log     *Logger
	cfg     *config.Config
	backend backend.Backend

	lines []*line
	luaVM *lua.State
	base  style.Style

	shutdown bool
}

// New creates an engine from the configuration at opts.ConfigPath.
func New(opts Options) (*Engine, error) {
	log := NullLogger
	if opts.LogOutput != nil {
		log = NewLogger(ParseLogLevel(opts.LogLevel), opts.LogOutput)
	}

	e := &Engine{
		opts: opts,
		log:  log,
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := e.rebuild(cfg); err != nil {
		return nil, err
	}

	return e, nil
}

// SetBackend attaches the display backend. Must be called before Run.
func (e *Engine) SetBackend(b backend.Backend) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.backend = b
}

// rebuild compiles the configuration into lines, replacing any existing
// set. Caller-facing methods hold the lock around it as needed.
func (e *Engine) rebuild(cfg *config.Config) error {
	base := cfg.BaseStyle()
	reg, luaVM, err := buildRegistry(cfg, base, e.log)
	if err != nil {
		return err
	}

	lines := make([]*line, 0, len(cfg.Lines))
	for _, lc := range cfg.Lines {
		source, err := template.Parse(lc.Template, reg)
		if err != nil {
			for _, ln := range lines {
				ln.source.Close()
			}
			if luaVM != nil {
				luaVM.Close()
			}
			return err
		}
		ln := &line{id: uuid.New().String(), source: source}
		lines = append(lines, ln)
		e.log.Debug("compiled line %s: %s", ln.id, lc.Template)
	}

	e.releaseLines()
	e.cfg = cfg
	e.base = base
	e.lines = lines
	e.luaVM = luaVM
	return nil
}

// releaseLines closes the current lines and Lua state.
func (e *Engine) releaseLines() {
	for _, ln := range e.lines {
		ln.source.Close()
	}
	e.lines = nil
	if e.luaVM != nil {
		e.luaVM.Close()
		e.luaVM = nil
	}
}

// Reload re-reads the configuration file and swaps in the new lines.
// On error the previous lines keep running.
func (e *Engine) Reload() error {
	cfg, err := config.Load(e.opts.ConfigPath)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.shutdown {
		return ErrShutdown
	}
	if err := e.rebuild(cfg); err != nil {
		return err
	}
	e.log.Info("configuration reloaded: %d lines", len(e.lines))
	return nil
}

// Interval returns the configured refresh interval.
func (e *Engine) Interval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg.Interval()
}

// Tick evaluates every line once and draws the results.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.shutdown || e.backend == nil {
		return
	}

	for y, ln := range e.lines {
		sheet := style.NewSheet()
		out := template.NewOutput(template.MaxEvalSize, sheet)
		ln.source.Eval(out)
		backend.DrawLine(e.backend, y, out.String(), sheet, e.base)
	}
	e.backend.Show()
}

// Run drives the refresh loop until ctx is canceled or the user quits.
// A user quit returns ErrQuit.
func (e *Engine) Run(ctx context.Context) error {
	e.mu.Lock()
	b := e.backend
	e.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return err
	}
	defer b.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit := make(chan struct{})
	var quitOnce sync.Once
	go e.pollEvents(b, func() {
		quitOnce.Do(func() { close(quit) })
	})

	// Config live reload is best-effort: a watcher failure degrades to a
	// static config, it does not stop the widget.
	var changes <-chan struct{}
	var werrs <-chan error
	if watcher, err := config.NewWatcher(e.opts.ConfigPath); err != nil {
		e.log.Warn("config watcher unavailable: %v", err)
	} else {
		defer watcher.Close()
		go watcher.Run(ctx)
		changes = watcher.Changes()
		werrs = watcher.Errors()
	}

	ticker := time.NewTicker(e.Interval())
	defer ticker.Stop()

	e.Tick()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-quit:
			return ErrQuit

		case <-ticker.C:
			e.Tick()

		case <-changes:
			if err := e.Reload(); err != nil {
				e.log.Error("config reload failed: %v", err)
				continue
			}
			ticker.Reset(e.Interval())
			e.Tick()

		case err := <-werrs:
			e.log.Warn("config watcher: %v", err)
		}
	}
}

// pollEvents consumes backend input until shutdown, triggering quit on 'q'
// and redrawing on resize.
func (e *Engine) pollEvents(b backend.Backend, quit func()) {
	for {
		ev := b.PollEvent()
		switch ev.Type {
		case backend.EventKey:
			if ev.Rune == 'q' || ev.Rune == 'Q' {
				quit()
				return
			}

		case backend.EventResize:
			b.Clear()
			e.Tick()

		case backend.EventClosed:
			quit()
			return
		}
	}
}

// Shutdown releases all resources. Idempotent.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.shutdown {
		return
	}
	e.shutdown = true
	e.releaseLines()
}
