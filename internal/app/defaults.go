package app

import (
	"github.com/dshills/tickertape/internal/config"
	"github.com/dshills/tickertape/internal/plugin/lua"
	"github.com/dshills/tickertape/internal/style"
	"github.com/dshills/tickertape/internal/template"
	"github.com/dshills/tickertape/internal/template/scroll"
)

// buildRegistry assembles the variable registry for a configuration:
// the stock builtins, the scroll field, and, when a script is configured,
// the Lua variable. The returned Lua state is nil when no script is set.
func buildRegistry(cfg *config.Config, base style.Style, log *Logger) (*template.Registry, *lua.State, error) {
	reg := template.NewRegistry()

	if err := template.RegisterBuiltins(reg, base); err != nil {
		return nil, nil, err
	}

	err := reg.Register("scroll", func(r *template.Registry, args string) (template.Object, error) {
		field, err := scroll.New(r, args, base)
		if err != nil {
			return nil, err
		}
		return field, nil
	})
	if err != nil {
		return nil, nil, err
	}

	var state *lua.State
	if cfg.LuaScript != "" {
		state, err = lua.NewState(cfg.LuaScript)
		if err != nil {
			return nil, nil, err
		}
		onErr := func(fn string, err error) {
			log.Warn("lua variable %s: %v", fn, err)
		}
		if err := reg.Register("lua", lua.VarFactory(state, onErr)); err != nil {
			state.Close()
			return nil, nil, err
		}
	}

	return reg, state, nil
}
