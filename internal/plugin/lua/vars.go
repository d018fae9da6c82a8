package lua

import (
	"strings"

	"github.com/dshills/tickertape/internal/template"
)

// VarFactory returns a template factory for ${lua <fn> [args...]}: each
// evaluation calls the named global function in the script with the
// remaining tokens as string arguments and substitutes the result.
//
// A failing call substitutes nothing; a ticker line is not the place to
// print stack traces. The error is reported through onErr when set.
func VarFactory(state *State, onErr func(fn string, err error)) template.Factory {
	return func(_ *template.Registry, args string) (template.Object, error) {
		fields := strings.Fields(args)
		if len(fields) == 0 {
			return nil, ErrNotFunction
		}
		return &varObject{
			state: state,
			fn:    fields[0],
			args:  fields[1:],
			onErr: onErr,
		}, nil
	}
}

// varObject is one compiled ${lua ...} reference.
type varObject struct {
	state *State
	fn    string
	args  []string
	onErr func(fn string, err error)
}

// Eval calls the Lua function and writes its result.
func (v *varObject) Eval(out *template.Output) {
	result, err := v.state.Call(v.fn, v.args...)
	if err != nil {
		if v.onErr != nil {
			v.onErr(v.fn, err)
		}
		return
	}
	out.WriteString(result)
}
