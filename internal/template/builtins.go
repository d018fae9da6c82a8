package template

import (
	"os"
	"time"

	"github.com/dshills/tickertape/internal/style"
)

// RegisterBuiltins installs the stock template variables:
//
//	${time [layout]}  current time, Go reference layout, default 15:04:05
//	${hostname}       host name
//	${env NAME}       environment variable value
//	${color [spec]}   switch foreground color; no argument restores base
//
// The base style is what ${color} with no argument restores.
func RegisterBuiltins(reg *Registry, base style.Style) error {
	factories := map[string]Factory{
		"time": func(_ *Registry, args string) (Object, error) {
			layout := args
			if layout == "" {
				layout = "15:04:05"
			}
			return timeObject(layout), nil
		},
		"hostname": func(_ *Registry, _ string) (Object, error) {
			return hostnameObject{}, nil
		},
		"env": func(_ *Registry, args string) (Object, error) {
			return envObject(args), nil
		},
		"color": func(_ *Registry, args string) (Object, error) {
			if args == "" {
				return colorObject{st: base}, nil
			}
			c, err := style.ParseColor(args)
			if err != nil {
				return nil, err
			}
			return colorObject{st: base.WithForeground(c)}, nil
		},
	}

	for name, f := range factories {
		if err := reg.Register(name, f); err != nil {
			return err
		}
	}
	return nil
}

// timeObject formats the current time with a Go layout string.
type timeObject string

func (t timeObject) Eval(out *Output) {
	out.WriteString(time.Now().Format(string(t)))
}

// hostnameObject emits the host name.
type hostnameObject struct{}

func (hostnameObject) Eval(out *Output) {
	name, err := os.Hostname()
	if err != nil {
		return
	}
	out.WriteString(name)
}

// envObject emits the value of an environment variable.
type envObject string

func (e envObject) Eval(out *Output) {
	out.WriteString(os.Getenv(string(e)))
}

// colorObject emits a zero-width style change.
type colorObject struct {
	st style.Style
}

func (c colorObject) Eval(out *Output) {
	out.PushStyle(c.st)
}
