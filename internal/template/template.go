// Package template compiles and evaluates widget line templates.
//
// A template is literal text interleaved with variable references. A
// reference is either $name or ${name args}; the braced form may nest
// further references inside its arguments. Compilation resolves each
// reference against a Registry into an Object; evaluation runs once per
// refresh tick and regenerates the full text, pushing a style sheet entry
// for every zero-width marker byte it emits.
package template

import (
	"strings"
)

// Source is a compiled template: an ordered chain of objects evaluated
// fresh on every tick.
type Source struct {
	objects []Object
}

// Parse compiles input against the registry.
func Parse(input string, reg *Registry) (*Source, error) {
	var objects []Object
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			objects = append(objects, textObject(literal.String()))
			literal.Reset()
		}
	}

	i := 0
	for i < len(input) {
		c := input[i]
		if c != '$' {
			literal.WriteByte(c)
			i++
			continue
		}

		// '$' at end of input is literal.
		if i+1 >= len(input) {
			literal.WriteByte('$')
			i++
			continue
		}

		switch next := input[i+1]; {
		case next == '$':
			// "$$" escapes a literal dollar sign.
			literal.WriteByte('$')
			i += 2

		case next == '{':
			end, err := matchBrace(input, i+1)
			if err != nil {
				return nil, &ParseError{Offset: i, Err: err}
			}
			name, args := splitRef(input[i+2 : end])
			obj, err := compileRef(reg, name, args, i)
			if err != nil {
				return nil, err
			}
			flush()
			objects = append(objects, obj)
			i = end + 1

		case isNameByte(next):
			j := i + 1
			for j < len(input) && isNameByte(input[j]) {
				j++
			}
			obj, err := compileRef(reg, input[i+1:j], "", i)
			if err != nil {
				return nil, err
			}
			flush()
			objects = append(objects, obj)
			i = j

		default:
			literal.WriteByte('$')
			i++
		}
	}
	flush()

	return &Source{objects: objects}, nil
}

// Eval appends the current text of every object to out.
func (s *Source) Eval(out *Output) {
	for _, obj := range s.objects {
		obj.Eval(out)
	}
}

// Close releases objects that hold resources. Idempotent.
func (s *Source) Close() {
	for _, obj := range s.objects {
		if c, ok := obj.(interface{ Close() }); ok {
			c.Close()
		}
	}
}

// compileRef resolves one variable reference into an object.
func compileRef(reg *Registry, name, args string, offset int) (Object, error) {
	factory, ok := reg.Lookup(name)
	if !ok {
		return nil, &ParseError{Offset: offset, Variable: name, Err: ErrUnknownVariable}
	}
	obj, err := factory(reg, args)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// matchBrace returns the index of the '}' matching the '{' at open,
// counting nested braces.
func matchBrace(input string, open int) (int, error) {
	depth := 0
	for i := open; i < len(input); i++ {
		switch input[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, ErrUnbalancedBraces
}

// splitRef separates "name args..." inside a braced reference.
// The argument string keeps embedded whitespace verbatim.
func splitRef(ref string) (name, args string) {
	ref = strings.TrimLeft(ref, " \t")
	sp := strings.IndexAny(ref, " \t")
	if sp < 0 {
		return ref, ""
	}
	return ref[:sp], ref[sp+1:]
}

func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' || b == '_'
}

// textObject is a literal text segment.
type textObject string

func (t textObject) Eval(out *Output) {
	out.WriteString(string(t))
}
