// Package lua wraps gopher-lua so widget templates can call user-supplied
// Lua functions as variables.
//
// Only the safe standard libraries are opened: scripts compute text for
// display, they do not get io, os.execute, or module loading.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes calls
// from Go; Lua execution itself is single-threaded.
package lua

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// State wraps a sandboxed Lua runtime holding the user's variable script.
type State struct {
	mu     sync.Mutex
	L      *lua.LState
	closed bool
}

// NewState creates a sandboxed Lua state and executes the script at path,
// which is expected to define the global functions templates will call.
// An empty path creates a bare state.
func NewState(path string) (*State, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true, // opened selectively below
	})
	openSafeLibraries(L)

	s := &State{L: L}

	if path != "" {
		if err := s.doWithRecovery(func() error {
			return L.DoFile(path)
		}); err != nil {
			L.Close()
			return nil, fmt.Errorf("load lua script %s: %w", path, err)
		}
	}

	return s, nil
}

// openSafeLibraries opens only safe Lua standard libraries.
// io, os, debug, and package stay closed: display scripts have no business
// touching the filesystem or spawning processes.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// Call invokes a global Lua function with string arguments and returns its
// first result rendered as a string. A function returning nothing yields
// an empty string.
func (s *State) Call(fn string, args ...string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrStateClosed
	}

	fnVal := s.L.GetGlobal(fn)
	if fnVal.Type() != lua.LTFunction {
		return "", fmt.Errorf("%w: %q is %s", ErrNotFunction, fn, fnVal.Type())
	}

	top := s.L.GetTop()
	s.L.Push(fnVal)
	for _, arg := range args {
		s.L.Push(lua.LString(arg))
	}

	var callErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				callErr = fmt.Errorf("lua panic: %v", r)
			}
		}()
		callErr = s.L.PCall(len(args), lua.MultRet, nil)
	}()
	if callErr != nil {
		s.L.SetTop(top)
		return "", callErr
	}

	nRet := s.L.GetTop() - top
	if nRet <= 0 {
		return "", nil
	}
	result := s.L.Get(top + 1)
	s.L.Pop(nRet)

	if result == lua.LNil {
		return "", nil
	}
	return result.String(), nil
}

// DoString executes a chunk of Lua code, for tests and ad-hoc setup.
func (s *State) DoString(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}
	return s.doWithRecovery(func() error {
		return s.L.DoString(code)
	})
}

// Close shuts down the Lua state. Idempotent.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

// doWithRecovery executes a function with panic recovery.
func (s *State) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
