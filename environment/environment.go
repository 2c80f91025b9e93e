// Package environment implements minilang's name-resolution discipline:
// spec.md §4.3's three-tier lookup (active call frame, global frame,
// built-ins table), grounded on the teacher's scope.Scope Bind/Assign/
// LookUp method shapes but deliberately not a generic parent chain — see
// DESIGN.md for why the chain-walking and const/let-type machinery were
// dropped.
package environment

import "github.com/minilang-dev/minilang/object"

// Frame is a single mapping from name to value: either the global frame
// or one call activation, per spec.md §4.
type Frame struct {
	vars map[string]object.Value
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{vars: make(map[string]object.Value)}
}

func (f *Frame) get(name string) (object.Value, bool) {
	v, ok := f.vars[name]
	return v, ok
}

func (f *Frame) set(name string, val object.Value) {
	f.vars[name] = val
}

// Builtins is the read-only built-in function table, consulted last
// during name resolution and never rebindable.
type Builtins map[string]object.Value

// Env holds the three tiers spec.md §4.3 names: the active call frame (nil
// at top level, where Global is also the active frame), the global frame,
// and the built-ins table. There is no walk of intermediate call frames —
// user functions do not capture their defining environment.
type Env struct {
	Global   *Frame
	Active   *Frame
	Builtins Builtins
}

// New returns an Env seeded with an empty global frame and the given
// built-ins table.
func New(builtins Builtins) *Env {
	return &Env{Global: NewFrame(), Builtins: builtins}
}

func (e *Env) active() *Frame {
	if e.Active != nil {
		return e.Active
	}
	return e.Global
}

// Lookup resolves name: active frame, then global frame, then built-ins.
// The second result is false if name is bound nowhere.
func (e *Env) Lookup(name string) (object.Value, bool) {
	if e.Active != nil {
		if v, ok := e.Active.get(name); ok {
			return v, true
		}
	}
	if v, ok := e.Global.get(name); ok {
		return v, true
	}
	v, ok := e.Builtins[name]
	return v, ok
}

// Bind creates or rebinds name in the active frame. This is the target of
// `let`, `fn`, and the `for` loop variable.
func (e *Env) Bind(name string, val object.Value) {
	e.active().set(name, val)
}

// Assign updates an existing binding for name in the nearest frame that
// already binds it, active-frame-first then global-frame, per spec.md
// §4.3. It reports false (and writes nothing) if no such frame exists —
// the caller surfaces this as an unknown-name error.
func (e *Env) Assign(name string, val object.Value) bool {
	if e.Active != nil {
		if _, ok := e.Active.get(name); ok {
			e.Active.set(name, val)
			return true
		}
	}
	if _, ok := e.Global.get(name); ok {
		e.Global.set(name, val)
		return true
	}
	return false
}

// PushFrame activates fr as the current call frame and returns the
// previously active frame, so the caller can restore it. Per spec.md
// §4.4, every call pushes exactly one frame and pops it on every exit
// path, normal or early-return.
func (e *Env) PushFrame(fr *Frame) (prev *Frame) {
	prev = e.Active
	e.Active = fr
	return prev
}

// PopFrame restores prev as the active frame.
func (e *Env) PopFrame(prev *Frame) {
	e.Active = prev
}
