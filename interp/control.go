package interp

import "github.com/minilang-dev/minilang/object"

// flow is a statement's result: either "fell through" or "returning with
// value V", per spec.md §9's design note — modeled as an explicit result
// variant rather than a Go panic/exception, analogous to the teacher's
// *objects.ReturnValue wrapper but carried as a return value instead of
// threaded through the value lattice itself.
type flow struct {
	returning bool
	value     object.Value
	line      int // the `return` statement's source line, for diagnostics
}

// fellThrough is the result of a statement that did not return.
func fellThrough() flow { return flow{} }

// returningWith raises the return signal with value v from source line.
func returningWith(v object.Value, line int) flow {
	return flow{returning: true, value: v, line: line}
}
