// Package builtin implements minilang's built-ins table, grounded on the
// teacher's std.Builtin{Name, Callback} registry shape but closed to the
// two entries spec.md §6 specifies: print and len.
package builtin

import (
	"fmt"
	"io"

	"github.com/minilang-dev/minilang/object"
)

// Fn is a built-in's Go implementation over already-evaluated arguments.
type Fn func(w io.Writer, args []object.Value) (object.Value, error)

// Builtin is a built-in function value. It implements object.Value,
// reusing object.FUNCTION as its type tag — from minilang's point of
// view a built-in is just another callable, per spec.md §4.3's "the
// built-ins table" sitting alongside user Functions in name resolution.
// interp type-switches on the concrete Go type to dispatch the call;
// Arity lets it report a wrong argument count as an arity error the same
// way it does for user functions, without the Call implementation having
// to know about interp's error-kind taxonomy.
type Builtin struct {
	Name  string
	Arity int
	Call  Fn
}

func (b *Builtin) Type() object.Type { return object.FUNCTION }
func (b *Builtin) String() string    { return fmt.Sprintf("<builtin %s>", b.Name) }

// Table returns a fresh built-ins table. Built anew per call so a
// Builtin never aliases state across separate Run calls.
func Table() map[string]object.Value {
	return map[string]object.Value{
		"print": &Builtin{Name: "print", Arity: 1, Call: printFn},
		"len":   &Builtin{Name: "len", Arity: 1, Call: lenFn},
	}
}

func printFn(w io.Writer, args []object.Value) (object.Value, error) {
	fmt.Fprintln(w, args[0].String())
	return object.Nil, nil
}

func lenFn(w io.Writer, args []object.Value) (object.Value, error) {
	switch v := args[0].(type) {
	case *object.Array:
		return &object.Number{Value: float64(v.Len())}, nil
	case *object.String:
		return &object.Number{Value: float64(len(v.Value))}, nil
	default:
		return nil, fmt.Errorf("len expects an Array or String, got %s", v.Type())
	}
}
