package object

// Array is minilang's only mutable, shared container (spec.md §3). The
// Value a name binds to is always *Array — a pointer to this struct — so
// that `let b = a` copies the pointer, not the backing slice: two names
// holding the same *Array alias the same Elements slice, which is exactly
// the sharing spec.md §3/§8 scenario 3 requires without any explicit
// reference-counting machinery.
type Array struct {
	Elements []Value
}

func (a *Array) Type() Type { return ARRAY }

// Len reports the element count.
func (a *Array) Len() int { return len(a.Elements) }

// Concat returns a new Array holding a's elements followed by b's,
// sharing the element values (not copying them) but never the other
// array's backing slice — spec.md §3's "new array, left elements then
// right elements (shallow; elements shared)" for `+` on two Arrays.
func (a *Array) Concat(b *Array) *Array {
	out := make([]Value, 0, len(a.Elements)+len(b.Elements))
	out = append(out, a.Elements...)
	out = append(out, b.Elements...)
	return &Array{Elements: out}
}
