package minilang_test

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/minilang-dev/minilang"
)

// TestGoldenPrograms runs a handful of complete minilang programs covering
// the end-to-end scenarios in spec.md §8 (factorial, array aliasing,
// non-capturing scope, short-circuit evaluation) and snapshots their
// printed output, grounded on CWBudde-go-dws's fixture_test.go use of
// go-snaps for whole-program interpreter coverage.
func TestGoldenPrograms(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{
			name: "factorial",
			src: `
fn fact(n) {
  if n <= 1 { return 1 }
  return n * fact(n - 1)
}
print(fact(6))
`,
		},
		{
			name: "array_aliasing",
			src: `
let a = [1, 2, 3]
let b = a
b[0] = 99
print(a[0])
print(len(a))
`,
		},
		{
			name: "no_capture_falls_back_to_global",
			src: `
let x = 1
fn inner() { return x }
fn outer() {
  let x = 2
  return inner()
}
print(outer())
`,
		},
		{
			name: "short_circuit_or",
			src: `
fn boom() { print("should not run") return true }
if true or boom() {
  print("short-circuited")
}
`,
		},
		{
			name: "for_range_and_while",
			src: `
let total = 0
for i in 0..5 {
  total = total + i
}
let n = 0
while n < 3 {
  print(n)
  n = n + 1
}
print(total)
`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := minilang.Run(tc.src, &buf)
			require.NoError(t, err)
			snaps.MatchSnapshot(t, buf.String())
		})
	}
}

func TestGoldenErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{name: "name_error", src: `print(undefined)`},
		{name: "type_error", src: `print(1 + "a")`},
		{name: "arity_error", src: `fn f(a, b) { return a } print(f(1))`},
		{name: "index_out_of_range", src: `let a = [1, 2] print(a[5])`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := minilang.Run(tc.src, &buf)
			require.Error(t, err)
			snaps.MatchSnapshot(t, err.Error())
		})
	}
}
