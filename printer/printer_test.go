package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minilang-dev/minilang/parser"
	"github.com/minilang-dev/minilang/printer"
)

func parse(t *testing.T, src string) *parser.Block {
	t.Helper()
	prog, err := parser.New(src).Parse()
	require.NoError(t, err)
	return prog
}

func TestPrintIsIdempotent(t *testing.T) {
	src := "let x = 1\nfn f(a, b) {\n  if a < b {\n    return a\n  } else {\n    return b\n  }\n}\n"
	prog := parse(t, src)
	once := printer.Print(prog)

	reparsed := parse(t, once)
	twice := printer.Print(reparsed)

	assert.Equal(t, once, twice)
}

func TestPrintFormatsElseIfChain(t *testing.T) {
	prog := parse(t, `
if a == 1 {
  print(1)
} else if a == 2 {
  print(2)
} else {
  print(3)
}
`)
	out := printer.Print(prog)
	assert.Contains(t, out, "} else if a == 2 {")
	assert.Contains(t, out, "} else {")
}

func TestPrintRendersForRangeAndIndexAssign(t *testing.T) {
	prog := parse(t, `
let a = [1, 2, 3]
for i in 0..3 {
  a[i] = a[i] * 2
}
`)
	out := printer.Print(prog)
	assert.Contains(t, out, "for i in 0..3 {")
	assert.Contains(t, out, "a[i] = a[i] * 2")
}
