package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minilang-dev/minilang/parser"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, perr := parser.New(src).Parse()
	require.NoError(t, perr)

	var buf bytes.Buffer
	in := New(&buf)
	err := in.Run(prog)
	return buf.String(), err
}

func TestFactorialRecursion(t *testing.T) {
	out, err := run(t, `
fn f(n) { if n <= 1 { return 1 } return n * f(n-1) }
print(f(5))
`)
	require.NoError(t, err)
	assert.Equal(t, "120\n", out)
}

func TestForRangePrint(t *testing.T) {
	out, err := run(t, `for i in 0..3 { print(i) }`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestForRangeEmptyWhenStartGreaterOrEqualEnd(t *testing.T) {
	out, err := run(t, `for i in 3..3 { print(i) }`)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestAliasedArrayMutationVisibleThroughAllBindings(t *testing.T) {
	out, err := run(t, `
let a = [1, 2, 3]
let b = a
b[0] = 9
print(a[0])
`)
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)
}

func TestShortCircuitAndDoesNotEvaluateRHS(t *testing.T) {
	out, err := run(t, `
fn boom() { return 1/0 }
if false and boom() { print("x") } else { print("ok") }
`)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)
}

func TestFunctionsDoNotCaptureEnclosingScope(t *testing.T) {
	// inner() reads the global x, not outer's local x=2: call frames
	// between the active frame and the global frame are never searched.
	out, err := run(t, `
let x = 1
fn outer() {
  let x = 2
  fn inner() { return x }
  return inner()
}
print(outer())
`)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestFunctionReferencingPurelyLocalNameFailsWithNameError(t *testing.T) {
	_, err := run(t, `
fn outer() {
  let y = 2
  fn inner() { return y }
  return inner()
}
print(outer())
`)
	require.Error(t, err)
	assert.Equal(t, Name, err.(*Error).Kind)
}

func TestStringPlusNumberIsTypeError(t *testing.T) {
	_, err := run(t, `print("x" + 1)`)
	require.Error(t, err)
	assert.Equal(t, Type, err.(*Error).Kind)
}

func TestDivisionByZeroFails(t *testing.T) {
	_, err := run(t, `print(1 / 0)`)
	require.Error(t, err)
	assert.Equal(t, Arithmetic, err.(*Error).Kind)
}

func TestModuloByZeroFails(t *testing.T) {
	_, err := run(t, `print(1 % 0)`)
	require.Error(t, err)
	assert.Equal(t, Arithmetic, err.(*Error).Kind)
}

func TestArityMismatchFails(t *testing.T) {
	_, err := run(t, `
fn add(a, b) { return a + b }
print(add(1))
`)
	require.Error(t, err)
	assert.Equal(t, Arity, err.(*Error).Kind)
}

func TestReturnOutsideFunctionFails(t *testing.T) {
	_, err := run(t, `return 1`)
	require.Error(t, err)
	assert.Equal(t, ControlFlow, err.(*Error).Kind)
}

func TestUnknownNameFails(t *testing.T) {
	_, err := run(t, `print(nope)`)
	require.Error(t, err)
	assert.Equal(t, Name, err.(*Error).Kind)
}

func TestStringIndexingFails(t *testing.T) {
	_, err := run(t, `
let s = "hi"
print(s[0])
`)
	require.Error(t, err)
	assert.Equal(t, Type, err.(*Error).Kind)
}

func TestArrayOutOfRangeIndexFails(t *testing.T) {
	_, err := run(t, `
let a = [1, 2]
print(a[5])
`)
	require.Error(t, err)
	assert.Equal(t, Index, err.(*Error).Kind)
}

func TestNonBoolConditionFails(t *testing.T) {
	_, err := run(t, `if 1 { print("x") }`)
	require.Error(t, err)
	assert.Equal(t, Type, err.(*Error).Kind)
}

func TestLenOfArrayAndString(t *testing.T) {
	out, err := run(t, `
print(len([1, 2, 3]))
print(len("abcd"))
`)
	require.NoError(t, err)
	assert.Equal(t, "3\n4\n", out)
}

func TestNotNotIsIdentity(t *testing.T) {
	out, err := run(t, `print(not not true)`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestWhileLoop(t *testing.T) {
	out, err := run(t, `
let i = 0
while i < 3 {
  print(i)
  i = i + 1
}
`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestArrayConcatenationProducesNewArrayWithSharedElements(t *testing.T) {
	out, err := run(t, `
let a = [1, 2]
let b = [3, 4]
let c = a + b
print(c)
`)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "[1, 2, 3, 4]"))
}

func TestFunctionEqualityIsAlwaysFalse(t *testing.T) {
	out, err := run(t, `
fn f() { return 1 }
print(f == f)
`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestPrintFormatsIntegralNumberWithoutDecimalPoint(t *testing.T) {
	out, err := run(t, `print(103)`)
	require.NoError(t, err)
	assert.Equal(t, "103\n", out)
}
