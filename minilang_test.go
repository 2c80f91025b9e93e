package minilang

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFactorial(t *testing.T) {
	var buf bytes.Buffer
	err := Run(`
fn f(n) { if n <= 1 { return 1 } return n * f(n-1) }
print(f(5))
`, &buf)
	require.NoError(t, err)
	assert.Equal(t, "120\n", buf.String())
}

func TestRunSurfacesParseErrorsBeforeExecuting(t *testing.T) {
	var buf bytes.Buffer
	err := Run(`let x = )`, &buf)
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestRunSurfacesLexErrors(t *testing.T) {
	var buf bytes.Buffer
	err := Run(`let x = "unterminated`, &buf)
	assert.Error(t, err)
}
