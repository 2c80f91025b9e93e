package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/minilang-dev/minilang/lexer"
)

func TestTokensJSONRoundTripsThroughGJSON(t *testing.T) {
	doc, err := tokensJSON(lexer.New(`let x = 1`))
	require.NoError(t, err)

	tokens := gjson.Parse(doc).Array()
	require.Len(t, tokens, 5) // let, x, =, 1, EOF

	assert.Equal(t, "let", tokens[0].Get("type").String())
	assert.Equal(t, "IDENT", tokens[1].Get("type").String())
	assert.Equal(t, "x", tokens[1].Get("literal").String())
	assert.Equal(t, float64(1), tokens[2].Get("line").Num)
	assert.Equal(t, "EOF", tokens[4].Get("type").String())
}
