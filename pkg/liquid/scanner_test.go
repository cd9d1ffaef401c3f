package liquid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScan_PlainText tests that delimiter-free source is one text token.
func TestScan_PlainText(t *testing.T) {
	tokens, err := scan("hello world")

	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, tokenText, tokens[0].typ)
	assert.Equal(t, "hello world", tokens[0].value)
}

// TestScan_OutputToken tests {{ }} scanning and trimming of inner space.
func TestScan_OutputToken(t *testing.T) {
	tokens, err := scan("a{{ name }}b")

	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, tokenOutput, tokens[1].typ)
	assert.Equal(t, "name", tokens[1].value)
}

// TestScan_TagToken tests {% %} scanning into name and markup.
func TestScan_TagToken(t *testing.T) {
	tokens, err := scan("{% if user.admin and active %}")

	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, tokenTag, tokens[0].typ)
	assert.Equal(t, "if", tokens[0].name)
	assert.Equal(t, "user.admin and active", tokens[0].value)
}

// TestScan_TagWithoutMarkup tests a bare tag like endif.
func TestScan_TagWithoutMarkup(t *testing.T) {
	tokens, err := scan("{% endif %}")

	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "endif", tokens[0].name)
	assert.Equal(t, "", tokens[0].value)
}

// TestScan_UnclosedOutput tests the unclosed {{ error.
func TestScan_UnclosedOutput(t *testing.T) {
	_, err := scan("before {{ name")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnclosedDelimiter)
}

// TestScan_UnclosedTag tests the unclosed {% error.
func TestScan_UnclosedTag(t *testing.T) {
	_, err := scan("{% if x")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnclosedDelimiter)
}

// TestScan_EmptyTag tests that {% %} with no name is rejected.
func TestScan_EmptyTag(t *testing.T) {
	_, err := scan("{%  %}")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyTag)
}

// TestScan_TrimMarkers tests {%- and -%} whitespace folding.
func TestScan_TrimMarkers(t *testing.T) {
	tokens, err := scan("a  \n{%- endif -%}\n  b")

	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, "a", tokens[0].value)
	assert.Equal(t, "endif", tokens[1].name)
	assert.Equal(t, "b", tokens[2].value)
}

// TestScan_AdjacentDelimiters tests back-to-back constructs with no text.
func TestScan_AdjacentDelimiters(t *testing.T) {
	tokens, err := scan("{{ a }}{{ b }}")

	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "a", tokens[0].value)
	assert.Equal(t, "b", tokens[1].value)
}
