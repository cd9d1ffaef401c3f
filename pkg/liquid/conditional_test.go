package liquid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderSource(t *testing.T, source string, vars map[string]any) string {
	t.Helper()
	out, err := NewEngine().ParseAndRender(source, vars)
	require.NoError(t, err)
	return out
}

// TestIf_TrueBranch tests that a truthy guard renders its body.
func TestIf_TrueBranch(t *testing.T) {
	out := renderSource(t, "{% if ok %}yes{% endif %}", map[string]any{"ok": true})

	assert.Equal(t, "yes", out)
}

// TestIf_NoMatchRendersNothing tests that no matching branch yields
// empty output.
func TestIf_NoMatchRendersNothing(t *testing.T) {
	out := renderSource(t, "a{% if ok %}yes{% endif %}b", map[string]any{"ok": false})

	assert.Equal(t, "ab", out)
}

// TestIf_ElseBranch tests fallback to else when no guard matches.
func TestIf_ElseBranch(t *testing.T) {
	src := "{% if n > 10 %}big{% elsif n > 5 %}medium{% else %}small{% endif %}"

	assert.Equal(t, "big", renderSource(t, src, map[string]any{"n": 11}))
	assert.Equal(t, "medium", renderSource(t, src, map[string]any{"n": 7}))
	assert.Equal(t, "small", renderSource(t, src, map[string]any{"n": 2}))
}

// TestIf_FirstMatchWins tests that only the first matching branch
// renders even when later guards would also match.
func TestIf_FirstMatchWins(t *testing.T) {
	src := "{% if n > 1 %}first{% elsif n > 0 %}second{% endif %}"

	out := renderSource(t, src, map[string]any{"n": 5})

	assert.Equal(t, "first", out)
}

// TestIf_TruthinessOfValues tests that only nil and false are falsy.
func TestIf_TruthinessOfValues(t *testing.T) {
	src := "{% if v %}t{% else %}f{% endif %}"

	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, "f"},
		{"false", false, "f"},
		{"true", true, "t"},
		{"zero", 0, "t"},
		{"empty string", "", "t"},
		{"empty slice", []any{}, "t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderSource(t, src, map[string]any{"v": tt.v})
			assert.Equal(t, tt.want, out)
		})
	}
}

// TestIf_UndefinedVariableIsFalsy tests that an unbound guard variable
// behaves as nil.
func TestIf_UndefinedVariableIsFalsy(t *testing.T) {
	out := renderSource(t, "{% if missing %}t{% else %}f{% endif %}", nil)

	assert.Equal(t, "f", out)
}

// TestIf_RightAssociativeGuard tests precedence-free and/or inside a
// guard.
func TestIf_RightAssociativeGuard(t *testing.T) {
	src := "{% if true or false and false %}t{% else %}f{% endif %}"

	out := renderSource(t, src, nil)

	assert.Equal(t, "t", out)
}

// TestIf_Nested tests an if construct inside a branch body.
func TestIf_Nested(t *testing.T) {
	src := "{% if outer %}[{% if inner %}both{% else %}outer only{% endif %}]{% endif %}"

	assert.Equal(t, "[both]", renderSource(t, src, map[string]any{"outer": true, "inner": true}))
	assert.Equal(t, "[outer only]", renderSource(t, src, map[string]any{"outer": true, "inner": false}))
	assert.Equal(t, "", renderSource(t, src, map[string]any{"outer": false, "inner": true}))
}

// TestIf_ElsifAfterElse tests that elsif after else is a syntax error.
func TestIf_ElsifAfterElse(t *testing.T) {
	src := "{% if a %}1{% else %}2{% elsif b %}3{% endif %}"

	_, err := NewEngine().ParseString("t", src)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrElsifAfterElse)
}

// TestIf_DuplicateElse tests that a second else is a syntax error.
func TestIf_DuplicateElse(t *testing.T) {
	src := "{% if a %}1{% else %}2{% else %}3{% endif %}"

	_, err := NewEngine().ParseString("t", src)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateElse)
}

// TestIf_Unterminated tests that a missing endif is a syntax error.
func TestIf_Unterminated(t *testing.T) {
	_, err := NewEngine().ParseString("t", "{% if a %}body")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnterminatedIf)
}

// TestIf_DanglingBranchTags tests elsif/else/endif outside any if.
func TestIf_DanglingBranchTags(t *testing.T) {
	for _, src := range []string{
		"{% endif %}",
		"{% else %}",
		"{% elsif x %}",
	} {
		_, err := NewEngine().ParseString("t", src)
		require.Error(t, err, "source %q", src)
		assert.ErrorIs(t, err, ErrDanglingTag, "source %q", src)
	}
}

// TestIf_BlankConstructStripped tests that a construct whose branches
// hold only whitespace renders nothing at all.
func TestIf_BlankConstructStripped(t *testing.T) {
	src := "a{% if ok %}\n   \n{% else %}\t{% endif %}b"

	assert.Equal(t, "ab", renderSource(t, src, map[string]any{"ok": true}))
	assert.Equal(t, "ab", renderSource(t, src, map[string]any{"ok": false}))
}

// TestIf_NonBlankConstructKeepsWhitespace tests that whitespace
// survives when any branch has real content.
func TestIf_NonBlankConstructKeepsWhitespace(t *testing.T) {
	src := "a{% if ok %}\n{% else %}x{% endif %}b"

	assert.Equal(t, "a\nb", renderSource(t, src, map[string]any{"ok": true}))
}

// TestIf_GuardSyntaxErrorPropagates tests that a bad guard fails the
// whole parse.
func TestIf_GuardSyntaxErrorPropagates(t *testing.T) {
	_, err := NewEngine().ParseString("t", "{% if and x %}y{% endif %}")

	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, "if", synErr.Tag)
}

// TestIf_ComparatorGuards tests each comparator end to end.
func TestIf_ComparatorGuards(t *testing.T) {
	vars := map[string]any{"n": 5, "s": "hello world", "tags": []any{"a", "b"}}

	tests := []struct {
		guard string
		want  string
	}{
		{"n == 5", "t"},
		{"n != 5", "f"},
		{"n < 10", "t"},
		{"n > 10", "f"},
		{"n <= 5", "t"},
		{"n >= 6", "f"},
		{"s contains 'world'", "t"},
		{"tags contains 'b'", "t"},
		{"tags contains 'z'", "f"},
	}

	for _, tt := range tests {
		t.Run(tt.guard, func(t *testing.T) {
			src := "{% if " + tt.guard + " %}t{% else %}f{% endif %}"
			assert.Equal(t, tt.want, renderSource(t, src, vars))
		})
	}
}
