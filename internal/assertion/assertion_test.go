package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateStringKinds(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected string
		actual   string
		want     bool
	}{
		{"equals match", Equals, "'ab'", "'ab'", true},
		{"equals mismatch", Equals, "'ab'", "'ba'", false},
		{"equals multiline crlf operand", Equals, "a\r\nb", "a\nb", true},
		{"not equals", NotEquals, "'ab'", "'ba'", true},
		{"not equals same", NotEquals, "'ab'", "'ab'", false},
		{"contains", Contains, "bc", "'abcd'", true},
		{"contains missing", Contains, "xy", "'abcd'", false},
		{"not contains", NotContains, "xy", "'abcd'", true},
		{"not contains present", NotContains, "bc", "'abcd'", false},
		{"starts with", StartsWith, "'ab", "'abcd'", true},
		{"starts with mismatch", StartsWith, "cd'", "'abcd'", false},
		{"ends with", EndsWith, "cd'", "'abcd'", true},
		{"ends with mismatch", EndsWith, "'ab", "'abcd'", false},
		{"regex unanchored", MatchesRegex, "b+c", "'abbbcd'", true},
		{"regex no match", MatchesRegex, "^z", "'abcd'", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(Assertion{Kind: tt.kind, Expected: tt.expected}, tt.actual)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateOrderingKinds(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected string
		actual   string
		want     bool
	}{
		{"greater than", GreaterThan, "3", "4", true},
		{"greater than equal values", GreaterThan, "3", "3", false},
		{"less than", LessThan, "10", "9.5", true},
		{"less than false", LessThan, "2", "9", false},
		{"gte equal", GreaterThanOrEqual, "3", "3", true},
		{"gte below", GreaterThanOrEqual, "3", "2.9", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(Assertion{Kind: tt.kind, Expected: tt.expected}, tt.actual)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateOrderingNonNumericActual(t *testing.T) {
	_, err := Evaluate(Assertion{Kind: GreaterThan, Expected: "3"}, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not numeric")
}

func TestEvaluateOrderingNonNumericExpected(t *testing.T) {
	_, err := Evaluate(Assertion{Kind: LessThan, Expected: "many"}, "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not numeric")
}

func TestEvaluateInvalidRegex(t *testing.T) {
	_, err := Evaluate(Assertion{Kind: MatchesRegex, Expected: "[invalid("}, "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex pattern")
}

func TestEvaluateIsEmpty(t *testing.T) {
	empty := []string{"", "   ", "''", `""`, "[]", "{}"}
	for _, actual := range empty {
		got, err := Evaluate(Assertion{Kind: IsEmpty}, actual)
		require.NoError(t, err)
		assert.True(t, got, "actual %q", actual)
	}

	// "0" is textually non-empty even though it might denote an empty-ish
	// value semantically.
	nonEmpty := []string{"0", "null", "[1]", "{ }x"}
	for _, actual := range nonEmpty {
		got, err := Evaluate(Assertion{Kind: IsEmpty}, actual)
		require.NoError(t, err)
		assert.False(t, got, "actual %q", actual)
	}
}

func TestExplainMentionsOperands(t *testing.T) {
	msg := Explain(Assertion{Kind: Equals, Expected: "3"}, "4")
	assert.Contains(t, msg, `"3"`)
	assert.Contains(t, msg, `"4"`)

	msg = Explain(Assertion{Kind: GreaterThan, Expected: "10"}, "9")
	assert.Contains(t, msg, "greater than 10")
	assert.Contains(t, msg, `"9"`)

	msg = Explain(Assertion{Kind: IsEmpty}, "x")
	assert.Contains(t, msg, "expected empty output")
}

func TestKindsPriorityOrder(t *testing.T) {
	require.Len(t, Kinds, 11)
	assert.Equal(t, Equals, Kinds[0])
	assert.Equal(t, IsEmpty, Kinds[10])
}
