package testspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/bicep-testing/internal/assertion"
)

func TestParseModernSchema(t *testing.T) {
	data := []byte(`{
		"description": "string functions",
		"tests": [
			{"name": "len3", "input": "length([1,2,3])", "shouldBe": "3"},
			{"input": "concat('a','b')", "shouldContain": "ab"}
		]
	}`)

	file, err := Parse(data, "strings")
	require.NoError(t, err)

	assert.Equal(t, "strings", file.Label)
	assert.Equal(t, "string functions", file.Description)
	require.Len(t, file.Cases, 2)

	c := file.Cases[0]
	require.NoError(t, c.Err)
	assert.Equal(t, "len3", c.Name)
	assert.Equal(t, "length([1,2,3])", c.Input)
	assert.Equal(t, assertion.Equals, c.Assertion.Kind)
	assert.Equal(t, "3", c.Assertion.Expected)

	// Unnamed cases get a positional label.
	c = file.Cases[1]
	require.NoError(t, c.Err)
	assert.Equal(t, "Test 2", c.Name)
	assert.Equal(t, assertion.Contains, c.Assertion.Kind)
}

func TestParseLegacySchema(t *testing.T) {
	data := []byte(`{"input": "concat('a','b')", "expected": "'ab'"}`)

	file, err := Parse(data, "legacy")
	require.NoError(t, err)
	require.Len(t, file.Cases, 1)

	c := file.Cases[0]
	require.NoError(t, c.Err)
	assert.Equal(t, "Test 1", c.Name)
	assert.Equal(t, "concat('a','b')", c.Input)
	assert.Equal(t, assertion.Equals, c.Assertion.Kind)
	assert.Equal(t, "'ab'", c.Assertion.Expected)
}

func TestParseLegacyLibraryCall(t *testing.T) {
	data := []byte(`{"bicepFile": "lib/util.bicep", "functionCall": "double(21)", "expected": "42"}`)

	file, err := Parse(data, "lib")
	require.NoError(t, err)
	require.Len(t, file.Cases, 1)

	c := file.Cases[0]
	require.NoError(t, c.Err)
	assert.Equal(t, "lib/util.bicep", c.BicepFile)
	assert.Equal(t, "double(21)", c.FunctionCall)
}

func TestParseLegacyMissingExpected(t *testing.T) {
	data := []byte(`{"input": "1 + 1"}`)

	file, err := Parse(data, "bad")
	require.NoError(t, err)
	require.Len(t, file.Cases, 1)
	require.Error(t, file.Cases[0].Err)
	assert.Contains(t, file.Cases[0].Err.Error(), "expected")
}

func TestParseEmptyTestsArray(t *testing.T) {
	// "tests": [] still selects the modern schema: zero cases, not a legacy
	// document and not an error.
	data := []byte(`{"description": "nothing yet", "tests": []}`)

	file, err := Parse(data, "empty")
	require.NoError(t, err)
	assert.Empty(t, file.Cases)
}

func TestParseDuplicateAssertionKeys(t *testing.T) {
	data := []byte(`{
		"tests": [
			{"input": "1", "shouldBe": "1", "shouldContain": "1"}
		]
	}`)

	file, err := Parse(data, "dup")
	require.NoError(t, err)
	require.Len(t, file.Cases, 1)

	c := file.Cases[0]
	require.Error(t, c.Err)
	assert.Contains(t, c.Err.Error(), "multiple assertions")
	assert.Contains(t, c.Err.Error(), "shouldBe")
	assert.Contains(t, c.Err.Error(), "shouldContain")
}

func TestParseMissingAssertion(t *testing.T) {
	data := []byte(`{"tests": [{"input": "1"}]}`)

	file, err := Parse(data, "none")
	require.NoError(t, err)
	require.Len(t, file.Cases, 1)
	require.Error(t, file.Cases[0].Err)
	assert.Contains(t, file.Cases[0].Err.Error(), "exactly one assertion")
}

func TestParseNullAssertionIsAbsent(t *testing.T) {
	data := []byte(`{"tests": [{"input": "1", "shouldBe": null, "shouldContain": "1"}]}`)

	file, err := Parse(data, "null")
	require.NoError(t, err)
	require.Len(t, file.Cases, 1)

	c := file.Cases[0]
	require.NoError(t, c.Err)
	assert.Equal(t, assertion.Contains, c.Assertion.Kind)
}

func TestParseNumericOperand(t *testing.T) {
	data := []byte(`{"tests": [{"input": "length([1,2,3])", "shouldBe": 3}]}`)

	file, err := Parse(data, "num")
	require.NoError(t, err)
	require.Len(t, file.Cases, 1)
	require.NoError(t, file.Cases[0].Err)
	assert.Equal(t, "3", file.Cases[0].Assertion.Expected)
}

func TestParseIsEmptyMarker(t *testing.T) {
	data := []byte(`{"tests": [{"input": "filter([], x => true)", "shouldBeEmpty": true}]}`)

	file, err := Parse(data, "empty-assert")
	require.NoError(t, err)
	require.Len(t, file.Cases, 1)

	c := file.Cases[0]
	require.NoError(t, c.Err)
	assert.Equal(t, assertion.IsEmpty, c.Assertion.Kind)
	assert.Empty(t, c.Assertion.Expected)
}

func TestParseMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"tests": [`), "broken")
	assert.Error(t, err)
}

func TestParseSchemaViolation(t *testing.T) {
	// "tests" must be an array.
	_, err := Parse([]byte(`{"tests": "not-an-array"}`), "bad-shape")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestValidateAcceptsBothSchemas(t *testing.T) {
	assert.NoError(t, Validate([]byte(`{"input": "1", "expected": "1"}`)))
	assert.NoError(t, Validate([]byte(`{"tests": [{"input": "1", "shouldBe": "1"}]}`)))
}
