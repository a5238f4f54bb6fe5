package testspec

import (
	"encoding/json"
	"fmt"

	"github.com/giantswarm/bicep-testing/internal/assertion"
)

// caseDoc mirrors one element of the modern schema's "tests" array. Assertion
// operands stay raw because spec authors may write strings, numbers, or
// booleans; they are canonicalized by operandString.
type caseDoc struct {
	Name         string `json:"name"`
	Input        string `json:"input"`
	BicepFile    string `json:"bicepFile"`
	FunctionCall string `json:"functionCall"`

	ShouldBe                   json.RawMessage `json:"shouldBe"`
	ShouldNotBe                json.RawMessage `json:"shouldNotBe"`
	ShouldContain              json.RawMessage `json:"shouldContain"`
	ShouldNotContain           json.RawMessage `json:"shouldNotContain"`
	ShouldStartWith            json.RawMessage `json:"shouldStartWith"`
	ShouldEndWith              json.RawMessage `json:"shouldEndWith"`
	ShouldMatch                json.RawMessage `json:"shouldMatch"`
	ShouldBeGreaterThan        json.RawMessage `json:"shouldBeGreaterThan"`
	ShouldBeLessThan           json.RawMessage `json:"shouldBeLessThan"`
	ShouldBeGreaterThanOrEqual json.RawMessage `json:"shouldBeGreaterThanOrEqual"`
	ShouldBeEmpty              json.RawMessage `json:"shouldBeEmpty"`
}

// fileDoc mirrors a whole spec file. The legacy fields overlap with caseDoc
// because a legacy document is itself one case.
type fileDoc struct {
	Description string    `json:"description"`
	Tests       []caseDoc `json:"tests"`

	Name         string          `json:"name"`
	Input        string          `json:"input"`
	BicepFile    string          `json:"bicepFile"`
	FunctionCall string          `json:"functionCall"`
	Expected     json.RawMessage `json:"expected"`
}

// Parse reads a spec file's contents and returns its uniform case model.
// Malformed JSON or a schema violation fails the whole file; per-case
// structural problems are carried on the individual case. An empty "tests"
// array is not an error and yields zero cases.
func Parse(data []byte, label string) (*File, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	// Schema detection needs key presence, not just zero values: "tests": []
	// selects the modern schema even though it decodes to an empty slice.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("malformed spec file: %w", err)
	}

	var doc fileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed spec file: %w", err)
	}

	file := &File{
		Label:       label,
		Description: doc.Description,
	}

	if _, modern := probe["tests"]; modern {
		file.Cases = make([]Case, 0, len(doc.Tests))
		for i, td := range doc.Tests {
			file.Cases = append(file.Cases, parseCase(td, i+1))
		}
		return file, nil
	}

	file.Cases = []Case{parseLegacyCase(doc)}
	return file, nil
}

// parseCase maps one modern-schema record to a Case. ordinal is the 1-based
// position within the file, used for the default name.
func parseCase(td caseDoc, ordinal int) Case {
	c := Case{
		Name:         td.Name,
		Input:        td.Input,
		BicepFile:    td.BicepFile,
		FunctionCall: td.FunctionCall,
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("Test %d", ordinal)
	}

	c.Assertion, c.Err = selectAssertion(td)
	return c
}

func parseLegacyCase(doc fileDoc) Case {
	c := Case{
		Name:         doc.Name,
		Input:        doc.Input,
		BicepFile:    doc.BicepFile,
		FunctionCall: doc.FunctionCall,
	}
	if c.Name == "" {
		c.Name = "Test 1"
	}

	if !present(doc.Expected) {
		c.Err = fmt.Errorf("legacy test is missing 'expected'")
		return c
	}

	// The legacy schema has exactly one assertion kind.
	expected, err := operandString(doc.Expected)
	if err != nil {
		c.Err = err
		return c
	}
	c.Assertion = assertion.Assertion{Kind: assertion.Equals, Expected: expected}
	return c
}

// selectAssertion scans the eleven reserved keys in fixed priority order and
// requires exactly one to be present. The order matches assertion.Kinds and
// must stay stable for reproducibility.
func selectAssertion(td caseDoc) (assertion.Assertion, error) {
	operands := []struct {
		kind assertion.Kind
		raw  json.RawMessage
	}{
		{assertion.Equals, td.ShouldBe},
		{assertion.NotEquals, td.ShouldNotBe},
		{assertion.Contains, td.ShouldContain},
		{assertion.NotContains, td.ShouldNotContain},
		{assertion.StartsWith, td.ShouldStartWith},
		{assertion.EndsWith, td.ShouldEndWith},
		{assertion.MatchesRegex, td.ShouldMatch},
		{assertion.GreaterThan, td.ShouldBeGreaterThan},
		{assertion.LessThan, td.ShouldBeLessThan},
		{assertion.GreaterThanOrEqual, td.ShouldBeGreaterThanOrEqual},
		{assertion.IsEmpty, td.ShouldBeEmpty},
	}

	var found []assertion.Kind
	var selected assertion.Assertion
	for _, op := range operands {
		if !present(op.raw) {
			continue
		}
		found = append(found, op.kind)
		if len(found) > 1 {
			continue
		}

		selected = assertion.Assertion{Kind: op.kind}
		if op.kind != assertion.IsEmpty {
			expected, err := operandString(op.raw)
			if err != nil {
				return assertion.Assertion{}, err
			}
			selected.Expected = expected
		}
	}

	switch len(found) {
	case 0:
		return assertion.Assertion{}, fmt.Errorf("test must declare exactly one assertion")
	case 1:
		return selected, nil
	default:
		return assertion.Assertion{}, fmt.Errorf("test declares multiple assertions: %s and %s", found[0], found[1])
	}
}

// present reports whether an assertion key was supplied with a non-null value.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// operandString canonicalizes an assertion operand. JSON strings are taken
// verbatim; numbers, booleans, and collections are re-marshaled, which renders
// them the way the evaluator prints them (3, not 3.0).
func operandString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", fmt.Errorf("invalid assertion operand %s: %w", raw, err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("invalid assertion operand %s: %w", raw, err)
	}
	return string(out), nil
}
