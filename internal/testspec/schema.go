package testspec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/giantswarm/bicep-testing/schema"
)

var (
	specSchema  *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

// compileSchema compiles the embedded spec-file schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := schemafs.FS.ReadFile("bicep-test.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read spec schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal spec schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("bicep-test.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add spec schema resource: %w", err)
			return
		}

		specSchema, compileErr = compiler.Compile("bicep-test.schema.json")
	})

	return compileErr
}

// Validate checks spec file contents against the embedded JSON schema. The
// schema enforces gross shape (field types, tests being an array); the
// exactly-one-assertion and input invariants are enforced by the parser, which
// produces more precise messages.
func Validate(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("malformed spec file: %w", err)
	}

	if err := specSchema.Validate(v); err != nil {
		return fmt.Errorf("spec validation failed: %w", err)
	}

	return nil
}
