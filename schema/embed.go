// Package schema embeds the JSON schema for bicep test spec files.
package schema

import "embed"

// FS holds the embedded schema documents.
//
//go:embed bicep-test.schema.json
var FS embed.FS
