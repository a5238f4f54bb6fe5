package testspec

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// FileSuffix is the fixed name suffix that marks a file as a test spec.
const FileSuffix = ".bicep-test.json"

// Discover walks root recursively and returns every spec file, sorted by path
// ascending. This ordering is the reference ordering for sequential runs and
// reporting.
func Discover(root string) ([]SpecPath, error) {
	var specs []SpecPath

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), FileSuffix) {
			return nil
		}
		specs = append(specs, SpecPath{
			Path:  path,
			Label: strings.TrimSuffix(d.Name(), FileSuffix),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk test directory %s: %w", root, err)
	}

	sort.Slice(specs, func(i, j int) bool { return specs[i].Path < specs[j].Path })
	return specs, nil
}
