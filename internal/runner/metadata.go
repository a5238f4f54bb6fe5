package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// WriteRunMetadata writes a machine-readable record of a completed run to
// outputDir/<run id>/results.json and returns the file path. The textual
// report stays the primary interface; this is an additive artifact for
// tooling that wants structured output.
func WriteRunMetadata(outputDir string, results []Result, sum Summary) (string, error) {
	runID := fmt.Sprintf("run_%s", time.Now().Format("20060102-150405"))

	outputPath := filepath.Join(outputDir, runID)
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	metadata := map[string]interface{}{
		"id":        runID,
		"timestamp": time.Now(),
		"summary":   sum,
		"cases":     results,
	}

	data, err := json.MarshalIndent(metadata, "", "    ")
	if err != nil {
		return "", err
	}

	resultsFile := filepath.Join(outputPath, "results.json")
	if err := os.WriteFile(resultsFile, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write run metadata: %w", err)
	}

	return resultsFile, nil
}
