// Package testutil provides common utility functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/status-plot/pkg/statuslog"
)

// SampleLog is a well-formed log covering every status.
const SampleLog = `0.76,0
0.56,1
0.12,
0.56,2
0.12,2
0.7678,0
0.80,`

// WriteLog writes content to a log file in a fresh temporary directory and
// returns its path.
func WriteLog(t testing.TB, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write log %s: %v", path, err)
	}
	return path
}

// FindStatusCount finds the entry for a status by name in a summary.
// Returns nil if not found.
func FindStatusCount(summary statuslog.Summary, name string) *statuslog.StatusCount {
	for i := range summary.ByStatus {
		if summary.ByStatus[i].Status == name {
			return &summary.ByStatus[i]
		}
	}
	return nil
}
