// Package fs provides file-based output for summaries.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes summaries as UTF-8 text files.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that resolves relative paths against baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Path resolves name against the writer's base directory.
// Absolute names are returned unchanged.
func (w *Writer) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(w.baseDir, name)
}

// WriteSummary writes content to name, creating parent directories and
// replacing any existing file.
func (w *Writer) WriteSummary(name, content string) error {
	fullPath := w.Path(name)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
