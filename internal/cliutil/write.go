// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/docdiff/internal/fileutil"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// WriteOutput writes data to outputPath, or to stdout when outputPath is empty.
// Files are created with owner-only permissions since documents may hold
// private content.
func WriteOutput(stdout io.Writer, outputPath string, data []byte) error {
	return WriteOutputMode(stdout, outputPath, data, fileutil.OwnerReadWrite)
}

// WriteOutputMode is WriteOutput with an explicit file mode.
func WriteOutputMode(stdout io.Writer, outputPath string, data []byte, perm os.FileMode) error {
	if outputPath == "" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(outputPath, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
