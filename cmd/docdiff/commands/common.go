// Package commands provides CLI command handlers for docdiff.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/erraggy/docdiff"
	"github.com/erraggy/docdiff/document"
	"github.com/erraggy/docdiff/internal/cliutil"
)

// Output format constants
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatHTML     = "html"
	FormatTerminal = "terminal"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ErrDifferencesFound is returned by HandleDiff when --exit-code is set and
// the documents differ. The caller exits with status 1 without printing it.
var ErrDifferencesFound = errors.New("differences found")

// ValidateFormat returns an error unless format is one of valid.
func ValidateFormat(format string, valid ...string) error {
	for _, v := range valid {
		if format == v {
			return nil
		}
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %v", format, valid)
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, inputPath := range inputPaths {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}

		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	return RejectSymlinkOutput(filepath.Clean(outputPath))
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatFromName maps a structured output format to a document source format.
func FormatFromName(format string) document.SourceFormat {
	if format == FormatYAML {
		return document.SourceFormatYAML
	}
	return document.SourceFormatJSON
}

// NewLogger returns a debug-level slog-backed logger writing to stderr when
// verbose is set, and a no-op logger otherwise.
func NewLogger(verbose bool) document.Logger {
	if !verbose {
		return document.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return document.NewSlogAdapter(slog.New(handler))
}

// OutputVersionHeader writes the docdiff version to stderr.
func OutputVersionHeader() {
	cliutil.Writef(os.Stderr, "docdiff version: %s\n", docdiff.Version())
}

// OutputDocumentStats writes a document's path, size, and tree statistics
// to stderr.
func OutputDocumentStats(label, path string, size int64, stats document.Stats) {
	cliutil.Writef(os.Stderr, "%s: %s (%s)\n", label, path, document.FormatBytes(size))
	cliutil.Writef(os.Stderr, "  Nodes: %d\n", stats.NodeCount)
	cliutil.Writef(os.Stderr, "  Text Leaves: %d\n", stats.TextLeafCount)
	cliutil.Writef(os.Stderr, "  Max Depth: %d\n", stats.MaxDepth)
}
