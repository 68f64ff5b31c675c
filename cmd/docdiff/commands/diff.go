package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/erraggy/docdiff/differ"
	"github.com/erraggy/docdiff/document"
	"github.com/erraggy/docdiff/internal/cliutil"
	"github.com/erraggy/docdiff/renderer"
)

// DiffFlags contains flags for the diff command
type DiffFlags struct {
	Format    string
	View      string
	NoCleanup bool
	Timeout   time.Duration
	Output    string
	Strict    bool
	Normalize string
	ExitCode  bool
	Changes   bool
	Verbose   bool
}

// SetupDiffFlags creates and configures a FlagSet for the diff command.
// Returns the FlagSet and a DiffFlags struct with bound flag variables.
func SetupDiffFlags() (*flag.FlagSet, *DiffFlags) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	flags := &DiffFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.View, "view", renderer.ViewMerged.String(), "which side to output: merged, old, or new")
	fs.BoolVar(&flags.NoCleanup, "no-cleanup", false, "keep character-level text edits instead of merging them into words")
	fs.DurationVar(&flags.Timeout, "timeout", 0, "time limit per text run diff (0 means no limit)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "o", "", "output file path (shorthand)")
	fs.BoolVar(&flags.Strict, "strict", false, "reject node types, mark types, and attributes the schema does not know")
	fs.StringVar(&flags.Normalize, "normalize", "", "Unicode normalization applied to text before comparing: NFC, NFD, NFKC, or NFKD")
	fs.BoolVar(&flags.ExitCode, "exit-code", false, "exit with status 1 when the documents differ")
	fs.BoolVar(&flags.Changes, "changes", false, "list changed leaves instead of rendering the document (text format only)")
	fs.BoolVar(&flags.Verbose, "verbose", false, "print document statistics and debug logs to stderr")
	fs.BoolVar(&flags.Verbose, "v", false, "print document statistics and debug logs to stderr (shorthand)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: docdiff diff [flags] <old> <new>\n\n")
		cliutil.Writef(fs.Output(), "Compare two versions of a document and output one merged document in\n")
		cliutil.Writef(fs.Output(), "which deleted and inserted content is marked.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput Formats:\n")
		cliutil.Writef(fs.Output(), "  text (default)  Plain text with [-deleted-] and {+inserted+} markers\n")
		cliutil.Writef(fs.Output(), "  json            Merged document as JSON with diffMark marks\n")
		cliutil.Writef(fs.Output(), "  yaml            Merged document as YAML with diffMark marks\n")
		cliutil.Writef(fs.Output(), "\nViews:\n")
		cliutil.Writef(fs.Output(), "  merged (default)  Both sides with changes marked\n")
		cliutil.Writef(fs.Output(), "  old               The old document, reconstructed from the merge\n")
		cliutil.Writef(fs.Output(), "  new               The new document, reconstructed from the merge\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  docdiff diff v1.json v2.json\n")
		cliutil.Writef(fs.Output(), "  docdiff diff --format json -o merged.json v1.json v2.yaml\n")
		cliutil.Writef(fs.Output(), "  docdiff diff --changes --no-cleanup v1.json v2.json\n")
		cliutil.Writef(fs.Output(), "  docdiff diff --exit-code --normalize NFC v1.json v2.json\n")
		cliutil.Writef(fs.Output(), "\nExit Status:\n")
		cliutil.Writef(fs.Output(), "  0    Success (or no differences with --exit-code)\n")
		cliutil.Writef(fs.Output(), "  1    Error (or differences found with --exit-code)\n")
	}

	return fs, flags
}

// HandleDiff executes the diff command, writing results to stdout.
func HandleDiff(args []string, stdout io.Writer) error {
	fs, flags := SetupDiffFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("diff command requires exactly two file paths")
	}

	sourcePath := fs.Arg(0)
	targetPath := fs.Arg(1)

	if err := ValidateFormat(flags.Format, FormatText, FormatJSON, FormatYAML); err != nil {
		return err
	}
	view, err := renderer.ParseView(flags.View)
	if err != nil {
		return err
	}
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{sourcePath, targetPath}); err != nil {
			return err
		}
	}

	schema := document.DefaultSchema()
	if flags.Strict {
		schema = schema.Strict()
	}

	opts := []differ.Option{
		differ.WithSourceFilePath(sourcePath),
		differ.WithTargetFilePath(targetPath),
		differ.WithSchema(schema),
		differ.WithSemanticCleanup(!flags.NoCleanup),
		differ.WithTextDiffTimeout(flags.Timeout),
		differ.WithLogger(NewLogger(flags.Verbose)),
	}
	if flags.Normalize != "" {
		opts = append(opts, differ.WithNormalizeText(flags.Normalize))
	}

	startTime := time.Now()
	result, err := differ.DiffWithOptions(opts...)
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("comparing documents: %w", err)
	}

	if flags.Verbose {
		OutputVersionHeader()
		OutputDocumentStats("Old", result.SourcePath, result.SourceSize, result.SourceStats)
		OutputDocumentStats("New", result.TargetPath, result.TargetSize, result.TargetStats)
		cliutil.Writef(os.Stderr, "Inserted: %d  Deleted: %d  Unchanged: %d\n",
			result.Stats.Inserted, result.Stats.Deleted, result.Stats.Unchanged)
		cliutil.Writef(os.Stderr, "Total Time: %v\n", totalTime)
	}

	data, err := formatDiff(result, flags, view)
	if err != nil {
		return err
	}
	if err := cliutil.WriteOutput(stdout, flags.Output, data); err != nil {
		return err
	}

	if flags.ExitCode && result.HasChanges {
		return ErrDifferencesFound
	}
	return nil
}

func formatDiff(result *differ.DiffResult, flags *DiffFlags, view renderer.View) ([]byte, error) {
	switch flags.Format {
	case FormatJSON, FormatYAML:
		data, err := document.Encode(renderer.Project(result.Document, view), FormatFromName(flags.Format))
		if err != nil {
			return nil, fmt.Errorf("encoding merged document: %w", err)
		}
		return data, nil
	}

	if !flags.Changes {
		return []byte(renderer.Text(result.Document, view)), nil
	}

	var sb strings.Builder
	if !result.HasChanges {
		sb.WriteString("No differences found\n")
		return []byte(sb.String()), nil
	}
	fmt.Fprintf(&sb, "Changes (%d):\n", len(result.Changes))
	for _, change := range result.Changes {
		fmt.Fprintf(&sb, "  %s\n", change.String())
	}
	return []byte(sb.String()), nil
}
