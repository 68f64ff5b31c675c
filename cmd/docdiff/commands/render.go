package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/erraggy/docdiff/document"
	"github.com/erraggy/docdiff/internal/cliutil"
	"github.com/erraggy/docdiff/internal/fileutil"
	"github.com/erraggy/docdiff/renderer"
)

// RenderFlags contains flags for the render command
type RenderFlags struct {
	Format string
	View   string
	Output string
	Strict bool
}

// SetupRenderFlags creates and configures a FlagSet for the render command.
// Returns the FlagSet and a RenderFlags struct with bound flag variables.
func SetupRenderFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := &RenderFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, html, or terminal")
	fs.StringVar(&flags.View, "view", renderer.ViewMerged.String(), "which side to render: merged, old, or new")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "o", "", "output file path (shorthand)")
	fs.BoolVar(&flags.Strict, "strict", false, "reject node types, mark types, and attributes the schema does not know")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: docdiff render [flags] <file>\n\n")
		cliutil.Writef(fs.Output(), "Render a merged document produced by 'docdiff diff --format json|yaml'.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput Formats:\n")
		cliutil.Writef(fs.Output(), "  text (default)  Plain text with [-deleted-] and {+inserted+} markers\n")
		cliutil.Writef(fs.Output(), "  html            HTML with <ins> and <del> around changed content\n")
		cliutil.Writef(fs.Output(), "  terminal        Coloured output: inserted green, deleted red and struck through\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  docdiff render merged.json\n")
		cliutil.Writef(fs.Output(), "  docdiff render --format html -o report.html merged.json\n")
		cliutil.Writef(fs.Output(), "  docdiff render --format terminal --view new merged.yaml\n")
		cliutil.Writef(fs.Output(), "  docdiff diff --format json v1.json v2.json | docdiff render --format terminal -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' to read the document from stdin\n")
		cliutil.Writef(fs.Output(), "  - Terminal colours are disabled when output is not a terminal\n")
	}

	return fs, flags
}

// HandleRender executes the render command, reading stdin when the file
// argument is "-" and writing to stdout.
func HandleRender(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, flags := SetupRenderFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("render command requires exactly one file path")
	}

	inputPath := fs.Arg(0)

	if err := ValidateFormat(flags.Format, FormatText, FormatHTML, FormatTerminal); err != nil {
		return err
	}
	view, err := renderer.ParseView(flags.View)
	if err != nil {
		return err
	}
	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{inputPath}); err != nil {
			return err
		}
	}

	schema := document.DefaultSchema()
	if flags.Strict {
		schema = schema.Strict()
	}
	opts := []document.Option{document.WithSchema(schema)}
	if inputPath == StdinFilePath {
		opts = append(opts, document.WithReader(stdin), document.WithSourceName("<stdin>"))
	} else {
		opts = append(opts, document.WithFilePath(inputPath))
	}

	result, err := document.ParseWithOptions(opts...)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	var out string
	perm := fileutil.OwnerReadWrite
	switch flags.Format {
	case FormatHTML:
		out = renderer.HTML(renderer.Project(result.Document, view))
		perm = fileutil.ReadableByAll
	case FormatTerminal:
		if flags.Output != "" {
			// no escape codes in files
			out = renderer.Text(result.Document, view)
		} else {
			out = renderer.Terminal(result.Document, view, renderer.WithOutput(stdout))
		}
	default:
		out = renderer.Text(result.Document, view)
	}

	return cliutil.WriteOutputMode(stdout, flags.Output, []byte(out), perm)
}
