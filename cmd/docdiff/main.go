package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/erraggy/docdiff"
	"github.com/erraggy/docdiff/cmd/docdiff/commands"
	"github.com/erraggy/docdiff/internal/mcpserver"
)

// validCommands is the list of recognized top-level commands.
var validCommands = []string{"diff", "render", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("docdiff v%s\n", docdiff.Version())
		fmt.Println(docdiff.BuildInfo())
	case "help", "-h", "--help":
		printUsage()
	case "diff":
		err := commands.HandleDiff(os.Args[2:], os.Stdout)
		if errors.Is(err, commands.ErrDifferencesFound) {
			os.Exit(1)
		}
		exitOnError(err)
	case "render":
		exitOnError(commands.HandleRender(os.Args[2:], os.Stdin, os.Stdout))
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := mcpserver.Run(ctx)
		stop()
		exitOnError(err)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the closest valid command within an edit distance
// of 2, or "" when nothing is close enough.
func suggestCommand(input string) string {
	dmp := diffmatchpatch.New()
	best := ""
	bestDistance := 3
	for _, cmd := range validCommands {
		distance := dmp.DiffLevenshtein(dmp.DiffMain(input, cmd, false))
		if distance < bestDistance {
			best = cmd
			bestDistance = distance
		}
	}
	return best
}

func printUsage() {
	fmt.Println(`docdiff - structural diffs for rich-text documents

Usage:
  docdiff <command> [options]

Commands:
  diff        Compare two documents and output a merged document with changes marked
  render      Render a merged document as text, HTML, or coloured terminal output
  mcp         Start an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  docdiff diff v1.json v2.json
  docdiff diff --format json -o merged.json v1.json v2.json
  docdiff render --format html -o report.html merged.json
  docdiff render --format terminal merged.json

Run 'docdiff <command> --help' for more information on a command.`)
}
