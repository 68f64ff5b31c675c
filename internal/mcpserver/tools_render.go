package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/docdiff/renderer"
)

type renderInput struct {
	Document docInput `json:"document"         jsonschema:"A merged document produced by diff (or any document)"`
	Format   string   `json:"format,omitempty" jsonschema:"Output format: text (default) or html"`
	View     string   `json:"view,omitempty"   jsonschema:"Which side to render: merged (default), old, or new"`
}

type renderOutput struct {
	Format string `json:"format"`
	View   string `json:"view"`
	Output string `json:"output"`
}

func handleRender(_ context.Context, _ *mcp.CallToolRequest, input renderInput) (*mcp.CallToolResult, renderOutput, error) {
	view := renderer.ViewMerged
	if input.View != "" {
		v, err := renderer.ParseView(input.View)
		if err != nil {
			return errResult(err), renderOutput{}, nil
		}
		view = v
	}

	format := strings.ToLower(input.Format)
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "html" {
		return errResult(fmt.Errorf("invalid format %q; valid values: text, html", input.Format)), renderOutput{}, nil
	}

	result, err := input.Document.resolve()
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}

	output := renderOutput{Format: format, View: view.String()}
	switch format {
	case "html":
		output.Output = renderer.HTML(renderer.Project(result.Document, view))
	default:
		output.Output = renderer.Text(result.Document, view)
	}
	return nil, output, nil
}
