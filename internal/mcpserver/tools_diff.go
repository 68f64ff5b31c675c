package mcpserver

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/docdiff/differ"
	"github.com/erraggy/docdiff/renderer"
)

type diffInput struct {
	Old             docInput `json:"old"                        jsonschema:"The original document"`
	New             docInput `json:"new"                        jsonschema:"The revised document to compare against the original"`
	SemanticCleanup *bool    `json:"semantic_cleanup,omitempty" jsonschema:"Merge character-level edits into word-sized ones (default from DOCDIFF_SEMANTIC_CLEANUP, true)"`
	IncludeDocument bool     `json:"include_document,omitempty" jsonschema:"Return the merged document as JSON with diff marks"`
	Offset          int      `json:"offset,omitempty"           jsonschema:"Skip the first N changes"`
	Limit           int      `json:"limit,omitempty"            jsonschema:"Maximum number of changes to return (default from DOCDIFF_CHANGE_LIMIT)"`
}

type diffChange struct {
	Type     string `json:"type"`
	Path     string `json:"path"`
	NodeType string `json:"node_type"`
	Text     string `json:"text,omitempty"`
}

type diffOutput struct {
	HasChanges   bool         `json:"has_changes"`
	Inserted     int          `json:"inserted"`
	Deleted      int          `json:"deleted"`
	Unchanged    int          `json:"unchanged"`
	TotalChanges int          `json:"total_changes"`
	Returned     int          `json:"returned"`
	Changes      []diffChange `json:"changes,omitempty"`
	MergedText   string       `json:"merged_text"`
	MergedDoc    string       `json:"merged_document,omitempty"`
	Summary      string       `json:"summary"`
}

func handleDiff(_ context.Context, _ *mcp.CallToolRequest, input diffInput) (*mcp.CallToolResult, diffOutput, error) {
	oldResult, err := input.Old.resolve()
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}
	newResult, err := input.New.resolve()
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	cleanup := cfg.SemanticCleanup
	if input.SemanticCleanup != nil {
		cleanup = *input.SemanticCleanup
	}

	result, err := differ.DiffWithOptions(
		differ.WithSourceParsed(*oldResult),
		differ.WithTargetParsed(*newResult),
		differ.WithSchema(schema()),
		differ.WithSemanticCleanup(cleanup),
		differ.WithTextDiffTimeout(cfg.TextDiffTimeout),
	)
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	page := paginate(result.Changes, input.Offset, input.Limit)
	output := diffOutput{
		HasChanges:   result.HasChanges,
		Inserted:     result.Stats.Inserted,
		Deleted:      result.Stats.Deleted,
		Unchanged:    result.Stats.Unchanged,
		TotalChanges: len(result.Changes),
		Returned:     len(page),
		Changes:      makeSlice[diffChange](len(page)),
		MergedText:   renderer.Text(result.Document, renderer.ViewMerged),
	}
	for _, c := range page {
		output.Changes = append(output.Changes, diffChange{
			Type:     c.Type.String(),
			Path:     c.JSONPath,
			NodeType: c.NodeType,
			Text:     c.Text,
		})
	}

	if input.IncludeDocument {
		data, err := json.Marshal(result.Document)
		if err != nil {
			return errResult(err), diffOutput{}, nil
		}
		output.MergedDoc = string(data)
	}

	output.Summary = buildDiffSummary(output)
	return nil, output, nil
}

func buildDiffSummary(output diffOutput) string {
	if !output.HasChanges {
		return "No changes detected."
	}
	return formatCount(output.Inserted, "inserted leaf", "inserted leaves") + ", " +
		formatCount(output.Deleted, "deleted leaf", "deleted leaves") + ", " +
		formatCount(output.Unchanged, "unchanged leaf", "unchanged leaves") + "."
}

func formatCount(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}
