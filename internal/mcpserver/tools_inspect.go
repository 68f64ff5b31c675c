package mcpserver

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/docdiff/document"
	"github.com/erraggy/docdiff/walker"
)

type inspectInput struct {
	Document docInput `json:"document" jsonschema:"The document to inspect"`
}

type inspectOutput struct {
	Type          string       `json:"type"`
	Format        string       `json:"format"`
	Size          string       `json:"size"`
	NodeCount     int          `json:"node_count"`
	TextLeafCount int          `json:"text_leaf_count"`
	MaxDepth      int          `json:"max_depth"`
	CharCount     int          `json:"char_count"`
	NodeTypes     []groupCount `json:"node_types,omitempty"`
	MarkTypes     []groupCount `json:"mark_types,omitempty"`
	Inserted      int          `json:"inserted"`
	Deleted       int          `json:"deleted"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	result, err := input.Document.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	types, err := walker.CollectTypes(result.Document)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}
	changes, err := walker.CollectChanges(result.Document)
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	return nil, inspectOutput{
		Type:          result.Document.Type,
		Format:        string(result.SourceFormat),
		Size:          document.FormatBytes(result.SourceSize),
		NodeCount:     result.Stats.NodeCount,
		TextLeafCount: result.Stats.TextLeafCount,
		MaxDepth:      result.Stats.MaxDepth,
		CharCount:     result.Stats.CharCount,
		NodeTypes:     sortCounts(types.Nodes),
		MarkTypes:     sortCounts(types.Marks),
		Inserted:      len(changes.Inserted),
		Deleted:       len(changes.Deleted),
	}, nil
}

// groupCount is one entry of a type histogram.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// sortCounts sorts a histogram by count descending, ties broken
// alphabetically by key.
func sortCounts(counts map[string]int) []groupCount {
	groups := makeSlice[groupCount](len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}
