package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectTool(t *testing.T) {
	input := inspectInput{Document: docInput{File: "../../testdata/formatting-v1.json"}}
	result, output, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "doc", output.Type)
	assert.Equal(t, "json", output.Format)
	assert.NotEmpty(t, output.Size)
	assert.Equal(t, 7, output.NodeCount)
	assert.Equal(t, 3, output.TextLeafCount)
	assert.Equal(t, 3, output.MaxDepth)
	assert.Equal(t, []groupCount{
		{Key: "text", Count: 3},
		{Key: "paragraph", Count: 2},
		{Key: "doc", Count: 1},
		{Key: "image", Count: 1},
	}, output.NodeTypes)
	assert.Equal(t, []groupCount{{Key: "link", Count: 1}}, output.MarkTypes)
	assert.Zero(t, output.Inserted)
	assert.Zero(t, output.Deleted)
}

func TestInspectTool_MergedDocument(t *testing.T) {
	input := inspectInput{Document: docInput{Content: mergedDocJSON}}
	_, output, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 1, output.Inserted)
	assert.Equal(t, 1, output.Deleted)
	assert.Equal(t, []groupCount{{Key: "diffMark", Count: 2}}, output.MarkTypes)
}

func TestInspectTool_Error(t *testing.T) {
	result, _, err := handleInspect(context.Background(), &mcp.CallToolRequest{}, inspectInput{
		Document: docInput{Content: "[1, 2"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
