package persons

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tools answer with one text content block holding an indented JSON envelope
// so the calling agent can parse results without scraping prose.

// recordResponse is the envelope for single-record operations.
type recordResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// listResponse is the envelope for multi-record operations. Count stays
// present even when zero.
type listResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// errorResponse is the envelope for failed operations.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

const notReadyMessage = "The person store is not available. The server failed to open its data file; check the server logs."

// jsonResult renders a successful envelope.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("failed to encode response: %s", err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}
}

// errorResult renders a failure envelope with IsError set.
func errorResult(msg string) *mcp.CallToolResult {
	data, err := json.MarshalIndent(errorResponse{Success: false, Error: msg}, "", "  ")
	text := string(data)
	if err != nil {
		text = msg
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		IsError: true,
	}
}

// errorResultFor renders a failure envelope from a service error.
func errorResultFor(err error) *mcp.CallToolResult {
	return errorResult(err.Error())
}

// notReadyResult is the shared answer while the store is unavailable.
func notReadyResult() *mcp.CallToolResult {
	return errorResult(notReadyMessage)
}

// RegisterTools registers all person tools with an MCP server.
func RegisterTools(server *mcp.Server, service *Service) {
	RegisterAddTool(server, service)
	RegisterGetTool(server, service)
	RegisterListTool(server, service)
	RegisterUpdateTool(server, service)
	RegisterDeleteTool(server, service)
	RegisterSearchTool(server, service)
}
