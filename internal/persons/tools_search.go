package persons

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/biograph/persona-mcp/internal/search"
)

// SearchPersonsArgs defines search_persons parameters.
type SearchPersonsArgs struct {
	Query string `json:"query" jsonschema_description:"Name fragment to match, native script or pinyin (minimum 2 characters)"`
	Limit int    `json:"limit,omitempty" jsonschema_description:"Maximum number of matches to return; defaults to the configured maximum"`
}

// SearchHandler handles the search_persons MCP tool.
type SearchHandler struct {
	service *Service
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(service *Service) *SearchHandler {
	return &SearchHandler{
		service: service,
	}
}

// Handle ranks stored names against the query and returns the matching
// records with their scores and the rule each matched on.
func (h *SearchHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SearchPersonsArgs) (*mcp.CallToolResult, any, error) {
	if !h.service.IsReady() {
		return notReadyResult(), nil, nil
	}

	// The engine validates too; rejecting here keeps bad queries out of the
	// service layer entirely.
	query := strings.TrimSpace(args.Query)
	if utf8.RuneCountInString(query) < search.MinQueryRunes {
		return errorResultFor(search.ErrInvalidQuery), nil, nil
	}

	matches, err := h.service.Search(query, args.Limit)
	if err != nil {
		if errors.Is(err, search.ErrInvalidQuery) {
			return errorResultFor(err), nil, nil
		}
		return errorResult(fmt.Sprintf("search failed: %s", err)), nil, nil
	}

	return jsonResult(listResponse{
		Success: true,
		Count:   len(matches),
		Data:    matches,
		Message: fmt.Sprintf("%d person(s) matching %q", len(matches), query),
	}), nil, nil
}

// GetToolDefinition returns the MCP tool definition.
func (h *SearchHandler) GetToolDefinition() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_persons",
		Description: "Fuzzy-search stored persons by name, matching native script or pinyin romanization, ranked by match quality",
	}
}

// RegisterSearchTool registers the search_persons tool with an MCP server.
func RegisterSearchTool(server *mcp.Server, service *Service) {
	handler := NewSearchHandler(service)
	mcp.AddTool(server, handler.GetToolDefinition(), handler.Handle)
}
