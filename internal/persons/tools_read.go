package persons

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/biograph/persona-mcp/internal/domain"
)

// GetPersonArgs defines get_person parameters.
type GetPersonArgs struct {
	Name string `json:"name" validate:"required" jsonschema_description:"Exact name of the person to look up"`
}

// personWithAge decorates a record with the computed current age for read output.
type personWithAge struct {
	*domain.Person
	Age int `json:"age"`
}

// GetHandler handles the get_person MCP tool.
type GetHandler struct {
	service *Service
}

// NewGetHandler creates a new get handler.
func NewGetHandler(service *Service) *GetHandler {
	return &GetHandler{
		service: service,
	}
}

// Handle looks up one person by exact name.
func (h *GetHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args GetPersonArgs) (*mcp.CallToolResult, any, error) {
	if !h.service.IsReady() {
		return notReadyResult(), nil, nil
	}

	person, age, err := h.service.Get(args.Name)
	if err != nil {
		return errorResultFor(err), nil, nil
	}

	return jsonResult(recordResponse{
		Success: true,
		Data:    personWithAge{Person: person, Age: age},
	}), nil, nil
}

// GetToolDefinition returns the MCP tool definition.
func (h *GetHandler) GetToolDefinition() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_person",
		Description: "Get the stored record for a person by exact name",
	}
}

// RegisterGetTool registers the get_person tool with an MCP server.
func RegisterGetTool(server *mcp.Server, service *Service) {
	handler := NewGetHandler(service)
	mcp.AddTool(server, handler.GetToolDefinition(), handler.Handle)
}

// ListPersonsArgs defines list_all_persons parameters. The tool takes none.
type ListPersonsArgs struct{}

// ListHandler handles the list_all_persons MCP tool.
type ListHandler struct {
	service *Service
}

// NewListHandler creates a new list handler.
func NewListHandler(service *Service) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// Handle returns every stored record in insertion order.
func (h *ListHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ListPersonsArgs) (*mcp.CallToolResult, any, error) {
	if !h.service.IsReady() {
		return notReadyResult(), nil, nil
	}

	persons, err := h.service.List()
	if err != nil {
		return errorResultFor(err), nil, nil
	}

	return jsonResult(listResponse{
		Success: true,
		Count:   len(persons),
		Data:    persons,
		Message: fmt.Sprintf("%d person record(s) stored", len(persons)),
	}), nil, nil
}

// GetToolDefinition returns the MCP tool definition.
func (h *ListHandler) GetToolDefinition() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_all_persons",
		Description: "List all stored person records",
	}
}

// RegisterListTool registers the list_all_persons tool with an MCP server.
func RegisterListTool(server *mcp.Server, service *Service) {
	handler := NewListHandler(service)
	mcp.AddTool(server, handler.GetToolDefinition(), handler.Handle)
}
