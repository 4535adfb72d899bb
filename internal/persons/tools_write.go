package persons

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AddPersonArgs defines add_person parameters.
type AddPersonArgs struct {
	Name        string  `json:"name" validate:"required" jsonschema_description:"Person's name, native script preserved (e.g. 张三)"`
	BirthYear   int     `json:"birth_year" validate:"gte=1,lte=9999" jsonschema_description:"Birth year, e.g. 1990"`
	BirthMonth  int     `json:"birth_month" validate:"gte=1,lte=12" jsonschema_description:"Birth month, 1-12"`
	BirthDay    int     `json:"birth_day" validate:"gte=1,lte=31" jsonschema_description:"Birth day of month, 1-31"`
	BirthHour   int     `json:"birth_hour" validate:"gte=0,lte=23" jsonschema_description:"Birth hour, 0-23"`
	BirthMinute int     `json:"birth_minute" validate:"gte=0,lte=59" jsonschema_description:"Birth minute, 0-59"`
	City        string  `json:"city" validate:"required" jsonschema_description:"Birth city, e.g. 北京"`
	Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90" jsonschema_description:"Birth place latitude in decimal degrees, -90 to 90"`
	Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180" jsonschema_description:"Birth place longitude in decimal degrees, -180 to 180"`
	Gender      string  `json:"gender,omitempty" jsonschema_description:"Optional gender, free-form"`
	Timezone    string  `json:"timezone,omitempty" jsonschema_description:"Optional timezone, e.g. Asia/Shanghai or UTC+8"`
}

// AddHandler handles the add_person MCP tool.
type AddHandler struct {
	service *Service
}

// NewAddHandler creates a new add handler.
func NewAddHandler(service *Service) *AddHandler {
	return &AddHandler{
		service: service,
	}
}

// Handle validates and stores a new person record.
func (h *AddHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args AddPersonArgs) (*mcp.CallToolResult, any, error) {
	if !h.service.IsReady() {
		return notReadyResult(), nil, nil
	}

	person, err := h.service.Add(args)
	if err != nil {
		return errorResultFor(err), nil, nil
	}

	return jsonResult(recordResponse{
		Success: true,
		Data:    person,
		Message: fmt.Sprintf("added person %q", person.Name),
	}), nil, nil
}

// GetToolDefinition returns the MCP tool definition.
func (h *AddHandler) GetToolDefinition() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_person",
		Description: "Store a new person record with name, birth time and birth place",
	}
}

// RegisterAddTool registers the add_person tool with an MCP server.
func RegisterAddTool(server *mcp.Server, service *Service) {
	handler := NewAddHandler(service)
	mcp.AddTool(server, handler.GetToolDefinition(), handler.Handle)
}

// UpdatePersonArgs defines update_person parameters. All fields except the
// name are optional; pointers distinguish "not provided" from zero values
// such as minute 0.
type UpdatePersonArgs struct {
	Name        string   `json:"name" validate:"required" jsonschema_description:"Exact name of the person to update"`
	BirthYear   *int     `json:"birth_year,omitempty" validate:"omitempty,gte=1,lte=9999" jsonschema_description:"New birth year"`
	BirthMonth  *int     `json:"birth_month,omitempty" validate:"omitempty,gte=1,lte=12" jsonschema_description:"New birth month, 1-12"`
	BirthDay    *int     `json:"birth_day,omitempty" validate:"omitempty,gte=1,lte=31" jsonschema_description:"New birth day, 1-31"`
	BirthHour   *int     `json:"birth_hour,omitempty" validate:"omitempty,gte=0,lte=23" jsonschema_description:"New birth hour, 0-23"`
	BirthMinute *int     `json:"birth_minute,omitempty" validate:"omitempty,gte=0,lte=59" jsonschema_description:"New birth minute, 0-59"`
	City        *string  `json:"city,omitempty" jsonschema_description:"New birth city"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90" jsonschema_description:"New latitude, -90 to 90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180" jsonschema_description:"New longitude, -180 to 180"`
	Gender      *string  `json:"gender,omitempty" jsonschema_description:"New gender, free-form"`
	Timezone    *string  `json:"timezone,omitempty" jsonschema_description:"New timezone"`
}

// hasFields returns true when at least one updatable field is provided.
func (a UpdatePersonArgs) hasFields() bool {
	return a.birthChanged() ||
		a.City != nil || a.Latitude != nil || a.Longitude != nil ||
		a.Gender != nil || a.Timezone != nil
}

// birthChanged returns true when any birth time field is provided.
func (a UpdatePersonArgs) birthChanged() bool {
	return a.BirthYear != nil || a.BirthMonth != nil || a.BirthDay != nil ||
		a.BirthHour != nil || a.BirthMinute != nil
}

// UpdateHandler handles the update_person MCP tool.
type UpdateHandler struct {
	service *Service
}

// NewUpdateHandler creates a new update handler.
func NewUpdateHandler(service *Service) *UpdateHandler {
	return &UpdateHandler{
		service: service,
	}
}

// Handle applies a partial update to an existing record.
func (h *UpdateHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args UpdatePersonArgs) (*mcp.CallToolResult, any, error) {
	if !h.service.IsReady() {
		return notReadyResult(), nil, nil
	}

	person, err := h.service.Update(args)
	if err != nil {
		return errorResultFor(err), nil, nil
	}

	return jsonResult(recordResponse{
		Success: true,
		Data:    person,
		Message: fmt.Sprintf("updated person %q", person.Name),
	}), nil, nil
}

// GetToolDefinition returns the MCP tool definition.
func (h *UpdateHandler) GetToolDefinition() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_person",
		Description: "Update fields of an existing person record; at least one field besides the name is required",
	}
}

// RegisterUpdateTool registers the update_person tool with an MCP server.
func RegisterUpdateTool(server *mcp.Server, service *Service) {
	handler := NewUpdateHandler(service)
	mcp.AddTool(server, handler.GetToolDefinition(), handler.Handle)
}

// DeletePersonArgs defines delete_person parameters.
type DeletePersonArgs struct {
	Name string `json:"name" validate:"required" jsonschema_description:"Exact name of the person to delete"`
}

// DeleteHandler handles the delete_person MCP tool.
type DeleteHandler struct {
	service *Service
}

// NewDeleteHandler creates a new delete handler.
func NewDeleteHandler(service *Service) *DeleteHandler {
	return &DeleteHandler{
		service: service,
	}
}

// Handle removes a record by exact name.
func (h *DeleteHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args DeletePersonArgs) (*mcp.CallToolResult, any, error) {
	if !h.service.IsReady() {
		return notReadyResult(), nil, nil
	}

	person, err := h.service.Delete(args.Name)
	if err != nil {
		return errorResultFor(err), nil, nil
	}

	return jsonResult(recordResponse{
		Success: true,
		Data:    person,
		Message: fmt.Sprintf("deleted person %q", person.Name),
	}), nil, nil
}

// GetToolDefinition returns the MCP tool definition.
func (h *DeleteHandler) GetToolDefinition() *mcp.Tool {
	return &mcp.Tool{
		Name:        "delete_person",
		Description: "Delete a person record by exact name",
	}
}

// RegisterDeleteTool registers the delete_person tool with an MCP server.
func RegisterDeleteTool(server *mcp.Server, service *Service) {
	handler := NewDeleteHandler(service)
	mcp.AddTool(server, handler.GetToolDefinition(), handler.Handle)
}
