package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/biograph/persona-mcp/internal/persons"
)

// ServerConfig contains configuration for creating an MCP server
type ServerConfig struct {
	Name       string
	Version    string
	PersonsSvc *persons.Service
}

// CreateServer creates and configures the MCP server
func CreateServer(cfg ServerConfig) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)

	if cfg.PersonsSvc != nil {
		persons.RegisterTools(s, cfg.PersonsSvc)
	}

	return s
}
