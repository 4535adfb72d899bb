package mcp

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/biograph/persona-mcp/internal/config"
	"github.com/biograph/persona-mcp/internal/persons"
)

func TestCreateServer(t *testing.T) {
	cfg := ServerConfig{
		Name:    "test-server",
		Version: "1.0.0",
	}

	server := CreateServer(cfg)
	if server == nil {
		t.Fatal("Expected server to be created")
	}
}

func TestCreateServer_EmptyConfig(t *testing.T) {
	server := CreateServer(ServerConfig{})
	if server == nil {
		t.Fatal("Expected server to be created with empty config")
	}
}

func TestCreateServer_NilPersonsSvc(t *testing.T) {
	cfg := ServerConfig{
		Name:       "test-server",
		Version:    "1.0.0",
		PersonsSvc: nil,
	}

	// No tools registered; the handshake surface still works.
	server := CreateServer(cfg)
	if server == nil {
		t.Fatal("Expected server to be created without a persons service")
	}
}

func TestCreateServer_WithPersonsSvc(t *testing.T) {
	settings := &config.PersonsSettings{
		DataFile:    filepath.Join(t.TempDir(), "persons.json"),
		LockTimeout: 2 * time.Second,
		MaxResults:  20,
	}

	svc, err := persons.NewService(settings)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("Failed to initialize service: %v", err)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			t.Logf("Warning: Close failed: %v", err)
		}
	}()

	cfg := ServerConfig{
		Name:       "test-server",
		Version:    "1.0.0",
		PersonsSvc: svc,
	}

	server := CreateServer(cfg)
	if server == nil {
		t.Fatal("Expected server to be created with a persons service")
	}
}
