package app

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestRegisterFlags(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)

	// Verify all flags are registered
	expectedFlags := []string{
		"transport",
		"host",
		"port",
		"data-file",
		"lock-timeout",
		"max-results",
	}

	for _, name := range expectedFlags {
		if flags.Lookup(name) == nil {
			t.Errorf("Expected flag %q to be registered", name)
		}
	}
}

func TestRegisterFlags_Shorthand(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)

	shorthandFlags := map[string]string{
		"transport":   "t",
		"host":        "H",
		"port":        "p",
		"data-file":   "f",
		"max-results": "m",
	}

	for name, shorthand := range shorthandFlags {
		flag := flags.Lookup(name)
		if flag == nil {
			t.Errorf("Flag %q not found", name)
			continue
		}
		if flag.Shorthand != shorthand {
			t.Errorf("Flag %q expected shorthand %q, got %q", name, shorthand, flag.Shorthand)
		}
	}

	// lock-timeout is long-form only.
	if flag := flags.Lookup("lock-timeout"); flag != nil && flag.Shorthand != "" {
		t.Errorf("Flag 'lock-timeout' should have no shorthand, got %q", flag.Shorthand)
	}
}

func TestRegisterFlags_SetValues(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)

	err := flags.Parse([]string{
		"--transport", "sse",
		"--host", "localhost",
		"--port", "9090",
		"--data-file", "/tmp/persons.json",
		"--lock-timeout", "10s",
		"--max-results", "5",
	})
	if err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	transport, _ := flags.GetString("transport")
	if transport != "sse" {
		t.Errorf("Expected transport 'sse', got '%s'", transport)
	}

	host, _ := flags.GetString("host")
	if host != "localhost" {
		t.Errorf("Expected host 'localhost', got '%s'", host)
	}

	port, _ := flags.GetInt("port")
	if port != 9090 {
		t.Errorf("Expected port 9090, got %d", port)
	}

	dataFile, _ := flags.GetString("data-file")
	if dataFile != "/tmp/persons.json" {
		t.Errorf("Expected data-file '/tmp/persons.json', got '%s'", dataFile)
	}

	lockTimeout, _ := flags.GetDuration("lock-timeout")
	if lockTimeout != 10*time.Second {
		t.Errorf("Expected lock-timeout 10s, got %v", lockTimeout)
	}

	maxResults, _ := flags.GetInt("max-results")
	if maxResults != 5 {
		t.Errorf("Expected max-results 5, got %d", maxResults)
	}
}

func TestRegisterFlags_ShorthandParse(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)

	if err := flags.Parse([]string{"-t", "stdio", "-f", "/tmp/p.json", "-m", "3"}); err != nil {
		t.Fatalf("Failed to parse shorthand flags: %v", err)
	}

	transport, _ := flags.GetString("transport")
	if transport != "stdio" {
		t.Errorf("Expected transport 'stdio', got '%s'", transport)
	}
	dataFile, _ := flags.GetString("data-file")
	if dataFile != "/tmp/p.json" {
		t.Errorf("Expected data-file '/tmp/p.json', got '%s'", dataFile)
	}
	maxResults, _ := flags.GetInt("max-results")
	if maxResults != 3 {
		t.Errorf("Expected max-results 3, got %d", maxResults)
	}
}
