package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tunelint/tunelint/internal/adapters/outbound/history"
	"github.com/tunelint/tunelint/internal/domain"
)

// registerResources registers all tunelint MCP resources on the given server.
func registerResources(s *server.MCPServer, dataDir string) {
	// 1. tunelint://schema - the record shape the validator enforces
	s.AddResource(
		mcplib.NewResource(
			"tunelint://schema",
			"Record Schema",
			mcplib.WithResourceDescription("Expected shape of one JSONL fine-tuning record"),
			mcplib.WithMIMEType("application/json"),
		),
		handleSchemaResource(),
	)

	// 2. tunelint://history - stored run summaries
	s.AddResource(
		mcplib.NewResource(
			"tunelint://history",
			"Run History",
			mcplib.WithResourceDescription("Summaries of past validation runs for the data directory"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(dataDir),
	)
}

func handleSchemaResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(domain.ExpectedSchema(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling schema: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "tunelint://schema",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleHistoryResource(dataDir string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(dataDir)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		if entries == nil {
			entries = []domain.RunEntry{}
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling history: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "tunelint://history",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
