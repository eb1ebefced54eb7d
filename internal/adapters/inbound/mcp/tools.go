package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tunelint/tunelint/internal/adapters/outbound/dataset"
	"github.com/tunelint/tunelint/internal/adapters/outbound/gitinfo"
	"github.com/tunelint/tunelint/internal/adapters/outbound/history"
	"github.com/tunelint/tunelint/internal/application"
	"github.com/tunelint/tunelint/internal/domain"
)

// registerTools registers all tunelint MCP tools on the given server.
func registerTools(s *server.MCPServer, dataDir string) {
	// 1. tunelint_validate_line
	s.AddTool(
		mcplib.NewTool("tunelint_validate_line",
			mcplib.WithDescription("Validate a single JSONL line against the fine-tuning record schema. Returns defects and near-miss key hints as JSON."),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("The raw line text to validate"),
			),
			mcplib.WithNumber("line",
				mcplib.Description("Physical line number to report in defects (default 1)"),
			),
		),
		handleValidateLine(),
	)

	// 2. tunelint_validate_file
	s.AddTool(
		mcplib.NewTool("tunelint_validate_file",
			mcplib.WithDescription("Validate one JSONL file and return its full report as JSON"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("File path, direct or relative to the data directory"),
			),
		),
		handleValidateFile(dataDir),
	)

	// 3. tunelint_validate_dataset
	s.AddTool(
		mcplib.NewTool("tunelint_validate_dataset",
			mcplib.WithDescription("Validate every .jsonl file in the data directory and return the run report as JSON"),
		),
		handleValidateDataset(dataDir),
	)
}

func handleValidateLine() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		line := 1
		if n, ok := request.GetArguments()["line"].(float64); ok && n >= 1 {
			line = int(n)
		}

		result := struct {
			Defects []domain.Defect `json:"defects"`
			Hints   []domain.Hint   `json:"hints,omitempty"`
		}{
			Defects: domain.ValidateLine(line, text),
			Hints:   domain.KeyHints(line, text),
		}
		if result.Defects == nil {
			result.Defects = []domain.Defect{}
		}
		return jsonResult(result)
	}
}

func handleValidateFile(dataDir string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewValidateService(dataset.New(), nil, nil)
		report, err := svc.Run(domain.RunConfig{DataDir: dataDir, Extension: domain.DefaultExtension}, []string{path})
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(report.Files[0])
	}
}

func handleValidateDataset(dataDir string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewValidateService(dataset.New(), history.New(), gitinfo.New())
		report, err := svc.Run(domain.RunConfig{DataDir: dataDir, Extension: domain.DefaultExtension}, nil)
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
