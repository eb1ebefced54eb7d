package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewTunelintMCPServer creates a new MCP server with all tunelint tools and
// resources registered. dataDir is the directory bare filenames and the
// zero-argument dataset tool resolve against.
func NewTunelintMCPServer(dataDir string) *server.MCPServer {
	s := server.NewMCPServer(
		"tunelint",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, dataDir)
	registerResources(s, dataDir)

	return s
}
