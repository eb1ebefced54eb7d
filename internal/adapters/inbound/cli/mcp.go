package cli

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/tunelint/tunelint/internal/adapters/inbound/mcp"
	"github.com/tunelint/tunelint/internal/adapters/outbound/config"
	"github.com/tunelint/tunelint/internal/application"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the tunelint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start tunelint MCP server (stdio)",
		Long:  "Start the tunelint MCP server using stdio transport. This lets AI coding assistants validate fine-tuning files and inspect the expected record schema.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}

			s := mcpadapter.NewTunelintMCPServer(application.DataDir(cfg))
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", "", "Data directory served to MCP clients")

	return cmd
}
