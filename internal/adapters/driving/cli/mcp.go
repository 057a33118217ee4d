package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/drills/internal/adapters/driving/mcp"
	"github.com/custodia-labs/drills/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes three tools (evaluate, greet, transform_sentence) and the
drills://history resource. Tool calls are throttled by the mcp.rate_limit
and mcp.burst settings, which are reloaded when config.toml changes.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  drills mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  drills mcp serve --port 8080

Client configuration:
  {
    "mcpServers": {
      "drills": {
        "command": "/path/to/drills",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := newMCPServer()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if configStore != nil {
		go func() {
			if err := configStore.Watch(ctx, server.ReloadSettings); err != nil {
				logger.Warn("watching config: %v", err)
			}
		}()
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		cmd.Printf("MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}

func newMCPServer() (*mcp.Server, error) {
	ports := &mcp.Ports{
		Calculator:  calculatorService,
		Greeter:     greeterService,
		Manipulator: manipulatorService,
		History:     historyService,
		Settings:    settingsService,
	}

	return mcp.NewServer(ports)
}
