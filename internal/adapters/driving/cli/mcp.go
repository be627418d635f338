package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tabfind/internal/adapters/driving/mcp"
	"github.com/custodia-labs/tabfind/internal/core/domain"
	"github.com/custodia-labs/tabfind/internal/core/services"
	"github.com/custodia-labs/tabfind/internal/logger"
)

// Port range tried when --http is given without --port.
const (
	mcpPortStart = 8765
	mcpPortEnd   = 8785
)

var (
	mcpHTTP bool
	mcpPort int
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can search the
browser and open results.

By default the server speaks JSON-RPC over stdio. Use --http to serve the
streamable HTTP transport instead, for example for MCP Inspector.

Examples:
  # Stdio mode
  tabfind mcp

  # HTTP mode on the first free port from 8765
  tabfind mcp --http

MCP client configuration:
  {
    "mcpServers": {
      "tabfind": {
        "command": "/path/to/tabfind",
        "args": ["mcp"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().BoolVar(&mcpHTTP, "http", false, "serve over HTTP instead of stdio")
	mcpCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = first free port)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{
		Search:  searchService,
		Actions: actionService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	startBackground(ctx)

	if !mcpHTTP && mcpPort == 0 {
		return server.Run(ctx)
	}

	port := mcpPort
	if port == 0 {
		port, err = services.FindAvailablePort(mcpPortStart, mcpPortEnd)
		if err != nil {
			return err
		}
	}
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", addr)
	return server.RunHTTP(ctx, addr)
}

// startBackground keeps long-running sessions current: the refresher reloads
// loaded sources periodically and browser change events invalidate them.
func startBackground(ctx context.Context) {
	refresher := refresherService
	var watch func(context.Context, func(domain.SourceKind))
	if activeServices != nil {
		watch = activeServices.Watch
	}

	if refresher != nil {
		go func() {
			if err := refresher.Start(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("refresher stopped: %v", err)
			}
		}()
		go func() {
			<-ctx.Done()
			if err := refresher.Stop(); err != nil {
				logger.Warn("refresher stop: %v", err)
			}
		}()
	}

	if watch != nil {
		go watch(ctx, func(kind domain.SourceKind) {
			if refresher != nil {
				refresher.Invalidate(kind)
			}
		})
	}
}
