package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/cute-borders/internal/engine"
	"github.com/mj1618/cute-borders/internal/platform"
	"github.com/mj1618/cute-borders/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing cute-borders tools",
	Long: `Start a Model Context Protocol (MCP) server that lets agents list windows
with their border decisions, read the config, change the baseline colours and
reset borders.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  cute-borders serve
  cute-borders serve --transport streamable-http --port 8080
  cute-borders serve --cache-ttl 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "Window list cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	cfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	applier := engine.NewApplier(provider, env.store, nil, env.logger)
	srv := server.New(provider, env.store, applier, cfg, env.logger)
	env.logger.Info("mcp server starting", "transport", transport, "port", port)
	return srv.Serve(cfg)
}
