// Package server exposes the border engine over the Model Context Protocol so
// agents can inspect decisions and change the baseline colours.
package server

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/cute-borders/internal/config"
	"github.com/mj1618/cute-borders/internal/engine"
	"github.com/mj1618/cute-borders/internal/platform"
	"github.com/mj1618/cute-borders/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with the engine it drives.
type Server struct {
	provider *platform.Provider
	store    *config.Store
	applier  *engine.Applier
	cache    *PlanCache
	logger   *slog.Logger

	// paintMu serialises writes issued from tool calls.
	paintMu sync.Mutex
	mcp     *mcpserver.MCPServer
}

// New creates and configures an MCP server with all cute-borders tools.
func New(p *platform.Provider, store *config.Store, applier *engine.Applier, cfg Config, logger *slog.Logger) *Server {
	s := &Server{
		provider: p,
		store:    store,
		applier:  applier,
		cache:    NewPlanCache(cfg.CacheTTL),
		logger:   logger,
	}
	s.mcp = mcpserver.NewMCPServer("cute-borders", version.Version)
	s.registerTools()
	return s
}

// MCP returns the underlying protocol server.
func (s *Server) MCP() *mcpserver.MCPServer {
	return s.mcp
}

// Serve starts the MCP server with the configured transport and blocks.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List top-level windows with the rule that matched each one, whether it counts as active, and the border colour it gets"),
			mcp.WithBoolean("fresh", mcp.Description("Bypass the short-lived cache and enumerate windows now")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_config",
			mcp.WithDescription("Return the current config file contents as YAML"),
		),
		s.handleGetConfig,
	)

	s.mcp.AddTool(
		mcp.NewTool("update_settings",
			mcp.WithDescription("Change the baseline (first Global rule) colours and animation speed, save the config and repaint. Windows whose colour is rainbow are not painted here; the running cute-borders painter animates them"),
			mcp.WithString("active", mcp.Description("Active border colour: hex like '#c6a0f6' or 'rainbow'")),
			mcp.WithString("inactive", mcp.Description("Inactive border colour: hex, or empty string to restore the OS default")),
			mcp.WithNumber("speed", mcp.Description("Rainbow speed, 0.1 to 10")),
			mcp.WithBoolean("hide_tray_icon", mcp.Description("Hide the tray icon")),
		),
		s.handleUpdateSettings,
	)

	s.mcp.AddTool(
		mcp.NewTool("reset_borders",
			mcp.WithDescription("Restore every window border to the OS default"),
		),
		s.handleResetBorders,
	)
}
