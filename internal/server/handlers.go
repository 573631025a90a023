package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/cute-borders/internal/config"
	"github.com/mj1618/cute-borders/internal/engine"
	"github.com/mj1618/cute-borders/internal/settings"
	"gopkg.in/yaml.v3"
)

// toText serializes v to YAML for an MCP response.
func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

type reportResult struct {
	OK      bool   `yaml:"ok"`
	Windows int    `yaml:"windows"`
	Painted int    `yaml:"painted"`
	Skipped int    `yaml:"skipped"`
	Failed  int    `yaml:"failed"`
	Config  string `yaml:"config,omitempty"`
}

func newReportResult(rep engine.Report) reportResult {
	return reportResult{OK: true, Windows: rep.Windows, Painted: rep.Painted, Skipped: rep.Skipped, Failed: rep.Failed}
}

func (s *Server) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if request.GetBool("fresh", false) {
		s.cache.Invalidate()
	}
	decisions, err := s.cache.Plan(s.applier.Plan)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	list := BuildList(decisions, s.store.Get(), s.provider.Inspector.ForegroundWindow())
	return mcp.NewToolResultText(toText(list)), nil
}

func (s *Server) handleGetConfig(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := config.Encode(s.store.ReadForGUI())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleUpdateSettings(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	change := changeFromArgs(request.GetArguments())
	if change.Empty() {
		return mcp.NewToolResultError("nothing to update: pass active, inactive, speed or hide_tray_icon"), nil
	}

	s.paintMu.Lock()
	defer s.paintMu.Unlock()

	form := settings.Load(s.store).With(change)
	if err := settings.Save(s.store, form); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.cache.Invalidate()
	s.logger.Info("settings updated", "source", "mcp", "rainbow", form.Rainbow, "speed", form.RainbowSpeed)

	res := newReportResult(s.applier.Apply(false))
	res.Config = s.store.Path()
	return mcp.NewToolResultText(toText(res)), nil
}

func (s *Server) handleResetBorders(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.paintMu.Lock()
	defer s.paintMu.Unlock()

	rep := s.applier.Apply(true)
	s.cache.Invalidate()
	return mcp.NewToolResultText(toText(newReportResult(rep))), nil
}

// changeFromArgs reads only the arguments that are present, so an omitted
// field is left alone rather than zeroed.
func changeFromArgs(args map[string]interface{}) settings.Change {
	var c settings.Change
	if v, ok := args["active"].(string); ok {
		c.Active = &v
	}
	if v, ok := args["inactive"].(string); ok {
		c.Inactive = &v
	}
	if v, ok := args["speed"].(float64); ok {
		c.Speed = &v
	}
	if v, ok := args["hide_tray_icon"].(bool); ok {
		c.HideTrayIcon = &v
	}
	return c
}
