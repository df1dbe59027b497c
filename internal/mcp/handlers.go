package mcp

import (
	"bytes"
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/takeshy/simshots/internal/capture"
	"github.com/takeshy/simshots/internal/config"
	"github.com/takeshy/simshots/internal/device"
)

// handleCapture handles the capture tool
func (s *Server) handleCapture(ctx context.Context, req *mcp.CallToolRequest, input CaptureInput) (*mcp.CallToolResult, CaptureOutput, error) {
	var output CaptureOutput

	if input.ConfigPath == "" {
		return nil, output, fmt.Errorf("config_path is required")
	}

	cfg, err := config.Load(input.ConfigPath, input.DestinationPath)
	if err != nil {
		return nil, output, err
	}
	tools, err := config.LoadTools(cfg.Dir)
	if err != nil {
		return nil, output, err
	}

	s.captureMu.Lock()
	defer s.captureMu.Unlock()

	var log bytes.Buffer
	pipeline := capture.NewPipeline(s.newRunner(input.DryRun, &log), tools, &log, input.DryRun)
	report, err := pipeline.Run(ctx, cfg)
	output.Log = log.String()
	if err != nil {
		return nil, output, err
	}

	output.AppPath = report.AppPath
	output.Built = report.Built
	output.Launches = make([]LaunchSummary, 0, len(report.Results))
	for _, r := range report.Results {
		summary := LaunchSummary{Device: r.Device, Language: r.Language, OutputDir: r.OutputDir}
		if r.Err != nil {
			summary.Error = r.Err.Error()
			output.Failed++
		}
		output.Launches = append(output.Launches, summary)
	}
	totals := report.Totals()
	output.New = totals.New
	output.Changed = totals.Changed
	output.Unchanged = totals.Unchanged

	text := fmt.Sprintf("Captured %d launches (%d failed): %d new, %d changed, %d unchanged screenshots",
		len(output.Launches), output.Failed, output.New, output.Changed, output.Unchanged)
	if input.DryRun {
		text = fmt.Sprintf("Dry run: %d launches planned\n%s", len(output.Launches), output.Log)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		IsError: output.Failed > 0,
	}, output, nil
}

// handleListDevices handles the list_devices tool
func (s *Server) handleListDevices(ctx context.Context, req *mcp.CallToolRequest, input ListDevicesInput) (*mcp.CallToolResult, ListDevicesOutput, error) {
	var output ListDevicesOutput
	for _, p := range device.All() {
		output.Devices = append(output.Devices, DeviceInfo{
			Name:   p.Name,
			Family: string(p.Family),
			Retina: p.Retina,
			Tall:   p.Tall,
		})
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("%d supported devices", len(output.Devices))},
		},
	}, output, nil
}
