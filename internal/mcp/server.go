package mcp

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/takeshy/simshots/internal/shell"
)

// Server wraps the MCP server with simshots-specific functionality
type Server struct {
	mcpServer *mcp.Server

	// captureMu serializes captures: there is only one simulator.
	captureMu sync.Mutex
	newRunner func(dryRun bool, out io.Writer) shell.Runner
}

// NewServer creates a new MCP server for simshots
func NewServer(version string) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "simshots",
		Version: version,
	}, nil)

	s := &Server{
		mcpServer: mcpServer,
		newRunner: defaultRunner,
	}
	s.registerTools()
	return s
}

// defaultRunner never writes to the process stdout, which carries the
// stdio transport.
func defaultRunner(dryRun bool, out io.Writer) shell.Runner {
	if dryRun {
		return &shell.DryRunRunner{Out: out}
	}
	return shell.NewExecRunner(out, nil)
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "capture",
		Description: "Build the app if configured, then launch it in the iOS simulator for every configured device and language so it writes localized screenshots.",
	}, s.handleCapture)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_devices",
		Description: "List the simulator device names accepted in the devices configuration key.",
	}, s.handleListDevices)
}

// RunStdio runs the server using stdio transport
func (s *Server) RunStdio(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// NewHTTPHandler creates an HTTP handler for SSE transport
func (s *Server) NewHTTPHandler() http.Handler {
	return mcp.NewSSEHandler(func(req *http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

// NewStreamableHTTPHandler creates a streamable HTTP handler
func (s *Server) NewStreamableHTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(req *http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}
