package server

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/openconvo/httptools-mcp/internal/analytics"
	"github.com/openconvo/httptools-mcp/internal/config"
	"github.com/openconvo/httptools-mcp/internal/descriptor"
	"github.com/openconvo/httptools-mcp/internal/executor"
	"github.com/openconvo/httptools-mcp/internal/secrets"
	"github.com/openconvo/httptools-mcp/internal/ui"
)

// Version is stamped into the MCP handshake and telemetry events.
const Version = "0.1.0"

// HTTPToolsMCPServer exposes tenant HTTP tool descriptors as MCP tools over
// stdio, plus the admin tools for listing and linting them.
type HTTPToolsMCPServer struct {
	MCPServer *server.MCPServer

	config    *config.Config
	store     *descriptor.Store
	executor  *executor.Executor
	anService analytics.Service
}

// NewHTTPToolsMCPServer loads descriptors and assembles a ready-to-serve MCP
// server. Loading fails hard: a server with a broken descriptor batch should
// not come up.
func NewHTTPToolsMCPServer(cfg *config.Config) (*HTTPToolsMCPServer, error) {
	store := descriptor.NewStore(cfg.DescriptorDir)
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load descriptors: %w", err)
	}

	anService := analytics.NewService()
	if cfg.DisableTelemetry {
		anService.Disable()
	}

	exec := executor.New(executor.Config{
		BaseURL:    cfg.BaseURL,
		Resolver:   secrets.EnvResolver{},
		Dispatcher: ui.NewDispatcher(ui.LogStage{}),
	})

	s := &HTTPToolsMCPServer{
		MCPServer: server.NewMCPServer(
			"httptools-mcp",
			Version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
		),
		config:    cfg,
		store:     store,
		executor:  exec,
		anService: anService,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	anService.EmitEvent(anService.NewStartupEvent(analytics.StartupEventInfo{
		Version:         Version,
		DescriptorCount: store.Count(),
		TenantCount:     s.tenantCount(),
		ReadOnly:        cfg.ReadOnly,
	}))

	slog.Info("server assembled",
		"version", Version,
		"descriptors", store.Count(),
		"readOnly", cfg.ReadOnly)

	return s, nil
}

// Serve blocks on the stdio transport until the client disconnects.
func (s *HTTPToolsMCPServer) Serve() error {
	return server.ServeStdio(s.MCPServer)
}

func (s *HTTPToolsMCPServer) tenantCount() int {
	tenants := make(map[string]struct{})
	for _, d := range s.store.All() {
		tenants[d.TenantID] = struct{}{}
	}
	return len(tenants)
}
