package main

import (
	"log/slog"
	"os"

	"github.com/openconvo/httptools-mcp/descriptors"
	"github.com/openconvo/httptools-mcp/internal/config"
	"github.com/openconvo/httptools-mcp/internal/descriptor"
	"github.com/openconvo/httptools-mcp/internal/server"
)

func main() {
	// Logs go to stderr: stdout belongs to the MCP stdio transport.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	descriptor.EmbeddedFS = descriptors.ConfigFiles

	cfg := config.Load()

	s, err := server.NewHTTPToolsMCPServer(cfg)
	if err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}

	if err := s.Serve(); err != nil {
		slog.Error("server terminated", "error", err)
		os.Exit(1)
	}
}
