package tools

import (
	"github.com/openconvo/httptools-mcp/internal/analytics"
	"github.com/openconvo/httptools-mcp/internal/descriptor"
	"github.com/openconvo/httptools-mcp/internal/executor"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	Store            *descriptor.Store
	Executor         *executor.Executor
	AnalyticsService analytics.Service
}
