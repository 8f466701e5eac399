package guide

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/openconvo/httptools-mcp/docs"
	"github.com/openconvo/httptools-mcp/internal/tools"
)

// Handler returns the tool handler function for get-authoring-guide
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetAuthoringGuide(ctx, deps)
	}
}

func handleGetAuthoringGuide(_ context.Context, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolCallEvent("get-authoring-guide"))
	}

	slog.Info("serving authoring guide", "size", len(docs.AuthoringGuide))

	return mcp.NewToolResultText(docs.AuthoringGuide), nil
}
