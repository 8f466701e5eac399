package dynamic

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/openconvo/httptools-mcp/internal/descriptor"
	"github.com/openconvo/httptools-mcp/internal/tools"
)

// NewDescriptorHandler creates a handler function for one descriptor tool.
func NewDescriptorHandler(d *descriptor.Descriptor, deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDescriptorTool(ctx, request, d, deps)
	}
}

func handleDescriptorTool(ctx context.Context, request mcp.CallToolRequest, d *descriptor.Descriptor, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Executor == nil {
		errMessage := "executor is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(
			deps.AnalyticsService.NewToolCallEvent(d.ExposedName()),
		)
	}

	args := request.GetArguments()

	slog.Info("descriptor tool called", "tool", d.ExposedName(), "tenant", d.TenantID)

	result := deps.Executor.Execute(ctx, d, args)

	// The envelope always goes back to the agent, upstream failures included;
	// the status code is the agent's signal, not a transport error.
	payload, err := json.Marshal(result)
	if err != nil {
		slog.Error("failed to encode result envelope", "tool", d.ExposedName(), "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}
