package catalog

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/openconvo/httptools-mcp/internal/descriptor"
	"github.com/openconvo/httptools-mcp/internal/tools"
)

// Entry is one row of the catalog listing.
type Entry struct {
	Name           string   `json:"name"`
	TenantID       string   `json:"tenant_id,omitempty"`
	Description    string   `json:"description"`
	Method         string   `json:"method"`
	URLTemplate    string   `json:"url_template"`
	Parameters     []string `json:"parameters,omitempty"`
	Priority       int      `json:"priority,omitempty"`
	Enabled        bool     `json:"enabled"`
	HasUI          bool     `json:"has_ui"`
	TimeoutSeconds float64  `json:"timeout_seconds"`
}

// Handler returns the tool handler function for list-descriptors
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListDescriptors(ctx, request, deps)
	}
}

func handleListDescriptors(_ context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Store == nil {
		errMessage := "descriptor store is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolCallEvent("list-descriptors"))
	}

	var args ListDescriptorsInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	var descriptors []*descriptor.Descriptor
	if args.All {
		descriptors = deps.Store.All()
	} else {
		descriptors = deps.Store.Enabled()
	}

	entries := make([]Entry, 0, len(descriptors))
	for _, d := range descriptors {
		if args.TenantId != "" && d.TenantID != args.TenantId {
			continue
		}
		entries = append(entries, Entry{
			Name:           d.ExposedName(),
			TenantID:       d.TenantID,
			Description:    d.Description,
			Method:         d.HTTP.Method,
			URLTemplate:    d.HTTP.URLTemplate,
			Parameters:     d.ParamNames(),
			Priority:       d.Priority,
			Enabled:        d.IsEnabled(),
			HasUI:          d.UI != nil,
			TimeoutSeconds: d.Timeout().Seconds(),
		})
	}

	slog.Info("listing descriptors", "count", len(entries), "tenant", args.TenantId)

	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		slog.Error("error encoding catalog listing", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}
