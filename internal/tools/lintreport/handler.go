package lintreport

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/openconvo/httptools-mcp/internal/descriptor"
	"github.com/openconvo/httptools-mcp/internal/lint"
	"github.com/openconvo/httptools-mcp/internal/tools"
)

// Report is the lint run output returned to the caller.
type Report struct {
	Descriptors int           `json:"descriptors"`
	Errors      int           `json:"errors"`
	Warnings    int           `json:"warnings"`
	Results     []lint.Result `json:"results"`
}

// BuildReport runs the linter over a batch and tallies severities. Shared by
// the MCP tool handler and the standalone lint command.
func BuildReport(descriptors []*descriptor.Descriptor) Report {
	results := lint.Lint(descriptors)

	report := Report{Descriptors: len(descriptors), Results: results}
	for _, r := range results {
		for _, issue := range r.Issues {
			switch issue.Severity {
			case lint.SeverityError:
				report.Errors++
			case lint.SeverityWarning:
				report.Warnings++
			}
		}
	}
	return report
}

// Handler returns the tool handler function for lint-descriptors
func Handler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleLintDescriptors(ctx, request, deps)
	}
}

func handleLintDescriptors(_ context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.Store == nil {
		errMessage := "descriptor store is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args LintDescriptorsInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	batch := deps.Store.All()
	if args.TenantId != "" {
		filtered := make([]*descriptor.Descriptor, 0, len(batch))
		for _, d := range batch {
			if d.TenantID == args.TenantId {
				filtered = append(filtered, d)
			}
		}
		batch = filtered
	}

	report := BuildReport(batch)

	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(
			deps.AnalyticsService.NewLintRunEvent(report.Descriptors, report.Errors, report.Warnings),
		)
	}

	slog.Info("lint run complete",
		"descriptors", report.Descriptors,
		"errors", report.Errors,
		"warnings", report.Warnings)

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		slog.Error("error encoding lint report", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(payload)), nil
}
