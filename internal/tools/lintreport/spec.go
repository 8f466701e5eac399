package lintreport

import "github.com/mark3labs/mcp-go/mcp"

type LintDescriptorsInput struct {
	TenantId string `json:"tenantId,omitempty" jsonschema:"description=Optional: lint only the descriptors of a single tenant. If omitted, the whole loaded batch is linted."`
}

// Spec returns the MCP tool specification for the descriptor lint run
func Spec() mcp.Tool {
	return mcp.NewTool("lint-descriptors",
		mcp.WithDescription(`Runs the full static check battery over the loaded tool descriptors and
returns a per-descriptor issue report.

**Checks performed:**
1. Request token roots - request templates may only reference args or secrets
2. ok_field syntax - the success-detection path must be a plain dotted path
3. UI token roots - UI content may reference args, response and status; a
   secrets reference in UI content is reported as a leak
4. Panel props - known panel types must receive their required props
5. Declared arguments - every args.<name> a template consumes should be
   declared in the parameter schema
6. Unresolved tokens - the request section is rendered against a simulated
   context where every legal path resolves; surviving placeholders are
   malformed tokens

Linting never performs network calls and never blocks a live tool call; it is
a pre-deployment gate. A descriptor with zero issues is a pass.`),
		mcp.WithInputSchema[LintDescriptorsInput](),
		mcp.WithTitleAnnotation("Lint Tool Descriptors"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
