package catalog

import "github.com/mark3labs/mcp-go/mcp"

type ListDescriptorsInput struct {
	TenantId string `json:"tenantId,omitempty" jsonschema:"description=Optional: restrict the listing to a single tenant. If omitted, descriptors from every tenant are listed."`
	All      bool   `json:"all,omitempty" jsonschema:"description=Include disabled descriptors in the listing. Defaults to enabled descriptors only."`
}

// Spec returns the MCP tool specification for the descriptor catalog listing
func Spec() mcp.Tool {
	return mcp.NewTool("list-descriptors",
		mcp.WithDescription(`Lists the HTTP tool descriptors currently loaded by the server.

For each descriptor the listing includes the exposed tool name, owning tenant,
HTTP method and URL template, declared parameters, priority and whether a UI
specification is attached. Use it to see what an agent connected to this
server can call, or to confirm a newly deployed descriptor was picked up.

**When to use this tool:**
- Auditing which tenant tools are live
- Verifying a descriptor deployment before running it
- Discovering the exposed name of a tool ("ext-" prefix plus descriptor name)`),
		mcp.WithInputSchema[ListDescriptorsInput](),
		mcp.WithTitleAnnotation("List Tool Descriptors"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
