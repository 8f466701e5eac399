package guide

import "github.com/mark3labs/mcp-go/mcp"

// Spec returns the MCP tool specification for the authoring guide
func Spec() mcp.Tool {
	return mcp.NewTool("get-authoring-guide",
		mcp.WithDescription(`Returns the descriptor authoring guide.

The guide covers the descriptor YAML format, the placeholder language
({path} and {{path}} forms), which context roots are legal in the request and
UI sections, the known UI panel types with their required props, secret
resolution, and how the lint checks map to authoring mistakes.

**When to use this tool:**
- Writing or reviewing a new tool descriptor
- Resolving a lint finding you do not understand
- Checking which props a panel type requires`),
		mcp.WithTitleAnnotation("Get Descriptor Authoring Guide"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
