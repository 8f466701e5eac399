package dynamic

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openconvo/httptools-mcp/internal/descriptor"
	"github.com/openconvo/httptools-mcp/internal/tools"
)

// ToolRegistry turns loaded descriptors into MCP server tools.
type ToolRegistry struct {
	store *descriptor.Store
}

// NewToolRegistry creates a registry over an already-loaded store.
func NewToolRegistry(store *descriptor.Store) *ToolRegistry {
	return &ToolRegistry{store: store}
}

// GetToolCount returns the number of enabled descriptors.
func (r *ToolRegistry) GetToolCount() int {
	return len(r.store.Enabled())
}

// GetServerTools converts every enabled descriptor into an MCP server tool.
func (r *ToolRegistry) GetServerTools(deps *tools.ToolDependencies) []server.ServerTool {
	descriptors := r.store.Enabled()
	serverTools := make([]server.ServerTool, 0, len(descriptors))

	for _, d := range descriptors {
		serverTools = append(serverTools, r.buildServerTool(d, deps))
	}

	return serverTools
}

// IsReadOnly reports whether a descriptor only reads upstream state. Anything
// other than GET or HEAD counts as a mutation.
func IsReadOnly(d *descriptor.Descriptor) bool {
	switch strings.ToUpper(d.HTTP.Method) {
	case http.MethodGet, http.MethodHead, "":
		return true
	default:
		return false
	}
}

// buildServerTool creates an MCP server tool from a descriptor. The input
// schema is the descriptor's parameter schema passed through verbatim, so the
// agent sees exactly what the tenant declared.
func (r *ToolRegistry) buildServerTool(d *descriptor.Descriptor, deps *tools.ToolDependencies) server.ServerTool {
	mcpTool := mcp.NewToolWithRawSchema(d.ExposedName(), d.Description, rawParameterSchema(d))
	mcpTool.Annotations = mcp.ToolAnnotation{
		Title:           d.Name,
		ReadOnlyHint:    mcp.ToBoolPtr(IsReadOnly(d)),
		DestructiveHint: mcp.ToBoolPtr(!IsReadOnly(d)),
		IdempotentHint:  mcp.ToBoolPtr(IsReadOnly(d)),
		OpenWorldHint:   mcp.ToBoolPtr(true),
	}

	slog.Debug("built descriptor tool", "name", d.ExposedName(), "tenant", d.TenantID, "method", d.HTTP.Method)

	return server.ServerTool{
		Tool:    mcpTool,
		Handler: NewDescriptorHandler(d, deps),
	}
}

var emptyObjectSchema = json.RawMessage(`{"type":"object","properties":{}}`)

func rawParameterSchema(d *descriptor.Descriptor) json.RawMessage {
	if d.Parameters == nil {
		return emptyObjectSchema
	}
	raw, err := json.Marshal(d.Parameters)
	if err != nil {
		slog.Error("failed to marshal parameter schema", "tool", d.Name, "error", err)
		return emptyObjectSchema
	}
	return raw
}
