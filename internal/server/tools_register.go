package server

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/openconvo/httptools-mcp/internal/tools"
	"github.com/openconvo/httptools-mcp/internal/tools/catalog"
	"github.com/openconvo/httptools-mcp/internal/tools/dynamic"
	"github.com/openconvo/httptools-mcp/internal/tools/guide"
	"github.com/openconvo/httptools-mcp/internal/tools/lintreport"
)

// registerTools registers all enabled MCP tools and adds them to the provided MCP server.
// Tools are filtered according to the server configuration. When read-only mode is enabled
// (e.g. via the HTTPTOOLS_READ_ONLY environment variable or the Config.ReadOnly flag),
// descriptor tools whose HTTP method mutates upstream state are excluded; only tools
// annotated as read-only will be registered. When a tenant is pinned via Config.TenantID,
// descriptor tools belonging to other tenants are excluded; admin tools are always kept.
func (s *HTTPToolsMCPServer) registerTools() error {
	filteredTools := s.getEnabledTools()
	s.MCPServer.AddTools(filteredTools...)
	return nil
}

type toolFilter func(tools []ToolDefinition) []ToolDefinition

type toolCategory int

const (
	adminCategory      toolCategory = 0 // Catalog, lint and guide tools
	descriptorCategory toolCategory = 1 // Tenant descriptor-backed tools
)

type ToolDefinition struct {
	category   toolCategory
	definition server.ServerTool
	readonly   bool
	tenantID   string
}

func (s *HTTPToolsMCPServer) getEnabledTools() []server.ServerTool {
	filters := make([]toolFilter, 0)

	// If read-only mode is enabled, expose only tools annotated as read-only.
	if s.config != nil && s.config.ReadOnly {
		filters = append(filters, filterWriteTools)
	}
	// If a tenant is pinned, hide other tenants' descriptor tools.
	if s.config != nil && s.config.TenantID != "" {
		filters = append(filters, filterByTenant(s.config.TenantID))
	}

	deps := &tools.ToolDependencies{
		Store:            s.store,
		Executor:         s.executor,
		AnalyticsService: s.anService,
	}
	toolDefs := s.getAllToolsDefs(deps)

	for _, filter := range filters {
		toolDefs = filter(toolDefs)
	}
	enabledTools := make([]server.ServerTool, 0)
	for _, toolDef := range toolDefs {
		enabledTools = append(enabledTools, toolDef.definition)
	}
	return enabledTools
}

func filterWriteTools(tools []ToolDefinition) []ToolDefinition {
	readOnlyTools := make([]ToolDefinition, 0, len(tools))
	for _, t := range tools {
		if t.readonly {
			readOnlyTools = append(readOnlyTools, t)
		}
	}
	return readOnlyTools
}

func filterByTenant(tenantID string) toolFilter {
	return func(tools []ToolDefinition) []ToolDefinition {
		kept := make([]ToolDefinition, 0, len(tools))
		for _, t := range tools {
			if t.category != descriptorCategory || t.tenantID == tenantID {
				kept = append(kept, t)
			}
		}
		return kept
	}
}

// getAllToolsDefs returns all available tools with their specs and handlers
func (s *HTTPToolsMCPServer) getAllToolsDefs(deps *tools.ToolDependencies) []ToolDefinition {
	toolDefs := []ToolDefinition{
		{
			category: adminCategory,
			definition: server.ServerTool{
				Tool:    catalog.Spec(),
				Handler: catalog.Handler(deps),
			},
			readonly: true,
		},
		{
			category: adminCategory,
			definition: server.ServerTool{
				Tool:    lintreport.Spec(),
				Handler: lintreport.Handler(deps),
			},
			readonly: true,
		},
		{
			category: adminCategory,
			definition: server.ServerTool{
				Tool:    guide.Spec(),
				Handler: guide.Handler(deps),
			},
			readonly: true,
		},
	}

	// Load descriptor-backed tools from the store
	descriptorTools := s.loadDescriptorTools(deps)
	toolDefs = append(toolDefs, descriptorTools...)

	return toolDefs
}

// loadDescriptorTools converts every enabled descriptor into a tool definition
func (s *HTTPToolsMCPServer) loadDescriptorTools(deps *tools.ToolDependencies) []ToolDefinition {
	registry := dynamic.NewToolRegistry(s.store)

	if registry.GetToolCount() == 0 {
		slog.Info("no enabled descriptors found in descriptor directory")
		return []ToolDefinition{}
	}

	slog.Info("loaded descriptor tools", "count", registry.GetToolCount())

	serverTools := registry.GetServerTools(deps)
	descriptors := s.store.Enabled()
	toolDefs := make([]ToolDefinition, 0, len(serverTools))

	for i, serverTool := range serverTools {
		toolDefs = append(toolDefs, ToolDefinition{
			category:   descriptorCategory,
			definition: serverTool,
			readonly:   dynamic.IsReadOnly(descriptors[i]),
			tenantID:   descriptors[i].TenantID,
		})
	}

	return toolDefs
}
