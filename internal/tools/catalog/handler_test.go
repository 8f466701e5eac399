package catalog_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/mock/gomock"

	analytics "github.com/openconvo/httptools-mcp/internal/analytics/mocks"
	"github.com/openconvo/httptools-mcp/internal/tools"
	"github.com/openconvo/httptools-mcp/internal/tools/catalog"
	"github.com/openconvo/httptools-mcp/internal/tools/internal/storetest"
)

func TestListDescriptorsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyticsService := analytics.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolCallEvent(gomock.Any()).AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()

	store := storetest.LoadStore(t)
	deps := &tools.ToolDependencies{
		Store:            store,
		AnalyticsService: analyticsService,
	}
	handler := catalog.Handler(deps)

	t.Run("lists every enabled descriptor", func(t *testing.T) {
		result, err := handler(context.Background(), mcp.CallToolRequest{})
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}

		var entries []catalog.Entry
		textContent := result.Content[0].(mcp.TextContent)
		if err := json.Unmarshal([]byte(textContent.Text), &entries); err != nil {
			t.Fatalf("listing is not valid JSON: %v", err)
		}

		if len(entries) != len(store.Enabled()) {
			t.Errorf("expected %d entries, got %d", len(store.Enabled()), len(entries))
		}
		for _, entry := range entries {
			if entry.Name == "" || entry.Method == "" || entry.URLTemplate == "" {
				t.Errorf("incomplete entry: %+v", entry)
			}
		}
	})

	t.Run("filters by tenant", func(t *testing.T) {
		request := mcp.CallToolRequest{}
		request.Params.Arguments = map[string]any{"tenantId": "acme"}

		result, err := handler(context.Background(), request)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}

		var entries []catalog.Entry
		textContent := result.Content[0].(mcp.TextContent)
		if err := json.Unmarshal([]byte(textContent.Text), &entries); err != nil {
			t.Fatalf("listing is not valid JSON: %v", err)
		}

		if len(entries) == 0 {
			t.Fatal("expected at least one acme descriptor")
		}
		for _, entry := range entries {
			if entry.TenantID != "acme" {
				t.Errorf("entry %s leaked from tenant %q", entry.Name, entry.TenantID)
			}
		}
	})

	t.Run("fails without a store", func(t *testing.T) {
		handler := catalog.Handler(&tools.ToolDependencies{AnalyticsService: analyticsService})
		result, err := handler(context.Background(), mcp.CallToolRequest{})
		if err != nil {
			t.Fatalf("Expected no transport error, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected an error result when the store is missing")
		}
	})
}
