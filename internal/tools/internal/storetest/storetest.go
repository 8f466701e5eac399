// Package storetest builds small descriptor stores for tool handler tests.
package storetest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openconvo/httptools-mcp/internal/descriptor"
)

const lookupOrderYAML = `name: lookup-order
description: Look up an order by its ID.
parameters:
  type: object
  properties:
    order_id:
      type: string
  required: [order_id]
http:
  method: GET
  url_template: "https://api.example.com/orders/{args.order_id}"
  headers:
    Authorization: "Bearer {{secrets.api_key}}"
`

const createRefundYAML = `name: create-refund
description: Create a refund for an order.
parameters:
  type: object
  properties:
    order_id:
      type: string
    amount:
      type: number
http:
  method: POST
  url_template: "https://api.example.com/refunds"
  json_body_template:
    order: "{args.order_id}"
    amount: "{args.amount}"
  ok_field: refund.ok
`

const submitTicketYAML = `name: submit-ticket
description: Submit a support ticket.
parameters:
  type: object
  properties:
    subject:
      type: string
http:
  method: POST
  url_template: "https://support.example.com/tickets"
ui:
  on_success:
    open:
      component_name: confirmation_panel
      props:
        message: "Ticket {response.ticket.id} created"
`

// LoadStore writes a three-descriptor fixture set (two acme, one globex) to a
// temp directory and loads it.
func LoadStore(t *testing.T) *descriptor.Store {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"acme/lookup-order.yaml":    lookupOrderYAML,
		"acme/create-refund.yaml":   createRefundYAML,
		"globex/submit-ticket.yaml": submitTicketYAML,
	}
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create fixture dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write fixture file: %v", err)
		}
	}

	store := descriptor.NewStore(dir)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load fixture store: %v", err)
	}
	return store
}
