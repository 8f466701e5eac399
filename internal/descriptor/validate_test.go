package descriptor

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func parseRaw(t *testing.T, doc string) map[string]any {
	t.Helper()
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(doc), &raw); err != nil {
		t.Fatalf("yaml parse failed: %v", err)
	}
	return raw
}

func TestValidateStructure(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		valid bool
	}{
		{
			name: "minimal valid descriptor",
			doc: `
name: ping
description: Ping a service.
http:
  method: GET
  url_template: "https://api.example.com/ping"
`,
			valid: true,
		},
		{
			name: "full descriptor with ui and body",
			doc: `
name: create-refund
description: Create a refund.
tenant_id: acme
parameters:
  type: object
  properties:
    amount:
      type: number
  required: [amount]
http:
  method: POST
  url_template: "https://api.example.com/refunds"
  headers:
    Authorization: "Bearer {{secrets.k}}"
  json_body_template:
    amount: "{args.amount}"
    nested:
      flag: true
      count: 3
  ok_field: refund.ok
  timeout_ms: 5000
  prune_empty_body: true
ui:
  loading_message: Working...
  on_success:
    open:
      component_name: payment_panel
      title: Done
      props:
        amount: "{args.amount}"
  on_error:
    close: true
enabled: true
priority: 5
`,
			valid: true,
		},
		{
			name: "missing http method",
			doc: `
name: broken
description: Broken.
http:
  url_template: "https://api.example.com/x"
`,
			valid: false,
		},
		{
			name: "missing description",
			doc: `
name: broken
http:
  method: GET
  url_template: "https://api.example.com/x"
`,
			valid: false,
		},
		{
			name: "unknown top-level field",
			doc: `
name: broken
description: Broken.
htttp:
  method: GET
  url_template: "https://api.example.com/x"
http:
  method: GET
  url_template: "https://api.example.com/x"
`,
			valid: false,
		},
		{
			name: "open instruction without component name",
			doc: `
name: broken
description: Broken.
http:
  method: GET
  url_template: "https://api.example.com/x"
ui:
  on_success:
    open:
      title: Oops
`,
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := ValidateStructure(parseRaw(t, tt.doc))
			if err != nil {
				t.Fatalf("ValidateStructure returned error: %v", err)
			}
			if verdict.Valid != tt.valid {
				t.Errorf("valid = %v, want %v (issues: %v)", verdict.Valid, tt.valid, verdict.Issues)
			}
			if !tt.valid && len(verdict.Issues) == 0 {
				t.Error("invalid verdict carries no issues")
			}
		})
	}
}
