package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openconvo/httptools-mcp/internal/descriptor"
	"github.com/openconvo/httptools-mcp/internal/lint"
)

func baseDescriptor() *descriptor.Descriptor {
	return &descriptor.Descriptor{
		Name:        "lookup-order",
		Description: "Look up an order.",
		TenantID:    "acme",
		Parameters: &descriptor.Schema{
			Type: "object",
			Properties: map[string]descriptor.Property{
				"order_id": {Type: "string"},
			},
			Required: []string{"order_id"},
		},
		HTTP: descriptor.HTTPSpec{
			Method:      "GET",
			URLTemplate: "https://api.example.com/orders/{args.order_id}",
			Headers: map[string]string{
				"Authorization": "Bearer {{secrets.api_key}}",
			},
		},
	}
}

func issuesWithCode(issues []lint.Issue, code string) []lint.Issue {
	var out []lint.Issue
	for _, issue := range issues {
		if issue.Code == code {
			out = append(out, issue)
		}
	}
	return out
}

func TestLintCleanDescriptorPasses(t *testing.T) {
	results := lint.Lint([]*descriptor.Descriptor{baseDescriptor()})
	require.Len(t, results, 1)
	assert.Equal(t, "lookup-order", results[0].Name)
	assert.Equal(t, "acme", results[0].TenantID)
	assert.True(t, results[0].Enabled)
	assert.Empty(t, results[0].Issues)
	assert.False(t, lint.HasErrors(results))
}

func TestLintRequestTokenRootViolation(t *testing.T) {
	d := baseDescriptor()
	d.HTTP.Headers = map[string]string{
		"Authorization": "Bearer {{response.token}}",
	}

	results := lint.Lint([]*descriptor.Descriptor{d})
	require.Len(t, results, 1)

	rootIssues := issuesWithCode(results[0].Issues, lint.CodeRequestTokenRoot)
	require.Len(t, rootIssues, 1, "exactly one request-root error expected, got %#v", results[0].Issues)
	assert.Equal(t, lint.SeverityError, rootIssues[0].Severity)
	assert.Equal(t, "http.headers.Authorization", rootIssues[0].Path)
	assert.Contains(t, rootIssues[0].Message, "response")

	// One defect, one finding: the simulation must not re-report a token the
	// root check already flagged.
	var errorCount int
	for _, issue := range results[0].Issues {
		if issue.Severity == lint.SeverityError {
			errorCount++
		}
	}
	assert.Equal(t, 1, errorCount, "root violation must yield exactly one error, got %#v", results[0].Issues)
}

func TestLintSecretLeakInUI(t *testing.T) {
	d := baseDescriptor()
	d.UI = &descriptor.UISpec{
		OnSuccess: &descriptor.UIBranch{
			Open: &descriptor.OpenInstruction{
				ComponentName: "document_viewer",
				Props: map[string]any{
					"url": "https://docs.example.com",
					"key": "{{secrets.apiKey}}",
				},
			},
		},
	}

	results := lint.Lint([]*descriptor.Descriptor{d})
	leaks := issuesWithCode(results[0].Issues, lint.CodeUISecretLeak)
	require.Len(t, leaks, 1)
	assert.Equal(t, lint.SeverityError, leaks[0].Severity)
	assert.Contains(t, leaks[0].Message, "secrets must never reach the client")
	assert.Contains(t, leaks[0].Path, "ui.on_success.open.props")
	assert.True(t, lint.HasErrors(results))
}

func TestLintUITokenRootViolation(t *testing.T) {
	d := baseDescriptor()
	d.UI = &descriptor.UISpec{
		LoadingMessage: "Working on {request.id}...",
	}

	results := lint.Lint([]*descriptor.Descriptor{d})
	issues := issuesWithCode(results[0].Issues, lint.CodeUITokenRoot)
	require.Len(t, issues, 1)
	assert.Equal(t, "ui.loading_message", issues[0].Path)
}

func TestLintOKFieldSyntax(t *testing.T) {
	d := baseDescriptor()
	d.HTTP.OKField = "result.ok; drop table"

	results := lint.Lint([]*descriptor.Descriptor{d})
	issues := issuesWithCode(results[0].Issues, lint.CodeOKFieldSyntax)
	require.Len(t, issues, 1)
	assert.Equal(t, lint.SeverityWarning, issues[0].Severity)

	// A plain dotted path, including array-ish brackets, is accepted.
	d2 := baseDescriptor()
	d2.HTTP.OKField = "results[0].ok"
	results2 := lint.Lint([]*descriptor.Descriptor{d2})
	assert.Empty(t, issuesWithCode(results2[0].Issues, lint.CodeOKFieldSyntax))
}

func TestLintPanelMissingProps(t *testing.T) {
	d := baseDescriptor()
	d.UI = &descriptor.UISpec{
		OnSuccess: &descriptor.UIBranch{
			Open: &descriptor.OpenInstruction{
				ComponentName: "payment_panel",
				Props: map[string]any{
					"tenant_id": "acme",
				},
			},
		},
	}

	results := lint.Lint([]*descriptor.Descriptor{d})
	missing := issuesWithCode(results[0].Issues, lint.CodePanelMissingProp)
	require.Len(t, missing, 2, "amount and payment_token are both missing")
	for _, issue := range missing {
		assert.Equal(t, lint.SeverityError, issue.Severity)
		assert.NotEmpty(t, issue.Suggestion)
	}

	// Unknown component names are uncheckable, not wrong.
	d2 := baseDescriptor()
	d2.UI = &descriptor.UISpec{
		OnSuccess: &descriptor.UIBranch{
			Open: &descriptor.OpenInstruction{ComponentName: "tenant_custom_panel"},
		},
	}
	results2 := lint.Lint([]*descriptor.Descriptor{d2})
	assert.Empty(t, issuesWithCode(results2[0].Issues, lint.CodePanelMissingProp))
}

func TestLintUndeclaredArgument(t *testing.T) {
	d := baseDescriptor()
	d.HTTP.URLTemplate = "https://api.example.com/orders/{args.order_id}?expand={args.expand}"

	results := lint.Lint([]*descriptor.Descriptor{d})
	warnings := issuesWithCode(results[0].Issues, lint.CodeUndeclaredArgument)
	require.Len(t, warnings, 1)
	assert.Equal(t, lint.SeverityWarning, warnings[0].Severity)
	assert.Contains(t, warnings[0].Message, "expand")
}

// The sentinel simulation proves every legitimate path resolves; whatever
// placeholder survives templating is a defect, reported verbatim.
func TestLintUnresolvedTokenSimulation(t *testing.T) {
	d := baseDescriptor()
	d.HTTP.URLTemplate = "https://api/{args.order_id}/{args.typo_field}"

	results := lint.Lint([]*descriptor.Descriptor{d})
	unresolved := issuesWithCode(results[0].Issues, lint.CodeUnresolvedToken)
	require.Len(t, unresolved, 1)
	assert.Equal(t, lint.SeverityError, unresolved[0].Severity)
	assert.Equal(t, "http.url_template", unresolved[0].Path)
	assert.Contains(t, unresolved[0].Message, "{args.typo_field}")
}

func TestLintUnresolvedTokenInBodyAndHeaders(t *testing.T) {
	d := baseDescriptor()
	d.HTTP.Method = "POST"
	d.HTTP.Headers["X-Request-For"] = "{args.order_ref}" // undeclared argument
	d.HTTP.JSONBodyTemplate = map[string]any{
		"order": "{args.order_id}",
		"items": []any{map[string]any{"note": "{args.note}"}},
	}

	results := lint.Lint([]*descriptor.Descriptor{d})
	unresolved := issuesWithCode(results[0].Issues, lint.CodeUnresolvedToken)
	require.Len(t, unresolved, 2)

	paths := []string{unresolved[0].Path, unresolved[1].Path}
	assert.Contains(t, paths, "http.headers.X-Request-For")
	assert.Contains(t, paths, "http.json_body_template.items[0].note")
}

// A token with an unknown root belongs to the root check alone; the
// simulation only reports legal-root tokens that failed to resolve.
func TestLintIllegalRootNotDoubleReported(t *testing.T) {
	d := baseDescriptor()
	d.HTTP.Method = "POST"
	d.HTTP.JSONBodyTemplate = map[string]any{
		"note": "{arg.order_id}", // typo'd root
	}

	results := lint.Lint([]*descriptor.Descriptor{d})
	assert.Len(t, issuesWithCode(results[0].Issues, lint.CodeRequestTokenRoot), 1)
	assert.Empty(t, issuesWithCode(results[0].Issues, lint.CodeUnresolvedToken))
}

func TestLintMultipleDescriptorsKeepOrder(t *testing.T) {
	clean := baseDescriptor()
	broken := baseDescriptor()
	broken.Name = "broken-tool"
	broken.HTTP.URLTemplate = "https://api/{args.nope}"

	results := lint.Lint([]*descriptor.Descriptor{clean, broken})
	require.Len(t, results, 2)
	assert.Equal(t, "lookup-order", results[0].Name)
	assert.Empty(t, results[0].Issues)
	assert.Equal(t, "broken-tool", results[1].Name)
	assert.NotEmpty(t, results[1].Issues)
}
