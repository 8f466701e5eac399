// Package lint statically validates descriptor batches before they are
// promoted to production traffic. Every check is independent, side-effect
// free and deterministic; a lint run never performs network calls. Issues
// are a pre-deployment gate only and never halt a live call.
package lint

import (
	"github.com/openconvo/httptools-mcp/internal/descriptor"
)

// Severity of a lint issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue codes, one per check.
const (
	CodeRequestTokenRoot   = "request-token-root"
	CodeOKFieldSyntax      = "ok-field-syntax"
	CodeUITokenRoot        = "ui-token-root"
	CodeUISecretLeak       = "ui-secret-leak"
	CodePanelMissingProp   = "panel-missing-prop"
	CodeUndeclaredArgument = "undeclared-argument"
	CodeUnresolvedToken    = "unresolved-token"
)

// Issue is one finding at one location inside a descriptor.
type Issue struct {
	Severity   Severity `json:"severity"`
	Code       string   `json:"code"`
	Path       string   `json:"path"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Result groups a descriptor's issues. A descriptor with zero issues is a
// pass.
type Result struct {
	Name     string  `json:"name"`
	TenantID string  `json:"tenant_id,omitempty"`
	Enabled  bool    `json:"enabled"`
	Issues   []Issue `json:"issues"`
}

// HasErrors reports whether any descriptor in the batch produced an
// error-severity issue. The authoring workflow blocks promotion on it.
func HasErrors(results []Result) bool {
	for _, r := range results {
		for _, issue := range r.Issues {
			if issue.Severity == SeverityError {
				return true
			}
		}
	}
	return false
}

// Lint runs the full check battery over a descriptor batch. Checks run in a
// fixed order per descriptor, so output is deterministic given the same
// input.
func Lint(descriptors []*descriptor.Descriptor) []Result {
	results := make([]Result, 0, len(descriptors))
	for _, d := range descriptors {
		results = append(results, Result{
			Name:     d.Name,
			TenantID: d.TenantID,
			Enabled:  d.IsEnabled(),
			Issues:   lintOne(d),
		})
	}
	return results
}

func lintOne(d *descriptor.Descriptor) []Issue {
	var issues []Issue
	issues = append(issues, checkRequestTokenRoots(d)...)
	issues = append(issues, checkOKFieldSyntax(d)...)
	issues = append(issues, checkUITokenRoots(d)...)
	issues = append(issues, checkPanelProps(d)...)
	issues = append(issues, checkDeclaredArguments(d)...)
	issues = append(issues, checkUnresolvedTokens(d)...)
	return issues
}
