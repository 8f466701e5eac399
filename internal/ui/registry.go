package ui

import "sort"

// knownPanels is the closed set of panel component names the renderer
// understands, mapped to the prop keys each one cannot function without.
// The linter checks descriptor open instructions against this table; the
// renderer side keys its dispatch on the same names.
var knownPanels = map[string][]string{
	"payment_panel":      {"tenant_id", "amount", "payment_token"},
	"document_viewer":    {"url"},
	"confirmation_panel": {"message"},
	"form_panel":         {"fields", "submit_label"},
}

// RequiredProps returns the required prop keys for a known panel component.
// Unknown component names return ok=false; the linter treats those as
// uncheckable rather than wrong, since tenants may target custom panels.
func RequiredProps(componentName string) ([]string, bool) {
	props, ok := knownPanels[componentName]
	return props, ok
}

// KnownPanels lists the registered component names in stable order.
func KnownPanels() []string {
	names := make([]string, 0, len(knownPanels))
	for name := range knownPanels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
