package descriptor

import (
	"sort"
	"time"
)

// defaultTimeout bounds an outbound call when the descriptor does not set one.
const defaultTimeout = 15 * time.Second

// ExposedPrefix is prepended to every descriptor name before the tool is
// surfaced to the agent, keeping tenant tool names out of the built-in
// namespace.
const ExposedPrefix = "ext-"

// Descriptor is one tenant-authored HTTP tool: the shape of an outbound call
// expressed in the placeholder language, plus optional declarative UI
// instructions keyed on the call outcome. Descriptors are immutable once
// handed to the executor; no call mutates them.
type Descriptor struct {
	// Name is the unique identifier within a tenant's descriptor set.
	Name string `yaml:"name" json:"name"`

	// Description tells the agent what the tool does.
	Description string `yaml:"description" json:"description"`

	// TenantID scopes secret resolution. Derived from the config directory
	// layout when not set explicitly.
	TenantID string `yaml:"tenant_id,omitempty" json:"tenant_id,omitempty"`

	// Parameters is the JSON-Schema-shaped declaration of the arguments a
	// caller may supply. The linter cross-checks referenced argument names
	// against it, and it becomes the MCP tool input schema verbatim.
	Parameters *Schema `yaml:"parameters,omitempty" json:"parameters,omitempty"`

	// HTTP describes the outbound call.
	HTTP HTTPSpec `yaml:"http" json:"http"`

	// UI optionally describes which visual panel to open or close per outcome.
	UI *UISpec `yaml:"ui,omitempty" json:"ui,omitempty"`

	// Enabled defaults to true when absent.
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`

	// Priority orders tool listings; higher first.
	Priority int `yaml:"priority,omitempty" json:"priority,omitempty"`
}

// HTTPSpec is the templated call shape. Templates here may reference only the
// "args" and "secrets" context roots.
type HTTPSpec struct {
	Method      string            `yaml:"method" json:"method"`
	URLTemplate string            `yaml:"url_template" json:"url_template"`
	Headers     map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`

	// JSONBodyTemplate is an arbitrary JSON-like template; strings anywhere
	// inside it are resolved, everything else passes through.
	JSONBodyTemplate any `yaml:"json_body_template,omitempty" json:"json_body_template,omitempty"`

	// OKField is a dotted path into the parsed response body; when set, its
	// truthiness decides success instead of the HTTP status class.
	OKField string `yaml:"ok_field,omitempty" json:"ok_field,omitempty"`

	TimeoutMs int `yaml:"timeout_ms,omitempty" json:"timeout_ms,omitempty"`

	// PruneEmptyBody recursively drops null, empty-string, empty-array and
	// empty-object values from the rendered body, after templating, so a
	// placeholder that resolved to nothing is pruned too. Zero and false
	// are preserved.
	PruneEmptyBody bool `yaml:"prune_empty_body,omitempty" json:"prune_empty_body,omitempty"`
}

// UISpec holds the declarative UI instructions. Templates here may reference
// "args", "response" and "status", never "secrets".
type UISpec struct {
	LoadingMessage string    `yaml:"loading_message,omitempty" json:"loading_message,omitempty"`
	OnSuccess      *UIBranch `yaml:"on_success,omitempty" json:"on_success,omitempty"`
	OnError        *UIBranch `yaml:"on_error,omitempty" json:"on_error,omitempty"`
}

// UIBranch is zero or one open action and zero or one close action.
type UIBranch struct {
	Open  *OpenInstruction `yaml:"open,omitempty" json:"open,omitempty"`
	Close bool             `yaml:"close,omitempty" json:"close,omitempty"`
}

// OpenInstruction names a visual panel and its props.
type OpenInstruction struct {
	ComponentName string         `yaml:"component_name" json:"component_name"`
	Title         string         `yaml:"title,omitempty" json:"title,omitempty"`
	Description   string         `yaml:"description,omitempty" json:"description,omitempty"`
	Size          string         `yaml:"size,omitempty" json:"size,omitempty"`
	Props         map[string]any `yaml:"props,omitempty" json:"props,omitempty"`
}

// Schema is the JSON-Schema-shaped parameter declaration. Only the subset
// descriptor authors actually need is modeled; it marshals straight into the
// MCP tool input schema.
type Schema struct {
	Type       string              `yaml:"type,omitempty" json:"type,omitempty"`
	Properties map[string]Property `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required   []string            `yaml:"required,omitempty" json:"required,omitempty"`
}

// Property declares one argument.
type Property struct {
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
	Enum        []any  `yaml:"enum,omitempty" json:"enum,omitempty"`
}

// IsEnabled reports whether the descriptor should be exposed; absent means
// enabled.
func (d *Descriptor) IsEnabled() bool {
	return d.Enabled == nil || *d.Enabled
}

// ExposedName is the tool name the agent sees.
func (d *Descriptor) ExposedName() string {
	return ExposedPrefix + d.Name
}

// Timeout is the hard per-call deadline.
func (d *Descriptor) Timeout() time.Duration {
	if d.HTTP.TimeoutMs > 0 {
		return time.Duration(d.HTTP.TimeoutMs) * time.Millisecond
	}
	return defaultTimeout
}

// ParamNames lists the declared argument names in sorted order, for the
// linter cross-check, the sentinel simulation and the catalog listing.
func (d *Descriptor) ParamNames() []string {
	if d.Parameters == nil {
		return nil
	}
	names := make([]string, 0, len(d.Parameters.Properties))
	for name := range d.Parameters.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
