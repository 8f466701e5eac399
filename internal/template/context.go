package template

import "strings"

// Mode controls how a token whose path resolves to nothing is rendered.
type Mode int

const (
	// MissEmpty renders unresolvable tokens as the empty string. This is the
	// production behavior: a sparse argument set degrades to a broken but
	// harmless output instead of failing the call.
	MissEmpty Mode = iota
	// MissKeep leaves unresolvable tokens verbatim. Used by the linter's
	// sentinel simulation, where a surviving token proves a template defect.
	MissKeep
)

// Root resolves the remainder of a dotted path below a context root.
// Implementations must be read-only; a Context is shared across both
// substitution passes of a single call.
type Root interface {
	Lookup(path []string) (any, bool)
}

// Context is the namespace a template resolves against: a fixed set of named
// roots plus a miss policy. Which roots exist where is the security boundary
// of the whole engine, so contexts are only built through the constructors
// below and never grow roots afterwards.
type Context struct {
	roots map[string]Root
	mode  Mode
}

// RequestContext builds the context outbound request templates resolve
// against: "args" and "secrets" only. A response does not exist yet, so no
// response root is reachable here.
func RequestContext(args map[string]any, secrets Root) *Context {
	return &Context{roots: map[string]Root{
		"args":    MapRoot(args),
		"secrets": secrets,
	}}
}

// UIContext builds the context UI instructions resolve against: "args",
// "response" and "status". Secrets are structurally absent, so no template
// reachable from UI content can ever render one.
func UIContext(args map[string]any, response any, status int) *Context {
	return &Context{roots: map[string]Root{
		"args":     MapRoot(args),
		"response": ValueRoot{Value: response},
		"status":   ValueRoot{Value: status},
	}}
}

// WithMode returns a copy of the context using the given miss policy.
func (c *Context) WithMode(m Mode) *Context {
	return &Context{roots: c.roots, mode: m}
}

// lookup resolves a full dotted path, root segment included.
func (c *Context) lookup(path string) (any, bool) {
	parts := strings.Split(path, ".")
	root, ok := c.roots[parts[0]]
	if !ok {
		return nil, false
	}
	return root.Lookup(parts[1:])
}

// substitute renders one token: the stringified value when the path resolves,
// otherwise whatever the miss policy dictates.
func (c *Context) substitute(raw, path string) string {
	if v, ok := c.lookup(path); ok {
		return Stringify(v)
	}
	if c.mode == MissKeep {
		return raw
	}
	return ""
}

// MapRoot walks a nested map of JSON-like values. A path that steps through
// anything other than an object, or lands on a missing key, resolves to
// nothing.
type MapRoot map[string]any

func (r MapRoot) Lookup(path []string) (any, bool) {
	var current any = map[string]any(r)
	for _, part := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// ValueRoot exposes a single value at the root itself ("status", or a
// non-object response body). Dotted access descends into the value when it is
// an object.
type ValueRoot struct {
	Value any
}

func (r ValueRoot) Lookup(path []string) (any, bool) {
	if len(path) == 0 {
		return r.Value, true
	}
	obj, ok := r.Value.(map[string]any)
	if !ok {
		return nil, false
	}
	return MapRoot(obj).Lookup(path)
}
