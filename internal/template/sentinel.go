package template

import "strings"

// SentinelContext builds the request-time simulation context the linter
// templates descriptors through. Every path a correct template can reference
// resolves to a visible non-empty marker: "secrets" is generous at any depth,
// and "args" is generous below each declared parameter name. After rendering,
// any placeholder still present in the output cannot be a missing-value
// artifact; it is a malformed token (unknown root, undeclared argument, typo,
// stray braces). The context runs in MissKeep mode so those tokens survive
// verbatim for reporting.
func SentinelContext(declaredArgs []string) *Context {
	declared := make(map[string]struct{}, len(declaredArgs))
	for _, name := range declaredArgs {
		declared[name] = struct{}{}
	}
	return &Context{
		roots: map[string]Root{
			"args":    declaredRoot{declared: declared},
			"secrets": sentinelRoot{prefix: "secrets"},
		},
		mode: MissKeep,
	}
}

// sentinelRoot resolves every path, however deep, to a marker string that
// names the path it stands in for.
type sentinelRoot struct {
	prefix string
}

func (r sentinelRoot) Lookup(path []string) (any, bool) {
	return sentinelValue(r.prefix, path), true
}

// declaredRoot resolves only paths whose first segment is a declared
// parameter name; below that it is as generous as sentinelRoot. Bare "args"
// with no segment resolves to nothing, mirroring production where the args
// map itself is never a useful substitution.
type declaredRoot struct {
	declared map[string]struct{}
}

func (r declaredRoot) Lookup(path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	if _, ok := r.declared[path[0]]; !ok {
		return nil, false
	}
	return sentinelValue("args", path), true
}

func sentinelValue(prefix string, path []string) string {
	if len(path) == 0 {
		return "<sim:" + prefix + ">"
	}
	return "<sim:" + prefix + "." + strings.Join(path, ".") + ">"
}
