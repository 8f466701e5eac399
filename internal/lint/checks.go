package lint

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/openconvo/httptools-mcp/internal/descriptor"
	"github.com/openconvo/httptools-mcp/internal/template"
	"github.com/openconvo/httptools-mcp/internal/ui"
)

// requestString is one templated string of the request section with its
// location, the unit all request-side checks iterate over.
type requestString struct {
	path  string
	value string
}

func requestStrings(d *descriptor.Descriptor) []requestString {
	out := []requestString{{path: "http.url_template", value: d.HTTP.URLTemplate}}
	for _, name := range sortedKeys(d.HTTP.Headers) {
		out = append(out, requestString{path: "http.headers." + name, value: d.HTTP.Headers[name]})
	}
	template.WalkStrings(d.HTTP.JSONBodyTemplate, "http.json_body_template", func(loc, s string) {
		out = append(out, requestString{path: loc, value: s})
	})
	return out
}

func uiStrings(d *descriptor.Descriptor) []requestString {
	if d.UI == nil {
		return nil
	}
	out := []requestString{}
	if d.UI.LoadingMessage != "" {
		out = append(out, requestString{path: "ui.loading_message", value: d.UI.LoadingMessage})
	}
	for _, branch := range uiBranches(d) {
		if branch.branch.Open == nil {
			continue
		}
		branchName := branch.path
		open := branch.branch.Open
		out = append(out,
			requestString{path: branchName + ".open.title", value: open.Title},
			requestString{path: branchName + ".open.description", value: open.Description},
		)
		template.WalkStrings(open.Props, branchName+".open.props", func(loc, s string) {
			out = append(out, requestString{path: loc, value: s})
		})
	}
	return out
}

// Check 1: every placeholder in the request section must be rooted at "args"
// or "secrets". The request is built before any response exists, so a
// "response" root there is always a bug, not a style problem.
func checkRequestTokenRoots(d *descriptor.Descriptor) []Issue {
	var issues []Issue
	for _, rs := range requestStrings(d) {
		for _, token := range template.Tokens(rs.value) {
			if token.Root == "args" || token.Root == "secrets" {
				continue
			}
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     CodeRequestTokenRoot,
				Path:     rs.path,
				Message:  fmt.Sprintf("token %s uses root %q; request templates may only reference args or secrets", token.Raw, token.Root),
			})
		}
	}
	return issues
}

var okFieldRe = regexp.MustCompile(`^[A-Za-z0-9_.\[\]]+$`)

// Check 2: an okField with unexpected characters is most likely a
// copy-paste mistake.
func checkOKFieldSyntax(d *descriptor.Descriptor) []Issue {
	if d.HTTP.OKField == "" || okFieldRe.MatchString(d.HTTP.OKField) {
		return nil
	}
	return []Issue{{
		Severity:   SeverityWarning,
		Code:       CodeOKFieldSyntax,
		Path:       "http.ok_field",
		Message:    fmt.Sprintf("ok_field %q contains unexpected characters", d.HTTP.OKField),
		Suggestion: "use a plain dotted path into the response body, e.g. \"result.ok\"",
	}}
}

// Check 3: UI content may reference args, response and status. A "secrets"
// root here would hand credential material to the client and is reported
// with its own code so the authoring surface can shout about it.
func checkUITokenRoots(d *descriptor.Descriptor) []Issue {
	var issues []Issue
	for _, us := range uiStrings(d) {
		for _, token := range template.Tokens(us.value) {
			switch token.Root {
			case "args", "response", "status":
				continue
			case "secrets":
				issues = append(issues, Issue{
					Severity: SeverityError,
					Code:     CodeUISecretLeak,
					Path:     us.path,
					Message:  fmt.Sprintf("token %s references secrets inside UI content; secrets must never reach the client", token.Raw),
				})
			default:
				issues = append(issues, Issue{
					Severity: SeverityError,
					Code:     CodeUITokenRoot,
					Path:     us.path,
					Message:  fmt.Sprintf("token %s uses root %q; UI templates may only reference args, response or status", token.Raw, token.Root),
				})
			}
		}
	}
	return issues
}

// Check 4: open instructions targeting a known panel type must carry the
// props that panel cannot render without.
func checkPanelProps(d *descriptor.Descriptor) []Issue {
	if d.UI == nil {
		return nil
	}
	var issues []Issue
	for _, b := range uiBranches(d) {
		if b.branch.Open == nil {
			continue
		}
		branchName := b.path
		open := b.branch.Open
		required, known := ui.RequiredProps(open.ComponentName)
		if !known {
			continue
		}
		for _, key := range required {
			if _, present := open.Props[key]; present {
				continue
			}
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Code:       CodePanelMissingProp,
				Path:       branchName + ".open.props",
				Message:    fmt.Sprintf("panel %q requires prop %q", open.ComponentName, key),
				Suggestion: fmt.Sprintf("add %q: \"{response.%s}\" (or an args reference) to the props", key, key),
			})
		}
	}
	return issues
}

type namedBranch struct {
	path   string
	branch *descriptor.UIBranch
}

// uiBranches returns the success branch before the error branch so issue
// order is stable.
func uiBranches(d *descriptor.Descriptor) []namedBranch {
	var out []namedBranch
	if d.UI == nil {
		return out
	}
	if d.UI.OnSuccess != nil {
		out = append(out, namedBranch{path: "ui.on_success", branch: d.UI.OnSuccess})
	}
	if d.UI.OnError != nil {
		out = append(out, namedBranch{path: "ui.on_error", branch: d.UI.OnError})
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Check 5: every args.<name> consumed by the request section should be
// declared in the parameter schema, or the agent is never told it may pass
// it.
func checkDeclaredArguments(d *descriptor.Descriptor) []Issue {
	declared := make(map[string]struct{})
	for _, name := range d.ParamNames() {
		declared[name] = struct{}{}
	}

	var issues []Issue
	seen := make(map[string]struct{})
	for _, rs := range requestStrings(d) {
		for _, token := range template.Tokens(rs.value) {
			if token.Root != "args" {
				continue
			}
			rest := strings.TrimPrefix(token.Path, "args.")
			if rest == token.Path {
				continue // bare "args", left to the simulation check
			}
			name, _, _ := strings.Cut(rest, ".")
			if _, ok := declared[name]; ok {
				continue
			}
			if _, dup := seen[name+"|"+rs.path]; dup {
				continue
			}
			seen[name+"|"+rs.path] = struct{}{}
			issues = append(issues, Issue{
				Severity:   SeverityWarning,
				Code:       CodeUndeclaredArgument,
				Path:       rs.path,
				Message:    fmt.Sprintf("argument %q is consumed by the template but not declared in parameters", name),
				Suggestion: fmt.Sprintf("declare %q under parameters.properties or fix the token", name),
			})
		}
	}
	return issues
}

// Check 6: sentinel simulation. The request section is templated against a
// context where every legitimate path resolves to a visible marker; any
// placeholder surviving in the rendered output is therefore a malformed
// token, reported verbatim with the exact location it came from.
func checkUnresolvedTokens(d *descriptor.Descriptor) []Issue {
	ctx := template.SentinelContext(d.ParamNames())

	var issues []Issue
	report := func(path, rendered string) {
		for _, token := range template.Tokens(rendered) {
			// Tokens with an illegal root are already the root check's
			// finding; reporting them here again would double-count one
			// defect. The simulation owns only tokens that name a legal
			// root yet still failed to resolve.
			if token.Root != "args" && token.Root != "secrets" {
				continue
			}
			issues = append(issues, Issue{
				Severity: SeverityError,
				Code:     CodeUnresolvedToken,
				Path:     path,
				Message:  fmt.Sprintf("token %s does not resolve against any legal context path", token.Raw),
			})
		}
	}

	report("http.url_template", template.Resolve(d.HTTP.URLTemplate, ctx))
	for _, name := range sortedKeys(d.HTTP.Headers) {
		report("http.headers."+name, template.Resolve(d.HTTP.Headers[name], ctx))
	}
	rendered := template.Apply(d.HTTP.JSONBodyTemplate, ctx)
	template.WalkStrings(rendered, "http.json_body_template", func(loc, s string) {
		report(loc, s)
	})
	return issues
}
