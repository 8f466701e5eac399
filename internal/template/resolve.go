package template

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Placeholder paths are dotted identifier chains: "args.customer_id",
// "secrets.payments.api_key". Bracket or array-index syntax is not supported.
const pathPattern = `[A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*`

var (
	doubleBraceRe = regexp.MustCompile(`\{\{\s*(` + pathPattern + `)\s*\}\}`)
	singleBraceRe = regexp.MustCompile(`\{\s*(` + pathPattern + `)\s*\}`)
)

// Token is one placeholder span found in a template string.
type Token struct {
	// Raw is the full span including braces, e.g. "{{args.customer_id}}".
	Raw string
	// Path is the dotted path inside the braces.
	Path string
	// Root is the path segment before the first dot.
	Root string
}

// Tokens extracts every placeholder span from s, double-brace tokens first,
// then single-brace tokens from the regions in between. Used by the linter;
// the executor goes through Resolve/Apply instead.
func Tokens(s string) []Token {
	var tokens []Token
	last := 0
	var between []string
	for _, m := range doubleBraceRe.FindAllStringIndex(s, -1) {
		tokens = append(tokens, newToken(s[m[0]:m[1]], doubleBraceRe))
		between = append(between, s[last:m[0]])
		last = m[1]
	}
	between = append(between, s[last:])
	for _, region := range between {
		for _, raw := range singleBraceRe.FindAllString(region, -1) {
			tokens = append(tokens, newToken(raw, singleBraceRe))
		}
	}
	return tokens
}

func newToken(raw string, re *regexp.Regexp) Token {
	path := re.FindStringSubmatch(raw)[1]
	root, _, _ := strings.Cut(path, ".")
	return Token{Raw: raw, Path: path, Root: root}
}

// HasToken reports whether s still contains anything that parses as a
// placeholder. The linter's sentinel simulation uses this on rendered output,
// where any remaining token is a defect.
func HasToken(s string) bool {
	return doubleBraceRe.MatchString(s) || singleBraceRe.MatchString(s)
}

// Resolve substitutes placeholders in s against ctx. Double-brace tokens are
// resolved in a first pass; single-brace tokens are resolved in a second pass
// that only scans the regions the first pass did not produce, so a value
// substituted by pass one is never reinterpreted as a token by pass two.
func Resolve(s string, ctx *Context) string {
	if !strings.Contains(s, "{") {
		return s
	}

	// Pass one: double-brace tokens. Substituted spans are frozen; only the
	// literal text between them is handed to pass two.
	type segment struct {
		text   string
		frozen bool
	}
	var segments []segment
	last := 0
	for _, m := range doubleBraceRe.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > last {
			segments = append(segments, segment{text: s[last:m[0]]})
		}
		segments = append(segments, segment{text: ctx.substitute(s[m[0]:m[1]], s[m[2]:m[3]]), frozen: true})
		last = m[1]
	}
	if last < len(s) {
		segments = append(segments, segment{text: s[last:]})
	}

	// Pass two: single-brace tokens in the unfrozen regions.
	var b strings.Builder
	for _, seg := range segments {
		if seg.frozen {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(singleBraceRe.ReplaceAllStringFunc(seg.text, func(raw string) string {
			return ctx.substitute(raw, singleBraceRe.FindStringSubmatch(raw)[1])
		}))
	}
	return b.String()
}

// Apply walks a JSON-like value and resolves every string through Resolve.
// Arrays are mapped element-wise, objects key by key, and every other scalar
// (numbers, booleans, nil) passes through unchanged. The input is never
// mutated; containers are rebuilt.
func Apply(v any, ctx *Context) any {
	switch t := v.(type) {
	case string:
		return Resolve(t, ctx)
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			out[i] = Apply(elem, ctx)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			out[k] = Apply(elem, ctx)
		}
		return out
	default:
		return v
	}
}

// WalkStrings visits every string leaf of a JSON-like value, reporting a
// bracketed location (e.g. "body.items[0].url") alongside the string. The
// linter uses it to pinpoint where inside a body template an issue sits.
func WalkStrings(v any, loc string, visit func(loc, s string)) {
	switch t := v.(type) {
	case string:
		visit(loc, t)
	case []any:
		for i, elem := range t {
			WalkStrings(elem, fmt.Sprintf("%s[%d]", loc, i), visit)
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			WalkStrings(t[k], loc+"."+k, visit)
		}
	}
}

// Stringify renders a resolved value into template output. Strings pass
// through; everything else is rendered as compact JSON so numbers do not pick
// up a float suffix and objects stay machine-readable.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
