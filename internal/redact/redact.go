// Package redact masks credentials and caps sizes before values reach the
// log sink. It is applied symmetrically to outbound request logging and
// inbound response logging.
package redact

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Marker replaces any header value that looks like credential material.
const Marker = "[REDACTED]"

// maxLoggedLen caps every logged string or serialized value.
const maxLoggedLen = 1500

var sensitiveHeaderFragments = []string{"authorization", "api-key", "x-api-key"}

// IsSensitiveHeader reports whether a header key carries credential material.
func IsSensitiveHeader(key string) bool {
	lower := strings.ToLower(key)
	for _, fragment := range sensitiveHeaderFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

// Headers clones a header map with sensitive values masked. Values survive
// only when their key is safe; everything else becomes the marker.
func Headers(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}
	sanitized := make(map[string]string, len(headers))
	for k, v := range headers {
		if IsSensitiveHeader(k) {
			sanitized[k] = Marker
			continue
		}
		sanitized[k] = Truncate(v)
	}
	return sanitized
}

// Truncate caps s at the logging limit, appending a visible suffix when
// anything was cut. The cut point backs up to a rune boundary so the
// truncated string stays valid UTF-8.
func Truncate(s string) string {
	if len(s) <= maxLoggedLen {
		return s
	}
	cut := maxLoggedLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "... (truncated)"
}

// Value serializes a JSON-like value for logging, truncated to the cap.
// Strings are logged as-is; everything else is rendered as compact JSON.
func Value(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return Truncate(t)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return Truncate(fmt.Sprint(v))
		}
		return Truncate(string(b))
	}
}
