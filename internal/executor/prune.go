package executor

// pruneEmpty recursively drops null, empty-string, empty-array and
// empty-object values from a rendered body. Zero and false are meaningful
// payload and survive. Containers are rebuilt; the input is not mutated.
func pruneEmpty(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			pruned := pruneEmpty(elem)
			if isEmptyValue(pruned) {
				continue
			}
			out[k] = pruned
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, elem := range t {
			pruned := pruneEmpty(elem)
			if isEmptyValue(pruned) {
				continue
			}
			out = append(out, pruned)
		}
		return out
	default:
		return v
	}
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	default:
		return false
	}
}
