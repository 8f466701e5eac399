package descriptor

import (
	"testing"
	"time"
)

// The parameter list feeds the catalog output; map iteration must not leak
// through as call-to-call reordering.
func TestParamNamesSorted(t *testing.T) {
	d := &Descriptor{
		Name: "submit-ticket",
		Parameters: &Schema{
			Type: "object",
			Properties: map[string]Property{
				"subject":  {Type: "string"},
				"body":     {Type: "string"},
				"priority": {Type: "string"},
				"assignee": {Type: "string"},
			},
		},
	}

	want := []string{"assignee", "body", "priority", "subject"}
	for i := 0; i < 10; i++ {
		got := d.ParamNames()
		if len(got) != len(want) {
			t.Fatalf("ParamNames returned %d names, want %d", len(got), len(want))
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("ParamNames()[%d] = %q, want %q (full: %v)", j, got[j], want[j], got)
			}
		}
	}
}

func TestParamNamesNilSchema(t *testing.T) {
	d := &Descriptor{Name: "no-args"}
	if got := d.ParamNames(); got != nil {
		t.Errorf("ParamNames on nil schema = %v, want nil", got)
	}
}

func TestTimeoutDefault(t *testing.T) {
	d := &Descriptor{Name: "x"}
	if got := d.Timeout(); got != 15*time.Second {
		t.Errorf("default timeout = %v, want 15s", got)
	}
	d.HTTP.TimeoutMs = 2500
	if got := d.Timeout(); got != 2500*time.Millisecond {
		t.Errorf("timeout = %v, want 2.5s", got)
	}
}
