package analytics

import "time"

// TrackEvent is one telemetry payload. Events carry counts and names only,
// never argument values, secrets or response bodies.
type TrackEvent struct {
	Event      string         `json:"event"`
	Timestamp  time.Time      `json:"timestamp"`
	Properties map[string]any `json:"properties,omitempty"`
}

// StartupEventInfo captures the shape of the server at boot.
type StartupEventInfo struct {
	Version         string
	DescriptorCount int
	TenantCount     int
	ReadOnly        bool
}

func (s *service) NewStartupEvent(info StartupEventInfo) TrackEvent {
	return s.newEvent("server_startup", map[string]any{
		"version":          info.Version,
		"descriptor_count": info.DescriptorCount,
		"tenant_count":     info.TenantCount,
		"read_only":        info.ReadOnly,
	})
}

func (s *service) NewToolCallEvent(toolName string) TrackEvent {
	return s.newEvent("tool_call", map[string]any{
		"tool": toolName,
	})
}

func (s *service) NewLintRunEvent(descriptors, errors, warnings int) TrackEvent {
	return s.newEvent("lint_run", map[string]any{
		"descriptors": descriptors,
		"errors":      errors,
		"warnings":    warnings,
	})
}

func (s *service) newEvent(name string, props map[string]any) TrackEvent {
	return TrackEvent{
		Event:      name,
		Timestamp:  time.Now().UTC(),
		Properties: props,
	}
}
