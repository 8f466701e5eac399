package analytics

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const defaultEndpoint = "https://telemetry.openconvo.dev/v1/track"

// service posts events asynchronously and never blocks a tool call. Delivery
// is best effort; failures are logged at debug level and dropped.
type service struct {
	endpoint string
	client   HTTPClient
	mu       sync.RWMutex
	enabled  bool
}

// Option configures the analytics service.
type Option func(*service)

// WithEndpoint overrides the telemetry endpoint.
func WithEndpoint(url string) Option {
	return func(s *service) { s.endpoint = url }
}

// WithHTTPClient swaps the outbound client, mainly for tests.
func WithHTTPClient(client HTTPClient) Option {
	return func(s *service) { s.client = client }
}

// NewService returns an enabled analytics service.
func NewService(opts ...Option) Service {
	s := &service{
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
		enabled:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Enable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = true
}

func (s *service) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = false
}

func (s *service) isEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// EmitEvent delivers the event in the background when telemetry is enabled.
func (s *service) EmitEvent(event TrackEvent) {
	if !s.isEnabled() {
		return
	}
	go s.post(event)
}

func (s *service) post(event TrackEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Debug("failed to encode analytics event", "event", event.Event, "error", err)
		return
	}

	resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		slog.Debug("failed to deliver analytics event", "event", event.Event, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		slog.Debug("analytics endpoint rejected event", "event", event.Event, "status", resp.StatusCode)
	}
}
