package analytics

//go:generate mockgen -destination=mocks/mock_analytics.go -package=analytics_mocks -typed github.com/openconvo/httptools-mcp/internal/analytics Service,HTTPClient
import (
	"io"
	"net/http"
)

// Service
type Service interface {
	Disable()
	Enable()
	EmitEvent(event TrackEvent)
	NewStartupEvent(startupEventInfo StartupEventInfo) TrackEvent
	NewToolCallEvent(toolName string) TrackEvent
	NewLintRunEvent(descriptors, errors, warnings int) TrackEvent
}

// dummy http client interface for our testing purposes
type HTTPClient interface {
	Post(url, contentType string, body io.Reader) (*http.Response, error)
}
