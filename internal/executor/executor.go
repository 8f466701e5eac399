package executor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/openconvo/httptools-mcp/internal/descriptor"
	"github.com/openconvo/httptools-mcp/internal/redact"
	"github.com/openconvo/httptools-mcp/internal/secrets"
	"github.com/openconvo/httptools-mcp/internal/template"
	"github.com/openconvo/httptools-mcp/internal/ui"
)

// TraceHeader carries the correlation id attached to every outbound call and
// echoed in logs.
const TraceHeader = "X-Trace-Id"

// Result is the envelope returned to the tool-call harness: the upstream
// status paired with the parsed JSON body, or the raw text when the body does
// not parse. Transport-level failures (timeout, connection refused) carry
// status 0 and a textual body; Execute never returns a Go error.
type Result struct {
	Status int `json:"status"`
	Body   any `json:"body"`
}

// Config wires an executor's collaborators.
type Config struct {
	// BaseURL is the caller's own request origin; descriptor URL templates
	// that render to a relative path are resolved against it.
	BaseURL string

	// Resolver backs the lazy secrets root of the request-time context.
	Resolver secrets.Resolver

	// Dispatcher receives the outcome of every call. Optional.
	Dispatcher *ui.Dispatcher

	// Client overrides the HTTP client, mainly for tests. Per-call timeouts
	// come from the descriptor, not from here.
	Client *http.Client
}

// Executor drives one descriptor through templating, the outbound call,
// response interpretation and UI dispatch. It holds no per-call state;
// concurrent calls share nothing but the collaborators.
type Executor struct {
	baseURL    string
	resolver   secrets.Resolver
	dispatcher *ui.Dispatcher
	client     *http.Client
}

func New(cfg Config) *Executor {
	client := cfg.Client
	if client == nil {
		client = &http.Client{}
	}
	return &Executor{
		baseURL:    cfg.BaseURL,
		resolver:   cfg.Resolver,
		dispatcher: cfg.Dispatcher,
		client:     client,
	}
}

// Execute performs one tool call. Recoverable failures are folded into the
// returned envelope; the caller inspects status and body to decide next
// steps.
func (e *Executor) Execute(ctx context.Context, d *descriptor.Descriptor, args map[string]any) Result {
	if args == nil {
		args = map[string]any{}
	}

	callCtx, cancel := context.WithTimeout(ctx, d.Timeout())
	defer cancel()

	lazy := secrets.NewLazy(callCtx, e.resolver, d.TenantID)
	reqCtx := template.RequestContext(args, lazy)

	targetURL, err := e.buildURL(d.HTTP.URLTemplate, reqCtx)
	if err != nil {
		return e.finish(ctx, d, args, Result{Status: 0, Body: err.Error()})
	}

	method := strings.ToUpper(d.HTTP.Method)
	if method == "" {
		method = http.MethodGet
	}

	headers := make(map[string]string, len(d.HTTP.Headers))
	for k, v := range d.HTTP.Headers {
		headers[k] = template.Resolve(v, reqCtx)
	}

	var bodyBytes []byte
	var renderedBody any
	if d.HTTP.JSONBodyTemplate != nil && method != http.MethodGet && method != http.MethodHead {
		renderedBody = template.Apply(d.HTTP.JSONBodyTemplate, reqCtx)
		if d.HTTP.PruneEmptyBody {
			renderedBody = pruneEmpty(renderedBody)
		}
		bodyBytes, err = json.Marshal(renderedBody)
		if err != nil {
			return e.finish(ctx, d, args, Result{Status: 0, Body: fmt.Sprintf("failed to encode request body: %v", err)})
		}
		if !hasHeader(headers, "Content-Type") {
			headers["Content-Type"] = "application/json"
		}
	}

	traceID := uuid.NewString()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}
	req, err := http.NewRequestWithContext(callCtx, method, targetURL, reqBody)
	if err != nil {
		return e.finish(ctx, d, args, Result{Status: 0, Body: fmt.Sprintf("failed to build request: %v", err)})
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set(TraceHeader, traceID)

	slog.Info("executing descriptor call",
		"descriptor", d.Name,
		"tenantId", d.TenantID,
		"method", method,
		"url", redact.Truncate(targetURL),
		"headers", redact.Headers(headers),
		"body", redact.Value(renderedBody),
		"traceId", traceID)

	resp, err := e.client.Do(req)
	if err != nil {
		result := Result{Status: 0, Body: transportFailure(err, d)}
		slog.Warn("descriptor call failed",
			"descriptor", d.Name,
			"traceId", traceID,
			"error", redact.Truncate(fmt.Sprint(err)))
		return e.finish(ctx, d, args, result)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		result := Result{Status: resp.StatusCode, Body: fmt.Sprintf("failed to read response body: %v", err)}
		return e.finish(ctx, d, args, result)
	}

	body := parseBody(raw)
	result := Result{Status: resp.StatusCode, Body: body}

	slog.Info("descriptor call completed",
		"descriptor", d.Name,
		"traceId", traceID,
		"status", resp.StatusCode,
		"body", redact.Value(body))

	return e.finish(ctx, d, args, result)
}

// finish computes the success verdict, dispatches UI instructions and hands
// the envelope back. Dispatch runs on the parent context: the per-call
// deadline may already have fired, and a timed-out call still drives its
// error branch.
func (e *Executor) finish(ctx context.Context, d *descriptor.Descriptor, args map[string]any, result Result) Result {
	success := Succeeded(d, result)
	if e.dispatcher != nil {
		e.dispatcher.Dispatch(ctx, ui.Outcome{
			Descriptor: d,
			Args:       args,
			Status:     result.Status,
			Body:       result.Body,
			Success:    success,
		})
	}
	return result
}

// Succeeded applies the descriptor's success policy to an envelope: the
// okField's truthiness when configured and the body is a JSON object,
// otherwise the 2xx status class.
func Succeeded(d *descriptor.Descriptor, result Result) bool {
	if d.HTTP.OKField != "" {
		if obj, ok := result.Body.(map[string]any); ok {
			v, found := template.MapRoot(obj).Lookup(strings.Split(d.HTTP.OKField, "."))
			return found && truthy(v)
		}
	}
	return result.Status >= 200 && result.Status <= 299
}

func (e *Executor) buildURL(urlTemplate string, ctx *template.Context) (string, error) {
	rendered := template.Resolve(urlTemplate, ctx)
	u, err := url.Parse(rendered)
	if err != nil {
		return "", fmt.Errorf("templated URL is invalid: %w", err)
	}
	if !u.IsAbs() && e.baseURL != "" {
		base, err := url.Parse(e.baseURL)
		if err != nil {
			return "", fmt.Errorf("base URL is invalid: %w", err)
		}
		u = base.ResolveReference(u)
	}
	return u.String(), nil
}

func transportFailure(err error, d *descriptor.Descriptor) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("request timed out after %s", d.Timeout())
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Sprintf("request timed out after %s", d.Timeout())
	}
	return fmt.Sprintf("request failed: %v", err)
}

// parseBody attempts JSON; anything that does not parse stays raw text.
func parseBody(raw []byte) any {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}
	var parsed any
	if err := json.Unmarshal(trimmed, &parsed); err != nil {
		return string(raw)
	}
	return parsed
}

func hasHeader(headers map[string]string, name string) bool {
	for k := range headers {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

// truthy coerces an okField value: null, false, zero and the empty string
// are failures, everything else passes.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case json.Number:
		return t.String() != "0"
	default:
		return true
	}
}
