//go:build integration

// Package helpers provides shared fixtures for integration tests: a
// containerized httpbin upstream and a ready-wired executor around it.
package helpers

import (
	"context"
	"fmt"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/openconvo/httptools-mcp/internal/executor"
	"github.com/openconvo/httptools-mcp/internal/secrets"
	"github.com/openconvo/httptools-mcp/internal/ui"
)

const httpbinImage = "kennethreitz/httpbin:latest"

// HTTPBin is a running httpbin container reachable from the host.
type HTTPBin struct {
	container testcontainers.Container
	BaseURL   string
}

// StartHTTPBin boots an httpbin container and waits until it serves traffic.
func StartHTTPBin(ctx context.Context) (*HTTPBin, error) {
	req := testcontainers.ContainerRequest{
		Image:        httpbinImage,
		ExposedPorts: []string{"80/tcp"},
		WaitingFor:   wait.ForHTTP("/status/200").WithPort("80/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start httpbin container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "80/tcp")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve mapped port: %w", err)
	}

	return &HTTPBin{
		container: container,
		BaseURL:   fmt.Sprintf("http://%s:%s", host, port.Port()),
	}, nil
}

// Terminate stops the container.
func (h *HTTPBin) Terminate(ctx context.Context) error {
	return h.container.Terminate(ctx)
}

// NewExecutor builds an executor pointed at the httpbin container, using the
// environment secret resolver and a log-only UI stage.
func (h *HTTPBin) NewExecutor(t *testing.T) *executor.Executor {
	t.Helper()
	return executor.New(executor.Config{
		BaseURL:    h.BaseURL,
		Resolver:   secrets.EnvResolver{},
		Dispatcher: ui.NewDispatcher(ui.LogStage{}),
	})
}
