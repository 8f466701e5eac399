package ui

//go:generate mockgen -destination=mocks/mock_ui.go -package=ui_mocks -typed github.com/openconvo/httptools-mcp/internal/ui Stage

import (
	"context"
	"log/slog"

	"github.com/openconvo/httptools-mcp/internal/descriptor"
)

// Stage is the visual rendering collaborator. It lives outside this
// subsystem; both operations are best-effort and the dispatcher treats any
// returned error as log-and-continue.
type Stage interface {
	Show(ctx context.Context, open *descriptor.OpenInstruction) error
	Hide(ctx context.Context) error
}

// LogStage is the default stage when no renderer is attached: it records the
// instructions that would have been dispatched and nothing else.
type LogStage struct{}

func (LogStage) Show(_ context.Context, open *descriptor.OpenInstruction) error {
	slog.Info("ui stage show", "component", open.ComponentName, "title", open.Title)
	return nil
}

func (LogStage) Hide(context.Context) error {
	slog.Info("ui stage hide")
	return nil
}
