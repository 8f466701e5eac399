package ui

import (
	"context"
	"log/slog"

	"github.com/openconvo/httptools-mcp/internal/descriptor"
	"github.com/openconvo/httptools-mcp/internal/template"
)

// Outcome is what the executor hands over after a call settles: the
// descriptor, the caller's arguments, the upstream status/body and the
// success verdict. Everything the dispatcher templates with comes from here;
// the request-time context (and with it the secrets root) is already gone.
type Outcome struct {
	Descriptor *descriptor.Descriptor
	Args       map[string]any
	Status     int
	Body       any
	Success    bool
}

// Dispatcher selects and performs at most one close and one open action per
// call outcome. Stage failures are logged and swallowed: the upstream call
// may well have succeeded, and a broken renderer must not make the tool call
// look failed to the agent.
type Dispatcher struct {
	stage Stage
}

func NewDispatcher(stage Stage) *Dispatcher {
	return &Dispatcher{stage: stage}
}

// Dispatch resolves the applicable UI branch and forwards it to the stage.
// A `ui` field carried in the response body takes precedence over the
// descriptor's own branches, letting the remote service steer the UI at the
// data level.
func (d *Dispatcher) Dispatch(ctx context.Context, outcome Outcome) {
	if d == nil || d.stage == nil {
		return
	}

	branch := overrideFromBody(outcome.Body)
	if branch == nil {
		branch = descriptorBranch(outcome)
	}
	if branch == nil {
		return
	}

	uiCtx := template.UIContext(outcome.Args, outcome.Body, outcome.Status)

	if branch.Close {
		if err := d.stage.Hide(ctx); err != nil {
			slog.Error("ui stage hide failed", "descriptor", outcome.Descriptor.Name, "error", err)
		}
	}
	if branch.Open != nil {
		rendered := renderOpen(branch.Open, uiCtx)
		if err := d.stage.Show(ctx, rendered); err != nil {
			slog.Error("ui stage show failed",
				"descriptor", outcome.Descriptor.Name,
				"component", rendered.ComponentName,
				"error", err)
		}
	}
}

func descriptorBranch(outcome Outcome) *descriptor.UIBranch {
	spec := outcome.Descriptor.UI
	if spec == nil {
		return nil
	}
	if outcome.Success {
		return spec.OnSuccess
	}
	return spec.OnError
}

// overrideFromBody extracts a response-provided `ui` field shaped like
// {open?, close?}. Anything malformed is ignored in favor of the descriptor
// branch.
func overrideFromBody(body any) *descriptor.UIBranch {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := obj["ui"].(map[string]any)
	if !ok {
		return nil
	}

	branch := &descriptor.UIBranch{}
	if open, ok := raw["open"].(map[string]any); ok {
		branch.Open = openFromMap(open)
	}
	if closeFlag, ok := raw["close"].(bool); ok {
		branch.Close = closeFlag
	}
	if branch.Open == nil && !branch.Close {
		return nil
	}
	return branch
}

func openFromMap(m map[string]any) *descriptor.OpenInstruction {
	name, _ := m["component_name"].(string)
	if name == "" {
		return nil
	}
	open := &descriptor.OpenInstruction{ComponentName: name}
	open.Title, _ = m["title"].(string)
	open.Description, _ = m["description"].(string)
	open.Size, _ = m["size"].(string)
	if props, ok := m["props"].(map[string]any); ok {
		open.Props = props
	}
	return open
}

// renderOpen re-templates the instruction's text and props against the
// UI-time context. The source instruction is part of the descriptor and
// stays untouched.
func renderOpen(open *descriptor.OpenInstruction, ctx *template.Context) *descriptor.OpenInstruction {
	rendered := &descriptor.OpenInstruction{
		ComponentName: open.ComponentName,
		Title:         template.Resolve(open.Title, ctx),
		Description:   template.Resolve(open.Description, ctx),
		Size:          open.Size,
	}
	if open.Props != nil {
		rendered.Props = template.Apply(open.Props, ctx).(map[string]any)
	}
	return rendered
}
