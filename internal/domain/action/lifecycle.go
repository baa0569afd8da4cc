package action

import (
	"context"
	"fmt"
	"log"

	dnderr "github.com/KirkDiggler/crucible-engine/internal/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type hookRef struct {
	source string
	hooks  Hooks
}

// hookChain lists hooks in dispatch order: tags by priority, then inline
// hooks in declaration order, then external hooks in registration order.
func (e *Engine) hookChain(a *Action) []hookRef {
	refs := make([]hookRef, 0, a.Tags.Len()+len(a.Inline))
	for tag := range a.Tags.Tags() {
		refs = append(refs, hookRef{source: "tag:" + tag.Name, hooks: tag.Hooks})
	}
	for _, h := range a.Inline {
		refs = append(refs, hookRef{source: "inline:" + h.Name, hooks: h.Hooks})
	}

	e.mu.RLock()
	for _, h := range e.external {
		refs = append(refs, hookRef{source: "external:" + h.source, hooks: h.hooks})
	}
	e.mu.RUnlock()

	return refs
}

// runPhase calls every hook registered for phase. A failing hook is logged
// and counted and the rest still run. It returns the number of failures.
func (e *Engine) runPhase(ctx context.Context, a *Action, phase Phase, call func(h Hooks) error) int {
	failures := 0
	for _, ref := range e.hookChain(a) {
		if !ref.hooks.Has(phase) {
			continue
		}
		if err := safeCall(func() error { return call(ref.hooks) }); err != nil {
			failures++
			e.hookFailed(ctx, a, phase, ref.source, err)
		}
	}
	trace.SpanFromContext(ctx).AddEvent(string(phase))
	return failures
}

// checkPhase runs canUse hooks and stops at the first failure
func (e *Engine) checkPhase(ctx context.Context, a *Action) error {
	for _, ref := range e.hookChain(a) {
		if !ref.hooks.Has(PhaseCanUse) {
			continue
		}
		err := safeCall(func() error { return ref.hooks.CanUse(ctx, a) })
		if err == nil {
			continue
		}
		if dnderr.IsIneligible(err) {
			return err
		}
		return dnderr.WrapWithCode(err, dnderr.CodeIneligible, fmt.Sprintf("%s cannot be used", a.Name)).
			WithMeta("hook", ref.source)
	}
	trace.SpanFromContext(ctx).AddEvent(string(PhaseCanUse))
	return nil
}

func (e *Engine) hookFailed(ctx context.Context, a *Action, phase Phase, source string, err error) {
	log.Printf("[action] %s hook %s failed for %s (use %s): %v", phase, source, a.ID, a.UseID, err)
	e.metrics.RecordHookFailure(ctx, string(phase))
	trace.SpanFromContext(ctx).AddEvent("hook_failure", trace.WithAttributes(
		attribute.String("phase", string(phase)),
		attribute.String("source", source),
		attribute.String("error", err.Error()),
	))
}

// safeCall converts a panic in fn into an error
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
