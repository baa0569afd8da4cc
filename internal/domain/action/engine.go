package action

import (
	"context"
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/crucible-engine/internal/dice"
	"github.com/KirkDiggler/crucible-engine/internal/domain/events"
	dnderr "github.com/KirkDiggler/crucible-engine/internal/errors"
	"github.com/KirkDiggler/crucible-engine/internal/observe"
	"github.com/KirkDiggler/crucible-engine/internal/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Statuses that prevent an actor from using any action
var blockingStatuses = []string{"dead", "unconscious", "paralyzed", "stunned"}

// EngineConfig holds the engine's collaborators
type EngineConfig struct {
	Registry      *TagRegistry
	Roller        dice.Roller
	UUIDGenerator uuid.Generator
	EventBus      events.Bus
	Metrics       *observe.Metrics
}

// UseOptions carries the caller-supplied collaborators for one use
type UseOptions struct {
	Acquirer   TargetAcquirer
	Configurer Configurer
	RangeFunc  RangeFunc

	// Strict turns any target validation error into a failed use
	Strict bool

	// Token is the performing token, if any
	Token string
}

// Engine drives actions through their lifecycle. It caches one template per
// (actor, action) and does not serialize uses; callers must run at most one
// lifecycle per actor at a time.
type Engine struct {
	registry *TagRegistry
	roller   dice.Roller
	ids      uuid.Generator
	bus      events.Bus
	metrics  *observe.Metrics

	mu        sync.RWMutex
	templates map[string]map[string]*Action
	external  []externalHook
}

// NewEngine creates an engine
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil || cfg.Registry == nil {
		panic("tag registry is required")
	}

	e := &Engine{
		registry:  cfg.Registry,
		roller:    cfg.Roller,
		ids:       cfg.UUIDGenerator,
		bus:       cfg.EventBus,
		metrics:   cfg.Metrics,
		templates: make(map[string]map[string]*Action),
	}

	if e.roller == nil {
		e.roller = dice.NewRandomRoller()
	}
	if e.ids == nil {
		e.ids = uuid.NewGoogleUUIDGenerator()
	}
	if e.metrics == nil {
		e.metrics = observe.DefaultMetrics()
	}

	return e
}

// Registry returns the tag catalog
func (e *Engine) Registry() *TagRegistry {
	return e.registry
}

// RegisterHooks adds hooks that run for every action after tag and inline hooks
func (e *Engine) RegisterHooks(source string, hooks Hooks) error {
	if source == "" {
		return dnderr.InvalidArgument("hook source is required")
	}
	if hooks.Empty() {
		return dnderr.InvalidArgumentf("hooks from %s define no phases", source)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.external = append(e.external, externalHook{source: source, hooks: hooks})
	return nil
}

// Initialize binds a definition to an actor, runs configure once and prepare,
// and caches the result as the actor's template for that action.
func (e *Engine) Initialize(ctx context.Context, actor Actor, def Definition) (*Action, error) {
	if actor == nil {
		return nil, dnderr.InvalidArgument("actor is required")
	}
	if def.ID == "" {
		return nil, dnderr.InvalidArgument("action definition must have an ID")
	}

	a := NewAction(e.registry, def)
	a.Actor = actor
	a.roller = e.roller
	a.ids = e.ids

	e.runPhase(ctx, a, PhaseConfigure, func(h Hooks) error { return h.Configure(ctx, a) })
	e.prepare(ctx, a)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.templates[actor.ID()] == nil {
		e.templates[actor.ID()] = make(map[string]*Action)
	}
	e.templates[actor.ID()][def.ID] = a

	return a, nil
}

// Template returns the cached template for an actor's action
func (e *Engine) Template(actorID, actionID string) (*Action, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	a, ok := e.templates[actorID][actionID]
	return a, ok
}

// Templates returns an actor's templates ordered by action ID
func (e *Engine) Templates(actorID string) []*Action {
	e.mu.RLock()
	defer e.mu.RUnlock()

	byID := e.templates[actorID]
	ids := slices.Sorted(maps.Keys(byID))
	out := make([]*Action, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out
}

// Forget drops every template cached for an actor
func (e *Engine) Forget(actorID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.templates, actorID)
}

// Prepare re-runs prepare on a cached template, e.g. after an equipment change
func (e *Engine) Prepare(ctx context.Context, actor Actor, actionID string) (*Action, error) {
	tmpl, ok := e.Template(actor.ID(), actionID)
	if !ok {
		return nil, dnderr.NotFoundf("action %s is not initialized for %s", actionID, actor.ID())
	}
	tmpl.Actor = actor
	e.prepare(ctx, tmpl)
	return tmpl, nil
}

// Available returns prepared clones of every action the actor may use now
func (e *Engine) Available(ctx context.Context, actor Actor) []*Action {
	var available []*Action
	for _, tmpl := range e.Templates(actor.ID()) {
		a := tmpl.Clone()
		a.Actor = actor
		e.prepare(ctx, a)
		if err := e.canUse(ctx, a); err != nil {
			continue
		}
		a.state = StateEligible
		available = append(available, a)
	}
	return available
}

// StartTurn clears per-turn bookkeeping on every action of the actor
func (e *Engine) StartTurn(ctx context.Context, actor Actor) {
	for _, tmpl := range e.Templates(actor.ID()) {
		tmpl.Usage.ResetTurn()
	}
	e.emit(events.NewGameEvent(events.OnTurnStart).WithActor(actor.ID()))
}

// Use runs one use attempt through target acquisition, rolls and outcome
// construction. The returned action holds the outcome map to confirm.
func (e *Engine) Use(ctx context.Context, actor Actor, actionID string, opts UseOptions) (*Action, error) {
	if actor == nil {
		return nil, dnderr.InvalidArgument("actor is required")
	}

	start := time.Now()
	ctx, span := observe.StartSpan(ctx, "action.use", trace.WithAttributes(
		attribute.String("action.id", actionID),
		attribute.String("actor.id", actor.ID()),
	))
	defer span.End()
	defer func() {
		e.metrics.UseDuration.Record(ctx, time.Since(start).Seconds())
	}()

	tmpl, ok := e.Template(actor.ID(), actionID)
	if !ok {
		return nil, dnderr.NotFoundf("action %s is not initialized for %s", actionID, actor.ID())
	}

	a := tmpl.Clone()
	a.Actor = actor
	a.Token = opts.Token
	a.UseID = e.ids.New()
	a.Targets = nil
	a.Outcomes = nil
	a.state = StateUnprepared
	span.SetAttributes(attribute.String("use.id", a.UseID))

	a.Usage.ResetUse()
	e.prepare(ctx, a)

	if err := e.canUse(ctx, a); err != nil {
		a.state = StateRejected
		e.reject(ctx, span, observe.StatusIneligible, err)
		return nil, err
	}
	a.state = StateEligible

	if opts.Configurer != nil {
		proceed, err := opts.Configurer.Configure(ctx, a)
		if err != nil {
			a.state = StateRejected
			e.reject(ctx, span, observe.StatusCancelled, err)
			return nil, dnderr.Wrapf(err, "failed to configure %s", a.Name)
		}
		if !proceed {
			a.state = StateRejected
			err := dnderr.Cancelled(fmt.Sprintf("%s was cancelled", a.Name))
			e.reject(ctx, span, observe.StatusCancelled, err)
			return nil, err
		}
	}

	targets, err := e.acquire(ctx, a, opts)
	if err != nil {
		a.state = StateRejected
		e.reject(ctx, span, observe.StatusInvalid, err)
		return nil, err
	}
	if err := e.validateTargets(ctx, a, targets, opts); err != nil {
		a.state = StateRejected
		e.reject(ctx, span, observe.StatusInvalid, err)
		return nil, err
	}
	a.state = StateTargeted

	e.runPhase(ctx, a, PhasePreActivate, func(h Hooks) error { return h.PreActivate(ctx, a) })
	a.state = StateActivated

	e.buildOutcomes(ctx, a)
	a.state = StateOutcomesBuilt

	if len(a.Usage.ActorFlags) > 0 {
		actor.UpdateFlags(maps.Clone(a.Usage.ActorFlags))
	}

	e.emit(events.NewGameEvent(events.OnActionUsed).
		WithActor(actor.ID()).
		WithContext(events.ContextActionID, a.ID).
		WithContext(events.ContextActionName, a.Name).
		WithContext(events.ContextUseID, a.UseID).
		WithContext(events.ContextTargetIDs, a.targetIDs()))
	e.metrics.RecordUse(ctx, observe.StatusOutcomes)

	return a, nil
}

// Confirm applies the outcome map of a built use
func (e *Engine) Confirm(ctx context.Context, a *Action) error {
	return e.confirm(ctx, a, false)
}

// Reverse un-applies a confirmed use. A use that was never confirmed is
// discarded; only its confirm hooks run, with reverse set.
func (e *Engine) Reverse(ctx context.Context, a *Action) error {
	return e.confirm(ctx, a, true)
}

func (e *Engine) confirm(ctx context.Context, a *Action, reverse bool) error {
	if a == nil {
		return dnderr.InvalidArgument("action is required")
	}

	ctx, span := observe.StartSpan(ctx, "action.confirm", trace.WithAttributes(
		attribute.String("action.id", a.ID),
		attribute.String("use.id", a.UseID),
		attribute.Bool("reverse", reverse),
	))
	defer span.End()

	switch {
	case !reverse && a.state != StateOutcomesBuilt:
		return dnderr.FailedPreconditionf("use %s of %s cannot be confirmed while %s", a.UseID, a.Name, a.state)
	case reverse && a.state == StateOutcomesBuilt:
		// Nothing was applied, but confirm hooks may hand back per-turn usage
		e.runPhase(ctx, a, PhaseConfirm, func(h Hooks) error { return h.Confirm(ctx, a, true) })
		a.state = StateReversed
		return nil
	case reverse && a.state != StateConfirmed:
		return dnderr.FailedPreconditionf("use %s of %s cannot be reversed while %s", a.UseID, a.Name, a.state)
	case a.Outcomes == nil:
		return dnderr.FailedPreconditionf("use %s of %s has no outcomes", a.UseID, a.Name)
	}

	var errs []error
	for _, o := range a.Outcomes.Outcomes() {
		if o.Target == nil {
			errs = append(errs, fmt.Errorf("outcome for %s has no actor", o.TargetID))
			continue
		}
		if err := o.Target.ApplyActionOutcome(ctx, a, o, ApplyOptions{Reverse: reverse}); err != nil {
			log.Printf("[action] failed to apply outcome of %s to %s (reverse=%t): %v", a.UseID, o.TargetID, reverse, err)
			errs = append(errs, fmt.Errorf("%s: %w", o.TargetID, err))
		}
	}

	e.runPhase(ctx, a, PhaseConfirm, func(h Hooks) error { return h.Confirm(ctx, a, reverse) })

	eventType := events.OnActionConfirmed
	a.state = StateConfirmed
	if reverse {
		eventType = events.OnActionReversed
		a.state = StateReversed
	}
	e.emit(events.NewGameEvent(eventType).
		WithActor(a.Actor.ID()).
		WithContext(events.ContextActionID, a.ID).
		WithContext(events.ContextUseID, a.UseID).
		WithContext(events.ContextHeroism, a.Cost.Heroism).
		WithContext(events.ContextFocus, a.Cost.Focus).
		WithContext(events.ContextReverse, reverse).
		WithContext(events.ContextCritical, a.anyCritical()))
	e.metrics.RecordConfirmation(ctx, reverse)

	if len(errs) > 0 {
		err := dnderr.Wrapf(errors.Join(errs...), "failed to apply %d outcome(s) of %s", len(errs), a.UseID)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// prepare resets usage and the live cost and range, then runs prepare hooks
func (e *Engine) prepare(ctx context.Context, a *Action) {
	a.Usage.ResetPrepare()
	a.Cost = a.source.cost
	a.Range = a.source.rng
	if a.Range.Weapon {
		if w := a.Weapon(); w != nil {
			a.Range.Maximum = w.Range
		}
	}

	e.runPhase(ctx, a, PhasePrepare, func(h Hooks) error { return h.Prepare(ctx, a) })

	a.Cost.Hands = handsFor(a)
	a.state = StatePrepared
}

// canUse checks actor state and cost, then runs canUse hooks
func (e *Engine) canUse(ctx context.Context, a *Action) error {
	actor := a.Actor
	for _, status := range blockingStatuses {
		if actor.HasStatus(status) {
			return dnderr.Ineligiblef("%s cannot act while %s", actor.Name(), status)
		}
	}

	pools := a.Cost.Pools()
	for _, pool := range []string{ResourceAction, ResourceFocus, ResourceHeroism} {
		cost := pools[pool]
		if cost <= 0 {
			continue
		}
		if current, _ := actor.Pool(pool); current < cost {
			return dnderr.Ineligiblef("%s needs %d %s but %s has %d", a.Name, cost, pool, actor.Name(), current)
		}
	}

	if a.Cost.Weapon && a.Weapon() == nil {
		return dnderr.Ineligiblef("%s requires a usable weapon", a.Name)
	}

	return e.checkPhase(ctx, a)
}

func (e *Engine) acquire(ctx context.Context, a *Action, opts UseOptions) ([]*Target, error) {
	if opts.Acquirer != nil {
		targets, err := opts.Acquirer.AcquireTargets(ctx, a)
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to acquire targets for %s", a.Name)
		}
		return targets, nil
	}

	switch a.Target.Type {
	case TargetSelf:
		return []*Target{{Actor: a.Actor, Token: a.Token, UUID: a.Actor.ID(), Name: a.Actor.Name()}}, nil
	case TargetNone, "":
		return nil, nil
	}
	return nil, dnderr.InvalidArgumentf("%s targets %s and needs a target acquirer", a.Name, a.Target.Type)
}

// validateTargets checks count, repeats and range. Invalid targets carry
// their error and are dropped unless the use is strict.
func (e *Engine) validateTargets(ctx context.Context, a *Action, targets []*Target, opts UseOptions) error {
	valid := make([]*Target, 0, len(targets))
	counts := make(map[string]int)
	repeats := max(a.Target.Multiple, 1)

	for _, t := range targets {
		if t == nil {
			continue
		}
		switch {
		case t.Error != nil:
		case t.Actor == nil:
			t.Error = fmt.Errorf("target %s has no actor", t.Name)
		case a.Target.Number > 0 && len(valid) >= a.Target.Number:
			t.Error = fmt.Errorf("%s allows at most %d target(s)", a.Name, a.Target.Number)
		case counts[t.Actor.ID()] >= repeats:
			t.Error = fmt.Errorf("%s is already targeted", t.Actor.Name())
		default:
			t.Error = e.checkRange(ctx, a, t, opts.RangeFunc)
		}

		if t.Error != nil {
			if opts.Strict {
				return dnderr.WrapWithCode(t.Error, dnderr.CodeValidation, fmt.Sprintf("invalid target for %s", a.Name))
			}
			log.Printf("[action] dropping target %s of %s: %v", t.Name, a.UseID, t.Error)
			continue
		}

		counts[t.Actor.ID()]++
		t.Index = len(valid)
		valid = append(valid, t)
	}

	a.Targets = valid
	return nil
}

func (e *Engine) checkRange(ctx context.Context, a *Action, t *Target, rangeFunc RangeFunc) error {
	if rangeFunc == nil || t.Actor.ID() == a.Actor.ID() {
		return nil
	}
	distance, err := rangeFunc(ctx, a, t)
	if err != nil {
		return fmt.Errorf("failed to measure distance to %s: %w", t.Actor.Name(), err)
	}
	if distance < a.Range.Minimum || (a.Range.Maximum > 0 && distance > a.Range.Maximum) {
		return fmt.Errorf("%s is out of range (%d, allowed %d-%d)", t.Actor.Name(), distance, a.Range.Minimum, a.Range.Maximum)
	}
	return nil
}

func (e *Engine) reject(ctx context.Context, span trace.Span, status string, err error) {
	span.SetAttributes(attribute.String("use.status", status))
	span.SetStatus(codes.Error, err.Error())
	e.metrics.RecordUse(ctx, status)
}

func (e *Engine) emit(event *events.GameEvent) {
	if e.bus == nil {
		return
	}
	if err := e.bus.Emit(event); err != nil {
		log.Printf("[action] bookkeeping for %s failed: %v", event.Type, err)
	}
}

func handsFor(a *Action) int {
	hands := 0
	for _, s := range a.Usage.Strikes {
		hands += max(s.Weapon.Hands, 1)
	}
	if hands == 0 && a.Cost.Weapon {
		if w := a.Weapon(); w != nil {
			hands = max(w.Hands, 1)
		}
	}
	return hands
}

func (a *Action) targetIDs() []string {
	var ids []string
	if a.Outcomes == nil {
		return ids
	}
	for id, o := range a.Outcomes.All() {
		if !o.Self {
			ids = append(ids, id)
		}
	}
	return ids
}

func (a *Action) anyCritical() bool {
	if a.Outcomes == nil {
		return false
	}
	for _, o := range a.Outcomes.Outcomes() {
		if o.CriticalSuccess {
			return true
		}
	}
	return false
}
