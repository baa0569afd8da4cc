// Package scripting compiles inline action hooks written as CEL expressions.
// Scripts are type-checked when content loads and can only read a snapshot
// of the action and return a patch the engine applies.
package scripting

import (
	"context"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/ext"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
)

// DefaultCostLimit bounds the work a single evaluation may do
const DefaultCostLimit uint64 = 10000

// Script is the authored form of an inline hook
type Script struct {
	Name  string `json:"name" yaml:"name"`
	Phase string `json:"phase" yaml:"phase"`
	Expr  string `json:"expr" yaml:"expr"`
}

// Compiler turns scripts into inline hooks
type Compiler struct {
	env       *cel.Env
	costLimit uint64
}

// NewCompiler creates the CEL environment scripts are checked against
func NewCompiler() (*Compiler, error) {
	env, err := cel.NewEnv(
		ext.Strings(),

		cel.Variable("actor", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("action", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("usage", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("target", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Compiler{env: env, costLimit: DefaultCostLimit}, nil
}

// WithCostLimit overrides the per-evaluation cost limit
func (c *Compiler) WithCostLimit(limit uint64) *Compiler {
	c.costLimit = limit
	return c
}

// Compile checks a script and binds it to its phase. canUse scripts must
// evaluate to a bool; every other supported phase must evaluate to a map.
func (c *Compiler) Compile(s Script) (action.InlineHook, error) {
	if s.Name == "" {
		return action.InlineHook{}, fmt.Errorf("script must have a name")
	}
	phase, err := action.ParsePhase(s.Phase)
	if err != nil {
		return action.InlineHook{}, fmt.Errorf("script %s: %w", s.Name, err)
	}
	if phase == action.PhaseRoll || phase == action.PhaseConfirm {
		return action.InlineHook{}, fmt.Errorf("script %s: phase %s cannot be scripted", s.Name, phase)
	}

	ast, issues := c.env.Compile(s.Expr)
	if issues != nil && issues.Err() != nil {
		return action.InlineHook{}, fmt.Errorf("script %s: CEL compile error: %w", s.Name, issues.Err())
	}

	out := ast.OutputType()
	if phase == action.PhaseCanUse {
		if out.Kind() != types.BoolKind && out.Kind() != types.DynKind {
			return action.InlineHook{}, fmt.Errorf("script %s: canUse must return a bool, not %s", s.Name, out)
		}
	} else if out.Kind() != types.MapKind && out.Kind() != types.DynKind {
		return action.InlineHook{}, fmt.Errorf("script %s: %s must return a map, not %s", s.Name, phase, out)
	}

	prg, err := c.env.Program(ast, cel.CostLimit(c.costLimit))
	if err != nil {
		return action.InlineHook{}, fmt.Errorf("script %s: CEL program error: %w", s.Name, err)
	}

	p := &program{name: s.Name, prg: prg}
	hook := action.InlineHook{Name: s.Name}
	switch phase {
	case action.PhaseConfigure:
		hook.Hooks.Configure = p.patchAction
	case action.PhasePrepare:
		hook.Hooks.Prepare = p.patchAction
	case action.PhaseCanUse:
		hook.Hooks.CanUse = p.condition
	case action.PhasePreActivate:
		hook.Hooks.PreActivate = p.patchAction
	case action.PhasePostActivate:
		hook.Hooks.PostActivate = p.patchOutcome
	}
	return hook, nil
}

// CompileAll compiles every script, failing on the first bad one
func (c *Compiler) CompileAll(scripts []Script) ([]action.InlineHook, error) {
	hooks := make([]action.InlineHook, 0, len(scripts))
	for _, s := range scripts {
		hook, err := c.Compile(s)
		if err != nil {
			return nil, err
		}
		hooks = append(hooks, hook)
	}
	return hooks, nil
}

type program struct {
	name string
	prg  cel.Program
}

func (p *program) eval(ctx context.Context, vars map[string]any) (any, error) {
	out, _, err := p.prg.ContextEval(ctx, vars)
	if err != nil {
		return nil, fmt.Errorf("script %s: CEL eval error: %w", p.name, err)
	}
	return convertRefVal(out), nil
}

func (p *program) condition(ctx context.Context, a *action.Action) error {
	out, err := p.eval(ctx, bindings(a, nil))
	if err != nil {
		return err
	}
	ok, isBool := out.(bool)
	if !isBool {
		return fmt.Errorf("script %s returned %T, not a bool", p.name, out)
	}
	if !ok {
		return fmt.Errorf("%s: %s is not met", a.Name, p.name)
	}
	return nil
}

func (p *program) patchAction(ctx context.Context, a *action.Action) error {
	patch, err := p.evalPatch(ctx, bindings(a, nil))
	if err != nil {
		return err
	}
	return applyUsagePatch(a, patch)
}

func (p *program) patchOutcome(ctx context.Context, a *action.Action, o *action.Outcome) error {
	patch, err := p.evalPatch(ctx, bindings(a, o))
	if err != nil {
		return err
	}
	return applyOutcomePatch(o, patch)
}

func (p *program) evalPatch(ctx context.Context, vars map[string]any) (map[string]any, error) {
	out, err := p.eval(ctx, vars)
	if err != nil {
		return nil, err
	}
	patch, ok := out.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("script %s returned %T, not a map", p.name, out)
	}
	return patch, nil
}
