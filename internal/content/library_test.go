package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/crucible-engine/internal/content"
	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/effects"
	dnderr "github.com/KirkDiggler/crucible-engine/internal/errors"
	"github.com/KirkDiggler/crucible-engine/internal/scripting"
)

func newLibrary(t *testing.T) *content.Library {
	t.Helper()
	compiler, err := scripting.NewCompiler()
	require.NoError(t, err)
	return content.NewLibrary(compiler)
}

func TestLoadDir(t *testing.T) {
	lib := newLibrary(t)
	require.NoError(t, lib.LoadDir("testdata"))

	assert.Equal(t, []string{"rally", "strike"}, lib.ActionIDs())
	assert.Equal(t, []string{"goblin"}, lib.ActorIDs())

	strike, err := lib.Definition("strike")
	require.NoError(t, err)
	assert.Equal(t, "Strike", strike.Name)
	assert.Equal(t, 1, strike.Cost.Action)
	assert.Equal(t, action.TargetSingle, strike.Target.Type)
	assert.Equal(t, action.ScopeEnemies, strike.Target.Scope)
	assert.Equal(t, []string{"mainhand", "strike", "strength"}, strike.Tags)
	assert.Empty(t, strike.Inline)

	rally, err := lib.Definition("rally")
	require.NoError(t, err)
	assert.Equal(t, "rally", rally.Name, "name defaults to the id")
	require.Len(t, rally.Effects, 1)
	assert.Equal(t, action.ScopeSelf, rally.Effects[0].Scope)
	assert.Equal(t, effects.DurationRounds, rally.Effects[0].Duration.Type)
	assert.Equal(t, []string{"rallied"}, rally.Effects[0].Statuses)
	require.Len(t, rally.Inline, 1)
	assert.Equal(t, "steady", rally.Inline[0].Name)
	assert.True(t, rally.Inline[0].Hooks.Has(action.PhasePrepare))

	goblin, err := lib.NewActor("goblin")
	require.NoError(t, err)
	assert.Equal(t, "Goblin", goblin.Name())
	assert.Equal(t, action.DispositionHostile, goblin.Disposition())
	health, _ := goblin.Pool("health")
	assert.Equal(t, 12, health)
}

func TestLoadSampleContent(t *testing.T) {
	lib := newLibrary(t)
	require.NoError(t, lib.LoadDirs("../../content"))

	for _, id := range lib.ActorIDs() {
		sheet, err := lib.Sheet(id)
		require.NoError(t, err)
		for _, actionID := range sheet.Actions {
			_, err := lib.Definition(actionID)
			assert.NoError(t, err, "%s knows %s", id, actionID)
		}
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		check func(error) bool
	}{
		{
			name:  "unknown field",
			yaml:  "actions:\n  - id: x\n    colour: red\n",
			check: dnderr.IsValidation,
		},
		{
			name:  "missing action id",
			yaml:  "actions:\n  - name: Nameless\n",
			check: dnderr.IsValidation,
		},
		{
			name:  "unknown target type",
			yaml:  "actions:\n  - id: x\n    target: {type: cone}\n",
			check: dnderr.IsValidation,
		},
		{
			name:  "unknown scope",
			yaml:  "actions:\n  - id: x\n    target: {type: single, scope: everyone}\n",
			check: dnderr.IsValidation,
		},
		{
			name:  "negative cost",
			yaml:  "actions:\n  - id: x\n    cost: {action: -1}\n",
			check: dnderr.IsValidation,
		},
		{
			name:  "bad disposition",
			yaml:  "actors:\n  - id: x\n    name: X\n    disposition: grumpy\n",
			check: dnderr.IsValidation,
		},
		{
			name:  "duplicate in one file",
			yaml:  "actions:\n  - id: x\n  - id: x\n",
			check: dnderr.IsAlreadyExists,
		},
		{
			name: "bad script",
			yaml: "actions:\n  - id: x\n    scripts:\n      - {name: s, phase: canUse, expr: '1 + 1'}\n",
			check: func(err error) bool {
				return strings.Contains(err.Error(), "action x")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := newLibrary(t)
			err := lib.Load(strings.NewReader(tt.yaml), tt.name)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
			assert.Empty(t, lib.ActionIDs(), "nothing kept from a bad file")
		})
	}
}

func TestLoadDuplicateAcrossFiles(t *testing.T) {
	lib := newLibrary(t)
	require.NoError(t, lib.Load(strings.NewReader("actions:\n  - id: strike\n"), "a.yaml"))

	err := lib.Load(strings.NewReader("actions:\n  - id: strike\n"), "b.yaml")
	require.Error(t, err)
	assert.True(t, dnderr.IsAlreadyExists(err))
	assert.Contains(t, err.Error(), "a.yaml")
}

func TestLoadEmpty(t *testing.T) {
	lib := newLibrary(t)
	require.NoError(t, lib.Load(strings.NewReader(""), "empty.yaml"))
	assert.Empty(t, lib.ActionIDs())
}

func TestScriptsNeedCompiler(t *testing.T) {
	lib := content.NewLibrary(nil)
	err := lib.Load(strings.NewReader("actions:\n  - id: x\n    scripts:\n      - {name: s, phase: prepare, expr: '{}'}\n"), "x.yaml")
	require.Error(t, err)
	assert.True(t, dnderr.IsFailedPrecondition(err))
}

func TestLookupsMiss(t *testing.T) {
	lib := newLibrary(t)

	_, err := lib.Definition("nothing")
	assert.True(t, dnderr.IsNotFound(err))

	_, err = lib.Sheet("nobody")
	assert.True(t, dnderr.IsNotFound(err))

	_, err = lib.NewActor("nobody")
	assert.True(t, dnderr.IsNotFound(err))
}
