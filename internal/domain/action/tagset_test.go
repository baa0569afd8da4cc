package action_test

import (
	"slices"
	"testing"

	"github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, tags ...*action.Tag) *action.TagRegistry {
	t.Helper()
	reg := action.NewTagRegistry()
	for _, tag := range tags {
		require.NoError(t, reg.Register(tag))
	}
	return reg
}

func names(set *action.TagSet) []string {
	var out []string
	for tag := range set.Tags() {
		out = append(out, tag.Name)
	}
	return out
}

func TestTagSet_PriorityOrder(t *testing.T) {
	reg := newRegistry(t,
		&action.Tag{Name: "melee", Priority: 1},
		&action.Tag{Name: "strike", Priority: action.PriorityLast},
	)

	set := action.NewTagSet(reg, "strike", "melee")

	assert.Equal(t, []string{"melee", "strike"}, names(set))
	assert.Equal(t, []string{"melee", "strike"}, set.Names())
}

func TestTagSet_IterationIsRestartable(t *testing.T) {
	reg := newRegistry(t,
		&action.Tag{Name: "a", Priority: 3},
		&action.Tag{Name: "b", Priority: 1},
		&action.Tag{Name: "c"},
	)
	set := action.NewTagSet(reg, "a", "b", "c")

	seq := set.Tags()
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)

	set.Delete("b")
	third := slices.Collect(seq)
	require.Len(t, third, 2)
	assert.Equal(t, "a", third[0].Name)
}

func TestTagSet_InsertionOrderIrrelevant(t *testing.T) {
	reg := newRegistry(t,
		&action.Tag{Name: "melee", Priority: 1},
		&action.Tag{Name: "mainhand", Priority: 2},
		&action.Tag{Name: "deadly", Priority: 20},
		&action.Tag{Name: "fire"},
		&action.Tag{Name: "strike", Priority: action.PriorityLast},
	)

	all := []string{"melee", "mainhand", "deadly", "fire", "strike"}
	want := names(action.NewTagSet(reg, all...))

	orders := [][]string{
		{"strike", "fire", "deadly", "mainhand", "melee"},
		{"fire", "melee", "strike", "mainhand", "deadly"},
		{"deadly", "strike", "melee", "fire", "mainhand"},
	}
	for _, order := range orders {
		assert.Equal(t, want, names(action.NewTagSet(reg, order...)), "order %v", order)
	}
}

func TestTagSet_TiesKeepInsertionOrder(t *testing.T) {
	reg := newRegistry(t, &action.Tag{Name: "x"}, &action.Tag{Name: "y"})

	assert.Equal(t, []string{"x", "y"}, names(action.NewTagSet(reg, "x", "y")))
	assert.Equal(t, []string{"y", "x"}, names(action.NewTagSet(reg, "y", "x")))
}

func TestTagSet_ZeroPriorityIsDefault(t *testing.T) {
	reg := newRegistry(t,
		&action.Tag{Name: "unset"},
		&action.Tag{Name: "early", Priority: 49},
		&action.Tag{Name: "first", Priority: action.PriorityFirst},
		&action.Tag{Name: "negative", Priority: -5},
	)

	unset, _ := reg.Get("unset")
	assert.Equal(t, action.PriorityDefault, unset.EffectivePriority())
	assert.Equal(t, []string{"first", "negative", "early", "unset"},
		names(action.NewTagSet(reg, "unset", "early", "negative", "first")))
}

func TestTagSet_PropagationClosure(t *testing.T) {
	reg := newRegistry(t,
		&action.Tag{Name: "x", Propagate: []string{"y"}},
		&action.Tag{Name: "y", Propagate: []string{"z"}},
		&action.Tag{Name: "z"},
	)

	set := action.NewTagSet(reg)
	assert.True(t, set.Add("x"))

	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Has("x"))
	assert.True(t, set.Has("y"))
	assert.True(t, set.Has("z"))
}

func TestTagSet_PropagationCycleTerminates(t *testing.T) {
	reg := newRegistry(t,
		&action.Tag{Name: "ping", Propagate: []string{"pong"}},
		&action.Tag{Name: "pong", Propagate: []string{"ping"}},
	)

	set := action.NewTagSet(reg, "ping")
	assert.Equal(t, []string{"ping", "pong"}, set.Names())
	assert.Error(t, reg.Validate())
}

func TestTagSet_UnknownAndDuplicate(t *testing.T) {
	reg := newRegistry(t, &action.Tag{Name: "melee", Priority: 1})
	set := action.NewTagSet(reg)

	assert.False(t, set.Add("laser"))
	assert.Equal(t, 0, set.Len())

	assert.True(t, set.Add("melee"))
	assert.False(t, set.Add("melee"))
	assert.Equal(t, 1, set.Len())
}

func TestTagSet_DeleteClearClone(t *testing.T) {
	reg := newRegistry(t,
		&action.Tag{Name: "a", Priority: 1},
		&action.Tag{Name: "b", Priority: 2},
	)
	set := action.NewTagSet(reg, "a", "b")
	clone := set.Clone()

	assert.True(t, set.Delete("a"))
	assert.False(t, set.Delete("a"))
	assert.Equal(t, []string{"b"}, set.Names())
	assert.Equal(t, []string{"a", "b"}, clone.Names())

	set.Clear()
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, slices.Collect(set.Tags()))
	assert.Equal(t, 2, clone.Len())
}

func TestTagRegistry(t *testing.T) {
	reg := action.NewTagRegistry()

	require.NoError(t, reg.Register(&action.Tag{Name: "melee"}))
	assert.Error(t, reg.Register(&action.Tag{Name: "melee"}))
	assert.Error(t, reg.Register(&action.Tag{}))
	assert.Error(t, reg.Register(nil))

	tag, ok := reg.Get("melee")
	require.True(t, ok)
	assert.Equal(t, action.PriorityDefault, tag.EffectivePriority())
	assert.Equal(t, []string{"melee"}, reg.Names())
	assert.Equal(t, 1, reg.Len())

	require.NoError(t, reg.Validate())
	require.NoError(t, reg.Register(&action.Tag{Name: "twohand", Propagate: []string{"missing"}}))
	assert.ErrorContains(t, reg.Validate(), "unknown tag")
}
