package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	dnderr "github.com/KirkDiggler/crucible-engine/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCode(t *testing.T) {
	base := dnderr.Ineligible("not enough focus").WithMeta("action", "fireball")
	wrapped := dnderr.Wrap(base, "cannot use action")

	assert.True(t, dnderr.IsIneligible(wrapped))
	assert.Equal(t, "cannot use action: not enough focus", wrapped.Error())
	assert.Equal(t, "fireball", dnderr.GetMeta(wrapped)["action"])

	// meta is copied, not shared
	wrapped.WithMeta("extra", true)
	_, shared := base.Meta["extra"]
	assert.False(t, shared)
}

func TestWrap_ForeignErrorIsUnknown(t *testing.T) {
	wrapped := dnderr.Wrap(stderrors.New("boom"), "hook failed")
	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(wrapped))
	assert.Nil(t, dnderr.Wrap(nil, "nothing"))
}

func TestIs_ThroughStdlibWrapping(t *testing.T) {
	err := fmt.Errorf("use: %w", dnderr.Cancelled("configuration dismissed"))
	assert.True(t, dnderr.IsCancelled(err))
	assert.False(t, dnderr.IsIneligible(err))

	precondition := dnderr.FailedPreconditionf("action %s already confirmed", "strike")
	assert.True(t, dnderr.IsFailedPrecondition(precondition))
	assert.Equal(t, "action strike already confirmed", precondition.Error())
}

func TestWrapWithCode(t *testing.T) {
	err := dnderr.WrapWithCode(stderrors.New("redis down"), dnderr.CodeInternal, "failed to save use")
	assert.True(t, dnderr.IsInternal(err))
	assert.ErrorContains(t, err, "redis down")
}
