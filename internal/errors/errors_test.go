package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := NotFoundf("element %q not found", "hp-bar").WithMeta("element_id", "hp-bar")

	wrapped := Wrap(base, "failed to load layout")
	require.NotNil(t, wrapped)

	assert.Equal(t, CodeNotFound, wrapped.Code)
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, "hp-bar", GetMeta(wrapped)["element_id"])
	assert.Equal(t, `failed to load layout: element "hp-bar" not found`, wrapped.Error())

	// the copy must not alias the original metadata
	wrapped.WithMeta("extra", 1)
	_, leaked := base.Meta["extra"]
	assert.False(t, leaked)
}

func TestWrap_ForeignError(t *testing.T) {
	wrapped := Wrapf(fmt.Errorf("boom"), "tick %d", 3)
	require.NotNil(t, wrapped)
	assert.Equal(t, CodeUnknown, GetCode(wrapped))
	assert.Equal(t, "tick 3: boom", wrapped.Error())
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Nil(t, Wrapf(nil, "nothing %d", 1))
	assert.Nil(t, WrapWithCode(nil, CodeInternal, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	wrapped := WrapWithCode(errors.New("dial tcp: refused"), CodeUnavailable, "redis unavailable")
	assert.True(t, Is(wrapped, CodeUnavailable))
	assert.ErrorContains(t, wrapped, "refused")
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsValidation(Validationf("bad number %q", "1,5")))
	assert.True(t, IsInvalidArgument(InvalidArgument("nil element")))
	assert.True(t, IsAlreadyExists(AlreadyExistsf("element %s", "x")))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.Equal(t, CodeUnknown, GetCode(errors.New("plain")))
}
