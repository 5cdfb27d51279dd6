package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesByCode(t *testing.T) {
	err := Clone(ErrConflict, "child id already used")
	assert.True(t, Is(err, ErrConflict))
	assert.False(t, Is(err, ErrNotFound))
	assert.False(t, Is(nil, ErrConflict))
}

func TestIsSeesThroughWrapping(t *testing.T) {
	inner := Wrap(stderrors.New("driver glitch"), ErrInternal.Code, "failed to load child")
	wrapped := fmt.Errorf("list operation: %w", inner)
	assert.True(t, Is(wrapped, ErrInternal))
}

func TestFromErrorNormalises(t *testing.T) {
	assert.Nil(t, FromError(nil))

	typed := Clone(ErrValidation, "bad payload")
	assert.Equal(t, ErrValidation.Code, FromError(typed).Code)

	plain := FromError(stderrors.New("boom"))
	assert.Equal(t, ErrInternal.Code, plain.Code)
	assert.ErrorContains(t, plain, "boom")
}

func TestCloneDoesNotMutateOriginal(t *testing.T) {
	clone := Clone(ErrNotFound, "child not found")
	assert.Equal(t, "child not found", clone.Message)
	assert.Equal(t, "record not found", ErrNotFound.Message)
	assert.Equal(t, ErrNotFound.Code, clone.Code)
}
