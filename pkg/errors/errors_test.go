package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndKind(t *testing.T) {
	err := New(KindDivideByZero, "boom")
	assert.Equal(t, "divide_by_zero: boom", err.Error())
	assert.True(t, IsKind(err, KindDivideByZero))
	assert.False(t, IsKind(err, KindOverflow))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrap(cause, KindParse, "reading input")
	require.NotNil(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "underlying")

	assert.Nil(t, Wrap(nil, KindParse, "no-op"))
	assert.Nil(t, Wrapf(nil, KindParse, "no-op %d", 1))
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := New(KindOverflow, "too big")
	outer := fmt.Errorf("context: %w", inner)
	assert.True(t, IsKind(outer, KindOverflow))
	assert.False(t, IsKind(stderrors.New("plain"), KindOverflow))
}

func TestWithDetail(t *testing.T) {
	err := Newf(KindLengthMismatch, "lengths %d and %d", 2, 3).
		WithDetail("left", 2).
		WithDetail("right", 3)
	assert.Equal(t, 2, err.Details["left"])
	assert.Equal(t, 3, err.Details["right"])
}
