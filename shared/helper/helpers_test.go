package helper_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/recency_memo/shared/helper"
	"github.com/stretchr/testify/assert"
)

func TestGetTypedValueOf(t *testing.T) {
	v, err := helper.GetTypedValueOf[int](func() (any, error) { return 3, nil })
	assert.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = helper.GetTypedValueOf[int](func() (any, error) { return "3", nil })
	assert.ErrorContains(t, err, "unexpected type: string")

	boom := errors.New("boom")
	_, err = helper.GetTypedValueOf[int](func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

func TestLookupTyped(t *testing.T) {
	bindings := map[string]any{"a": 1, "b": "x"}

	v, found, err := helper.LookupTyped[int](bindings, "a")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, v)

	_, found, err = helper.LookupTyped[int](bindings, "missing")
	assert.NoError(t, err)
	assert.False(t, found)

	_, found, err = helper.LookupTyped[int](bindings, "b")
	assert.True(t, found)
	assert.ErrorContains(t, err, "b: unexpected type")
}

func TestArgAs(t *testing.T) {
	args := []any{1, "two", nil}
	assert.Equal(t, 1, helper.ArgAs[int](args, 0))
	assert.Equal(t, "two", helper.ArgAs[string](args, 1))
	assert.Nil(t, helper.ArgAs[error](args, 2))
	assert.Panics(t, func() { helper.ArgAs[int](args, 1) })
	assert.Panics(t, func() { helper.ArgAs[int](args, 5) })
}
