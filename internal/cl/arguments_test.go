package cl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgumentsDeclareSetGet(t *testing.T) {
	args := NewArguments()
	args.AddFloat("inv_multiplier_1", 0)

	require.NoError(t, args.SetFloat("inv_multiplier_1", 0.25))
	v, err := args.Float("inv_multiplier_1")
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), v)
}

func TestArgumentsUndeclaredName(t *testing.T) {
	args := NewArguments()

	err := args.SetFloat("inv_multiplier_1", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "inv_multiplier_1")

	_, err = args.Float("nope")
	assert.Error(t, err)
}
