package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice([]float32{1, 2, 3}, Shape{B: 1, H: 1, W: 1, C: 4}, Float32)
	assert.Error(t, err)
}

func TestTensorAtSet(t *testing.T) {
	tr, err := New(Shape{B: 2, H: 2, W: 3, C: 4}, Float32)
	require.NoError(t, err)

	tr.Set(1, 0, 2, 3, 42)
	assert.Equal(t, float32(42), tr.At(1, 0, 2, 3))
	assert.Equal(t, float32(0), tr.At(0, 0, 2, 3))
}

func TestReadSlice4ZeroPadding(t *testing.T) {
	// C=6 means slice 1 only has channels 4 and 5; lanes 2 and 3 read zero.
	tr, err := New(Shape{B: 1, H: 1, W: 1, C: 6}, Float32)
	require.NoError(t, err)
	for c := 0; c < 6; c++ {
		tr.Set(0, 0, 0, c, float32(c+1))
	}

	assert.Equal(t, [4]float32{1, 2, 3, 4}, tr.ReadSlice4(0, 0, 0, 0))
	assert.Equal(t, [4]float32{5, 6, 0, 0}, tr.ReadSlice4(0, 0, 0, 1))
}

func TestWriteSlice4DropsTail(t *testing.T) {
	tr, err := New(Shape{B: 1, H: 1, W: 1, C: 5}, Float32)
	require.NoError(t, err)

	tr.WriteSlice4(0, 0, 0, 1, [4]float32{7, 8, 9, 10})
	assert.Equal(t, float32(7), tr.At(0, 0, 0, 4))
	// Channels 5..7 do not exist; the write must not corrupt slice 0.
	assert.Equal(t, [4]float32{0, 0, 0, 0}, tr.ReadSlice4(0, 0, 0, 0))
}

func TestFloat16Rounding(t *testing.T) {
	tr, err := New(Shape{B: 1, H: 1, W: 1, C: 4}, Float16)
	require.NoError(t, err)

	// 0.1 is not representable in half precision; storage must round it the
	// way a device store would.
	tr.Set(0, 0, 0, 0, 0.1)
	got := tr.At(0, 0, 0, 0)
	assert.NotEqual(t, float32(0.1), got)
	assert.InDelta(t, 0.1, got, 1e-4)
	assert.Equal(t, Float16.Round(0.1), got)

	// Exactly representable values survive unchanged.
	tr.Set(0, 0, 0, 1, 1.5)
	assert.Equal(t, float32(1.5), tr.At(0, 0, 0, 1))
}

func TestDataTypeSize(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 2, Float16.Size())
}
