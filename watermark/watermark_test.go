package watermark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineInit(t *testing.T) {
	combine := NewCombine(2)
	assert.True(t, combine.IsIdle())
}

func TestCombineTwoInputUpdate(t *testing.T) {
	combine := NewCombine(2)
	var currentTimestamp int64 = 1
	assert.True(t, combine.Update(currentTimestamp+1, 1))
	assert.False(t, combine.IsIdle())
	assert.False(t, combine.Update(currentTimestamp, 2))
	assert.False(t, combine.Update(currentTimestamp+2, 1))
	assert.True(t, combine.Update(currentTimestamp+2, 2))
}

func TestCombineOneInputUpdate(t *testing.T) {
	combine := NewCombine(2)
	for i := 0; i < 100; i++ {
		assert.True(t, combine.Update(int64(i), 1))
	}
	assert.Equal(t, int64(99), combine.Get())
}

func TestCombineUpdateIdle(t *testing.T) {
	t.Run("case-1", func(t *testing.T) {
		combine := NewCombine(2)
		combine.Update(1, 1)
		combine.Update(100, 2)
		assert.Equal(t, int64(1), combine.Get())
		assert.True(t, combine.UpdateIdle(true, 1))
		assert.Equal(t, int64(100), combine.Get())
	})
	t.Run("case-2", func(t *testing.T) {
		combine := NewCombine(2)
		combine.Update(100, 1)
		combine.Update(1, 2)
		assert.Equal(t, int64(100), combine.Get())
		assert.False(t, combine.UpdateIdle(true, 1))
	})
}
