package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStrategyRejectsNegativeLateness(t *testing.T) {
	_, err := NewStrategy(NonMerging, -1)
	assert.Error(t, err)
}

func TestCleanupTime(t *testing.T) {
	strategy, err := NewStrategy(NonMerging, 500)
	assert.Nil(t, err)
	w := Window{Start: 0, End: 1000}
	assert.Equal(t, int64(999), w.MaxTimestamp())
	assert.Equal(t, int64(1499), strategy.CleanupTime(w))
}

func TestCleanupTimeOverflow(t *testing.T) {
	strategy, err := NewStrategy(NonMerging, math.MaxInt64)
	assert.Nil(t, err)
	w := Window{Start: 0, End: 1000}
	assert.Equal(t, int64(math.MaxInt64), strategy.CleanupTime(w))
}

func TestIsLateStrictInequality(t *testing.T) {
	strategy, err := NewStrategy(NonMerging, 0)
	assert.Nil(t, err)
	w := Window{Start: 0, End: 1000}

	//watermark at the max timestamp is on time
	assert.False(t, strategy.IsLate(w, w.MaxTimestamp()))
	//watermark exactly at the cleanup time is still on time
	assert.False(t, strategy.IsLate(w, strategy.CleanupTime(w)))
	//one past the cleanup time is late
	assert.True(t, strategy.IsLate(w, strategy.CleanupTime(w)+1))
}

func TestIsLateWithAllowedLateness(t *testing.T) {
	strategy, err := NewStrategy(NonMerging, 250)
	assert.Nil(t, err)
	w := Window{Start: 0, End: 1000}

	assert.False(t, strategy.IsLate(w, 1249))
	assert.False(t, strategy.IsLate(w, 1000))
	assert.True(t, strategy.IsLate(w, 1250))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "non-merging", NonMerging.String())
	assert.Equal(t, "merging", Merging.String())
}
