package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueuePeek(t *testing.T) {
	qu := newQueue[string]()
	qu.PushTimer(Timer[string]{
		Payload:   "tt",
		Timestamp: 2,
	})
	qu.PushTimer(Timer[string]{
		Payload:   "t",
		Timestamp: 1,
	})
	qu.PushTimer(Timer[string]{
		Payload:   "ttt",
		Timestamp: 3,
	})
	peek := qu.PeekTimer()
	assert.Equal(t, "t", peek.Payload)
	assert.Equal(t, int64(1), peek.Timestamp)
	assert.Equal(t, 3, qu.Len())
}

func TestQueuePop(t *testing.T) {
	qu := newQueue[string]()
	qu.PushTimer(Timer[string]{
		Payload:   "tt",
		Timestamp: 2,
	})
	qu.PushTimer(Timer[string]{
		Payload:   "t",
		Timestamp: 1,
	})
	qu.PushTimer(Timer[string]{
		Payload:   "ttt",
		Timestamp: 3,
	})
	assert.Equal(t, "t", qu.PopTimer().Payload)
	assert.Equal(t, 2, qu.Len())
	assert.Equal(t, "tt", qu.PopTimer().Payload)
	assert.Equal(t, "ttt", qu.PopTimer().Payload)
	pop := qu.PopTimer()
	assert.Equal(t, Timer[string]{}, pop)
}

func TestQueueDedupe(t *testing.T) {
	qu := newQueue[string]()
	for i := 0; i < 3; i++ {
		qu.PushTimer(Timer[string]{
			Payload:   "t",
			Timestamp: 1,
		})
	}
	assert.Equal(t, 1, qu.Len())
}

func TestQueueRemove(t *testing.T) {
	qu := newQueue[string]()
	qu.PushTimer(Timer[string]{
		Payload:   "tt",
		Timestamp: 2,
	})
	qu.PushTimer(Timer[string]{
		Payload:   "t",
		Timestamp: 1,
	})
	assert.True(t, qu.Remove(Timer[string]{Payload: "t", Timestamp: 1}))
	assert.Equal(t, 1, qu.Len())
	assert.False(t, qu.Remove(Timer[string]{Payload: "missing", Timestamp: 9}))
	//removed timers can be inserted again
	qu.PushTimer(Timer[string]{Payload: "t", Timestamp: 1})
	assert.Equal(t, 2, qu.Len())
}
