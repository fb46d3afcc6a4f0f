package element

import (
	"github.com/streamward/streamward/window"
)

// Event is a value together with its event timestamp and the windows it
// was assigned to upstream.
// keep in mind that it is not thread-safe when you modify
type Event[T any] struct {
	Value     T
	Timestamp int64
	Windows   []window.Window
}

// Explode returns one single-window event per window membership, all
// sharing the value and timestamp. Stateful processing observes exactly
// one window per delivered event.
func (e *Event[T]) Explode() []*Event[T] {
	exploded := make([]*Event[T], 0, len(e.Windows))
	for _, w := range e.Windows {
		exploded = append(exploded, &Event[T]{
			Value:     e.Value,
			Timestamp: e.Timestamp,
			Windows:   []window.Window{w},
		})
	}
	return exploded
}
