package runner

import (
	"github.com/streamward/streamward/element"
	"github.com/streamward/streamward/window"
)

// TimeDomain identifies which clock a timer fires against.
type TimeDomain int

const (
	// EventTime timers fire as the input watermark advances.
	EventTime TimeDomain = iota
	// ProcessingTime timers fire as wall-clock time advances,
	// independent of the watermark.
	ProcessingTime
)

func (d TimeDomain) String() string {
	switch d {
	case EventTime:
		return "event-time"
	case ProcessingTime:
		return "processing-time"
	default:
		return "unknown"
	}
}

// Runner processes windowed elements and fired timers for one keyed state
// partition. The execution harness guarantees at most one invocation at a
// time per partition; implementations do no locking of their own.
type Runner[T any] interface {
	StartBundle()
	ProcessElement(event *element.Event[T])
	OnTimer(timerID string, w window.Window, timestamp int64, domain TimeDomain)
	FinishBundle()
}

// CleanupTimer decides when to clean the state of a window.
//
// A harness might either already keep a timer armed for the expiration time,
// or not need a timer at all because it discards state when a batch is done.
type CleanupTimer interface {
	// CurrentInputWatermark returns the current input watermark of this
	// computation in the event-time domain. Monotonically non-decreasing
	// over the lifetime of a run.
	CurrentInputWatermark() int64

	// SetForWindow arms or refreshes a timer firing at the window's
	// cleanup time. Repeated calls for the same window are harmless.
	SetForWindow(w window.Window)

	// IsForWindow reports whether a fired timer is the cleanup timer for
	// the window. Pure classification, no side effects.
	IsForWindow(timerID string, w window.Window, timestamp int64, domain TimeDomain) bool
}

// StateCleaner removes all persisted state scoped to a window. Clearing an
// already-cleared window must be safe.
type StateCleaner interface {
	ClearForWindow(w window.Window)
}
