package timer

import (
	"github.com/pkg/errors"

	"github.com/streamward/streamward/runner"
	"github.com/streamward/streamward/watermark"
	"github.com/streamward/streamward/window"
)

// CleanupTimerID is the timer ID reserved for window cleanup timers.
const CleanupTimerID = "gc"

type windowTimer struct {
	ID     string
	Window window.Window
}

// WindowService schedules window-scoped timers for one keyed partition,
// driven by the input watermark of one or more upstream inputs. It
// implements runner.CleanupTimer: the cleanup timer for a window is an
// event-time timer with ID CleanupTimerID firing at the window's cleanup
// time. Fired timers are handed to the bound runner.
type WindowService[T any] struct {
	strategy window.Strategy
	combined *watermark.Combine
	service  *Service[windowTimer]
	target   runner.Runner[T]
}

func NewWindowService[T any](strategy window.Strategy, inputs int) *WindowService[T] {
	ws := &WindowService[T]{
		strategy: strategy,
		combined: watermark.NewCombine(inputs),
	}
	ws.service = NewService[windowTimer](ws)
	return ws
}

// Bind attaches the runner that receives fired timers. Must be called
// before any clock is advanced.
func (ws *WindowService[T]) Bind(target runner.Runner[T]) {
	ws.target = target
}

// AdvanceWatermark records a new watermark for one input (1-based) and, if
// the combined watermark over all inputs advanced, fires due event-time
// timers synchronously.
func (ws *WindowService[T]) AdvanceWatermark(timestamp int64, input int) {
	if ws.combined.Update(timestamp, input) {
		ws.service.AdvanceWatermark(ws.combined.Get())
	}
}

// AdvanceProcessingTime moves the wall clock forward and fires due
// processing-time timers synchronously.
func (ws *WindowService[T]) AdvanceProcessingTime(timestamp int64) {
	ws.service.AdvanceProcessingTime(timestamp)
}

// RegisterEventTimeTimer arms an event-time timer on behalf of the
// delegate. Timers past the window's cleanup time are not admitted: state
// may already be gone when they would fire.
func (ws *WindowService[T]) RegisterEventTimeTimer(id string, w window.Window, timestamp int64) error {
	if id == CleanupTimerID {
		return errors.Errorf("timer ID %q is reserved for cleanup timers", CleanupTimerID)
	}
	if timestamp > ws.strategy.CleanupTime(w) {
		return errors.Errorf("can't set event-time timer %q at %d past cleanup time %d of window %s",
			id, timestamp, ws.strategy.CleanupTime(w), w)
	}
	ws.service.RegisterEventTimeTimer(Timer[windowTimer]{
		Payload:   windowTimer{ID: id, Window: w},
		Timestamp: timestamp,
	})
	return nil
}

// RegisterProcessingTimeTimer arms a processing-time timer on behalf of
// the delegate. No cleanup-time guard applies, the runner rechecks
// lateness when the timer fires.
func (ws *WindowService[T]) RegisterProcessingTimeTimer(id string, w window.Window, timestamp int64) error {
	if id == CleanupTimerID {
		return errors.Errorf("timer ID %q is reserved for cleanup timers", CleanupTimerID)
	}
	ws.service.RegisterProcessingTimeTimer(Timer[windowTimer]{
		Payload:   windowTimer{ID: id, Window: w},
		Timestamp: timestamp,
	})
	return nil
}

// NumPendingEventTimeTimers reports how many event-time timers are armed.
func (ws *WindowService[T]) NumPendingEventTimeTimers() int {
	return ws.service.NumEventTimeTimers()
}

func (ws *WindowService[T]) CurrentInputWatermark() int64 {
	return ws.service.CurrentWatermark()
}

// SetForWindow arms the cleanup timer at the window's cleanup time.
// Re-arming for the same window is deduped by the timer queue.
func (ws *WindowService[T]) SetForWindow(w window.Window) {
	ws.service.RegisterEventTimeTimer(Timer[windowTimer]{
		Payload:   windowTimer{ID: CleanupTimerID, Window: w},
		Timestamp: ws.strategy.CleanupTime(w),
	})
}

func (ws *WindowService[T]) IsForWindow(timerID string, w window.Window, timestamp int64, domain runner.TimeDomain) bool {
	return timerID == CleanupTimerID &&
		domain == runner.EventTime &&
		timestamp == ws.strategy.CleanupTime(w)
}

func (ws *WindowService[T]) OnEventTime(timer Timer[windowTimer]) {
	ws.target.OnTimer(timer.Payload.ID, timer.Payload.Window, timer.Timestamp, runner.EventTime)
}

func (ws *WindowService[T]) OnProcessingTime(timer Timer[windowTimer]) {
	ws.target.OnTimer(timer.Payload.ID, timer.Payload.Window, timer.Timestamp, runner.ProcessingTime)
}
