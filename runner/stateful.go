package runner

import (
	"github.com/pkg/errors"
	"github.com/uber-go/tally/v4"

	"github.com/streamward/streamward/element"
	"github.com/streamward/streamward/log"
	"github.com/streamward/streamward/window"
)

// DroppedDueToLateness is the name of the counter tracking elements
// dropped because their window was past its cleanup time.
const DroppedDueToLateness = "dropped_due_to_lateness"

// Stateful decorates a delegate Runner with late-data dropping and window
// state garbage collection. It arms a cleanup timer in ProcessElement and
// clears the window's state when that timer fires in OnTimer. Only
// non-merging windows are supported.
type Stateful[T any] struct {
	delegate     Runner[T]
	strategy     window.Strategy
	cleanupTimer CleanupTimer
	stateCleaner StateCleaner
	dropped      tally.Counter
	logger       log.Logger
}

func NewStateful[T any](
	delegate Runner[T],
	strategy window.Strategy,
	cleanupTimer CleanupTimer,
	stateCleaner StateCleaner,
	scope tally.Scope,
	logger log.Logger,
) (*Stateful[T], error) {
	if strategy.Kind() == window.Merging {
		return nil, errors.Errorf("merging windows are not supported for stateful processing")
	}
	return &Stateful[T]{
		delegate:     delegate,
		strategy:     strategy,
		cleanupTimer: cleanupTimer,
		stateCleaner: stateCleaner,
		dropped:      scope.Counter(DroppedDueToLateness),
		logger:       logger.Named("stateful"),
	}, nil
}

func (s *Stateful[T]) StartBundle() {
	s.delegate.StartBundle()
}

func (s *Stateful[T]) FinishBundle() {
	s.delegate.FinishBundle()
}

// ProcessElement delivers the event to the delegate once per window
// membership, dropping the windows that are past their cleanup time.
// State is scoped per window, so multi-window events are exploded first.
func (s *Stateful[T]) ProcessElement(event *element.Event[T]) {
	for _, value := range event.Explode() {
		w := value.Windows[0]
		if s.isLate(w) {
			s.dropped.Inc(1)
			s.logger.Debugf("dropping element at %d in window %s: too far behind input watermark %d",
				value.Timestamp, w, s.cleanupTimer.CurrentInputWatermark())
			continue
		}
		s.cleanupTimer.SetForWindow(w)
		s.delegate.ProcessElement(value)
	}
}

// OnTimer reacts to a fired timer: the cleanup timer clears the window's
// state, any other timer is forwarded to the delegate unless it is a
// processing-time timer for a window that has become late in the meantime.
func (s *Stateful[T]) OnTimer(timerID string, w window.Window, timestamp int64, domain TimeDomain) {
	if s.cleanupTimer.IsForWindow(timerID, w, timestamp, domain) {
		// the delegate receives no expiration notification before the
		// clear; that hook is not wired up
		s.stateCleaner.ClearForWindow(w)
		return
	}
	// An event-time timer can never be late, setting one past the cleanup
	// time is not admitted. A processing-time timer can still fire for a
	// window that has become late, ignore it without touching the dropped
	// counter: it is a timer, not an element.
	if domain == ProcessingTime && s.isLate(w) {
		s.logger.Debugf("ignoring processing-time timer at %d in window %s: too far behind input watermark %d",
			timestamp, w, s.cleanupTimer.CurrentInputWatermark())
		return
	}
	s.delegate.OnTimer(timerID, w, timestamp, domain)
}

func (s *Stateful[T]) isLate(w window.Window) bool {
	return s.strategy.IsLate(w, s.cleanupTimer.CurrentInputWatermark())
}
