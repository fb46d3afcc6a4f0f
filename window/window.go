package window

import "fmt"

// Window is the time interval [Start, End) an element was assigned to
// upstream, in unix milliseconds. It is immutable once assigned; Key is
// the identity under which state and timers are scoped.
type Window struct {
	Start int64
	End   int64
}

// MaxTimestamp returns the inclusive largest timestamp that belongs to the window.
func (w Window) MaxTimestamp() int64 {
	return w.End - 1
}

func (w Window) Key() string {
	return fmt.Sprintf("%d-%d", w.Start, w.End)
}

func (w Window) String() string {
	return fmt.Sprintf("[%d,%d)", w.Start, w.End)
}
