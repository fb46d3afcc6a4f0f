package window

import (
	"math"

	"github.com/pkg/errors"
)

// Kind classifies the window function that produced the windows.
type Kind int

const (
	NonMerging Kind = iota
	Merging
)

func (k Kind) String() string {
	switch k {
	case NonMerging:
		return "non-merging"
	case Merging:
		return "merging"
	default:
		return "unknown"
	}
}

// Strategy pairs the window function kind with the allowed lateness,
// the grace period in milliseconds after a window's max timestamp during
// which late elements are still accepted. Immutable after construction.
type Strategy struct {
	kind            Kind
	allowedLateness int64
}

func NewStrategy(kind Kind, allowedLateness int64) (Strategy, error) {
	if allowedLateness < 0 {
		return Strategy{}, errors.Errorf("allowedLateness can't less than 0: %d", allowedLateness)
	}
	return Strategy{kind: kind, allowedLateness: allowedLateness}, nil
}

func (s Strategy) Kind() Kind {
	return s.kind
}

func (s Strategy) AllowedLateness() int64 {
	return s.allowedLateness
}

// CleanupTime returns the garbage collection time for a window,
// which is Window.MaxTimestamp() + allowedLateness.
// In case this leads to a value greater than math.MaxInt64 then math.MaxInt64 is returned.
func (s Strategy) CleanupTime(w Window) int64 {
	cleanupTime := w.MaxTimestamp() + s.allowedLateness
	if cleanupTime < w.MaxTimestamp() {
		return math.MaxInt64
	}
	return cleanupTime
}

// IsLate reports whether the window is past its cleanup time at the given
// input watermark. A watermark exactly at the cleanup time is not late.
func (s Strategy) IsLate(w Window, watermark int64) bool {
	return s.CleanupTime(w) < watermark
}
