package timer

import (
	"math"
)

// Trigger will be triggered passively as time goes by
type Trigger[T comparable] interface {
	OnProcessingTime(timer Timer[T])
	OnEventTime(timer Timer[T])
}

// Service keeps one timer queue per time domain for a single keyed
// partition and fires due timers as its clocks are advanced by the
// caller. It is synchronous: firing happens inside the Advance call,
// in timestamp order.
type Service[T comparable] struct {
	trigger Trigger[T]

	watermarkTimestamp  int64
	processingTimestamp int64
	eventTimeQueue      *queue[T]
	processingTimeQueue *queue[T]
}

func NewService[T comparable](trigger Trigger[T]) *Service[T] {
	return &Service[T]{
		trigger:             trigger,
		watermarkTimestamp:  math.MinInt64,
		processingTimestamp: math.MinInt64,
		eventTimeQueue:      newQueue[T](),
		processingTimeQueue: newQueue[T](),
	}
}

// CurrentWatermark returns the input watermark last advanced to.
func (s *Service[T]) CurrentWatermark() int64 {
	return s.watermarkTimestamp
}

func (s *Service[T]) CurrentProcessingTime() int64 {
	return s.processingTimestamp
}

func (s *Service[T]) RegisterEventTimeTimer(timer Timer[T]) {
	s.eventTimeQueue.PushTimer(timer)
}

func (s *Service[T]) RegisterProcessingTimeTimer(timer Timer[T]) {
	s.processingTimeQueue.PushTimer(timer)
}

func (s *Service[T]) DeleteEventTimeTimer(timer Timer[T]) {
	s.eventTimeQueue.Remove(timer)
}

func (s *Service[T]) DeleteProcessingTimeTimer(timer Timer[T]) {
	s.processingTimeQueue.Remove(timer)
}

// NumEventTimeTimers reports how many event-time timers are pending.
func (s *Service[T]) NumEventTimeTimers() int {
	return s.eventTimeQueue.Len()
}

// AdvanceWatermark moves the input watermark forward and fires every
// event-time timer that became due, in timestamp order. Regressions are
// ignored, the watermark never moves backwards.
func (s *Service[T]) AdvanceWatermark(timestamp int64) {
	if timestamp <= s.watermarkTimestamp {
		return
	}
	s.watermarkTimestamp = timestamp
	for s.eventTimeQueue.Len() > 0 &&
		s.eventTimeQueue.PeekTimer().Timestamp <= s.watermarkTimestamp {
		s.trigger.OnEventTime(s.eventTimeQueue.PopTimer())
	}
}

// AdvanceProcessingTime moves the wall clock forward and fires every
// processing-time timer that became due, in timestamp order.
func (s *Service[T]) AdvanceProcessingTime(timestamp int64) {
	if timestamp <= s.processingTimestamp {
		return
	}
	s.processingTimestamp = timestamp
	for s.processingTimeQueue.Len() > 0 &&
		s.processingTimeQueue.PeekTimer().Timestamp <= timestamp {
		s.trigger.OnProcessingTime(s.processingTimeQueue.PopTimer())
	}
}
