package timer

import (
	"container/heap"
)

// Timer is a structure that contains triggering events
type Timer[T comparable] struct {
	Payload   T
	Timestamp int64
}

// queue[T] is a priority queue,
// sorted from smallest to largest according to Timer.Timestamp,
// and use dedupeMap to prevent the same Timer from being inserted.
// If timestamps are inserted in this order
// +---+     +---+     +---+     +---+     +-------------+     +---+
// | 2 | --> | 5 | --> | 3 | --> | 1 | --> | duplicate:3 | --> | 7 |
// +---+     +---+     +---+     +---+     +-------------+     +---+
// items:
// +---+     +---+     +---+     +---+     +---+
// | 1 | --> | 2 | --> | 3 | --> | 5 | --> | 7 |
// +---+     +---+     +---+     +---+     +---+
type queue[T comparable] struct {
	items     []Timer[T]
	dedupeMap map[Timer[T]]struct{}
	nil       Timer[T]
}

func newQueue[T comparable]() *queue[T] {
	return &queue[T]{dedupeMap: map[Timer[T]]struct{}{}}
}

//---------------------------------------------------------------------------------
//Warning: Do not call directly, expose the function only for the heap package to use
//---------------------------------------------------------------------------------

func (q *queue[T]) Less(i, j int) bool {
	return q.items[i].Timestamp < q.items[j].Timestamp
}

func (q *queue[T]) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *queue[T]) Push(x any) {
	item := x.(Timer[T])
	q.items = append(q.items, item)
}

func (q *queue[T]) Pop() any {
	old := q.items
	n := len(old)
	x := old[n-1]
	q.items = old[0 : n-1]
	return x
}

//---------------------------------------------------------------------------------

func (q *queue[T]) Len() int {
	return len(q.items)
}

func (q *queue[T]) PushTimer(item Timer[T]) {
	if _, ok := q.dedupeMap[item]; !ok {
		q.dedupeMap[item] = struct{}{}
		heap.Push(q, item)
	}
}

func (q *queue[T]) PopTimer() Timer[T] {
	if len(q.items) == 0 {
		return q.nil
	}
	item := heap.Pop(q).(Timer[T])
	delete(q.dedupeMap, item)
	return item
}

func (q *queue[T]) PeekTimer() Timer[T] {
	return q.items[0]
}

func (q *queue[T]) Remove(timer Timer[T]) bool {
	index := q.Index(timer)
	if index != -1 {
		delete(q.dedupeMap, timer)
		heap.Remove(q, index)
		if index == 0 {
			return true
		}
	}
	return false
}

func (q *queue[T]) Index(timer Timer[T]) int {
	for index, item := range q.items {
		if item == timer {
			return index
		}
	}
	return -1
}
