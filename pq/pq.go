// Package pq implements an indexed max-priority queue over the integers
// [0, n). Each element can be inserted once, have its priority increased in
// place, and be extracted.
//
// The queue is a binary heap stored in a fixed-size slice together with a
// reverse index from element to heap position, which makes Contains O(1) and
// IncreaseKey O(log n).
//
// Misusing the queue (inserting a present element, increasing the priority
// of an absent element or to a value that is not greater, extracting from an
// empty queue) panics. These conditions are programming errors.
package pq

import "fmt"

// IndexMaxPQ is an indexed max-priority queue of elements in [0, n).
type IndexMaxPQ struct {
	// heap[1..size] holds the elements in heap order; heap[0] is unused.
	heap []int
	// pos[e] is the position of element e in heap, or -1 if e is absent.
	pos []int
	// keys[e] is the priority of element e if it is present.
	keys []int64
	size int
}

// New returns an empty queue that can hold the elements [0, n).
func New(n int) *IndexMaxPQ {
	if n < 0 {
		panic(fmt.Sprintf("pq: negative capacity %d", n))
	}
	q := &IndexMaxPQ{
		heap: make([]int, n+1),
		pos:  make([]int, n),
		keys: make([]int64, n),
	}
	for i := range q.pos {
		q.pos[i] = -1
	}
	return q
}

// Cap returns the number of distinct elements the queue can hold.
func (q *IndexMaxPQ) Cap() int {
	return len(q.pos)
}

// Size returns the number of elements in the queue.
func (q *IndexMaxPQ) Size() int {
	return q.size
}

// IsEmpty returns true if the queue holds no element.
func (q *IndexMaxPQ) IsEmpty() bool {
	return q.size == 0
}

// Contains returns true if element e is in the queue.
func (q *IndexMaxPQ) Contains(e int) bool {
	q.validate(e)
	return q.pos[e] != -1
}

// Key returns the priority of element e, which must be in the queue.
func (q *IndexMaxPQ) Key(e int) int64 {
	if !q.Contains(e) {
		panic(fmt.Sprintf("pq: element %d is not in the queue", e))
	}
	return q.keys[e]
}

// Insert adds element e with the given priority.
func (q *IndexMaxPQ) Insert(e int, priority int64) {
	if q.Contains(e) {
		panic(fmt.Sprintf("pq: element %d is already in the queue", e))
	}
	q.size++
	q.pos[e] = q.size
	q.heap[q.size] = e
	q.keys[e] = priority
	q.swim(q.size)
}

// IncreaseKey raises the priority of element e to priority, which must be
// strictly greater than its current priority.
func (q *IndexMaxPQ) IncreaseKey(e int, priority int64) {
	if !q.Contains(e) {
		panic(fmt.Sprintf("pq: element %d is not in the queue", e))
	}
	if priority <= q.keys[e] {
		panic(fmt.Sprintf("pq: priority %d of element %d is not greater than %d", priority, e, q.keys[e]))
	}
	q.keys[e] = priority
	q.swim(q.pos[e])
}

// Max returns the element with the highest priority and its priority without
// removing it.
func (q *IndexMaxPQ) Max() (int, int64) {
	if q.size == 0 {
		panic("pq: queue is empty")
	}
	e := q.heap[1]
	return e, q.keys[e]
}

// DelMax removes and returns the element with the highest priority. Ties are
// broken arbitrarily.
func (q *IndexMaxPQ) DelMax() int {
	if q.size == 0 {
		panic("pq: queue is empty")
	}
	top := q.heap[1]
	q.exch(1, q.size)
	q.size--
	q.sink(1)
	q.pos[top] = -1
	q.heap[q.size+1] = -1
	return top
}

func (q *IndexMaxPQ) validate(e int) {
	if e < 0 || len(q.pos) <= e {
		panic(fmt.Sprintf("pq: element %d is not in [0, %d)", e, len(q.pos)))
	}
}

func (q *IndexMaxPQ) less(i, j int) bool {
	return q.keys[q.heap[i]] < q.keys[q.heap[j]]
}

func (q *IndexMaxPQ) exch(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i]] = i
	q.pos[q.heap[j]] = j
}

func (q *IndexMaxPQ) swim(k int) {
	for k > 1 && q.less(k/2, k) {
		q.exch(k, k/2)
		k = k / 2
	}
}

func (q *IndexMaxPQ) sink(k int) {
	for 2*k <= q.size {
		j := 2 * k
		if j < q.size && q.less(j, j+1) {
			j++
		}
		if !q.less(k, j) {
			break
		}
		q.exch(k, j)
		k = j
	}
}
