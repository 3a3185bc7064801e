package refine

import "container/heap"

// badItem is one candidate for Steiner insertion: a tetrahedron whose
// radius-edge ratio or volume exceeds the configured bound. Since a
// surviving tetrahedron's own vertices never move, its ratio never goes
// stale while it exists — only deletion invalidates an entry, which
// Refine checks for at pop time rather than eagerly purging the heap.
type badItem struct {
	tet   int
	ratio float64
	index int
}

// badQueue is a max-heap on ratio: the worst tetrahedron is always
// popped first, matching TetGen's convention of refining the least
// well-shaped cells before marginal ones.
type badQueue []*badItem

func (q badQueue) Len() int { return len(q) }
func (q badQueue) Less(i, j int) bool {
	return q[i].ratio > q[j].ratio
}
func (q badQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}
func (q *badQueue) Push(x interface{}) {
	item := x.(*badItem)
	item.index = len(*q)
	*q = append(*q, item)
}
func (q *badQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

// Queue wraps badQueue behind container/heap's functional API.
type Queue struct {
	h badQueue
}

// NewQueue returns an empty priority queue.
func NewQueue() *Queue {
	q := &Queue{}
	heap.Init(&q.h)
	return q
}

// Push adds a candidate tetrahedron.
func (q *Queue) Push(tet int, ratio float64) {
	heap.Push(&q.h, &badItem{tet: tet, ratio: ratio})
}

// Pop removes and returns the worst remaining candidate, or ok=false if
// the queue is empty.
func (q *Queue) Pop() (tet int, ratio float64, ok bool) {
	if q.h.Len() == 0 {
		return 0, 0, false
	}
	item := heap.Pop(&q.h).(*badItem)
	return item.tet, item.ratio, true
}

// Len reports how many candidates remain queued.
func (q *Queue) Len() int { return q.h.Len() }
