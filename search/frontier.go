package search

import "container/heap"

type entry[S comparable, A any] struct {
	state    S
	path     []A
	priority float64
	seq      int // Insertion order, breaks priority ties
}

type frontier[S comparable, A any] interface {
	push(e entry[S, A])
	pop() entry[S, A]
	len() int
}

type stack[S comparable, A any] struct {
	entries []entry[S, A]
}

func (s *stack[S, A]) push(e entry[S, A]) {
	s.entries = append(s.entries, e)
}

func (s *stack[S, A]) pop() entry[S, A] {
	last := len(s.entries) - 1
	e := s.entries[last]
	s.entries[last] = entry[S, A]{}
	s.entries = s.entries[:last]
	return e
}

func (s *stack[S, A]) len() int { return len(s.entries) }

type queue[S comparable, A any] struct {
	entries []entry[S, A]
	head    int
}

func (q *queue[S, A]) push(e entry[S, A]) {
	q.entries = append(q.entries, e)
}

func (q *queue[S, A]) pop() entry[S, A] {
	e := q.entries[q.head]
	q.entries[q.head] = entry[S, A]{}
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array
	if q.head > 64 && q.head*2 > len(q.entries) {
		q.entries = append(q.entries[:0], q.entries[q.head:]...)
		q.head = 0
	}
	return e
}

func (q *queue[S, A]) len() int { return len(q.entries) - q.head }

// priorityQueue is a min-heap on priority, FIFO among equal priorities.
type priorityQueue[S comparable, A any] struct {
	h   entryHeap[S, A]
	seq int
}

func (pq *priorityQueue[S, A]) push(e entry[S, A]) {
	e.seq = pq.seq
	pq.seq++
	heap.Push(&pq.h, e)
}

func (pq *priorityQueue[S, A]) pop() entry[S, A] {
	return heap.Pop(&pq.h).(entry[S, A])
}

func (pq *priorityQueue[S, A]) len() int { return pq.h.Len() }

type entryHeap[S comparable, A any] []entry[S, A]

func (h entryHeap[S, A]) Len() int { return len(h) }

func (h entryHeap[S, A]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[S, A]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[S, A]) Push(x any) {
	*h = append(*h, x.(entry[S, A]))
}

func (h *entryHeap[S, A]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[S, A]{} // avoid memory leak
	*h = old[:n-1]
	return e
}
