package search

// frontier is the discovered-but-not-expanded set of a search.
// Its removal order defines the strategy.
type frontier[T any] interface {
	push(v T)
	pop() T
	len() int
}

// fifo is a queue frontier. The head cursor avoids shifting on pop; the
// backing slice is compacted once the consumed prefix dominates.
type fifo[T any] struct {
	items []T
	head  int
}

func newFIFO[T any](capacity int) *fifo[T] {
	return &fifo[T]{items: make([]T, 0, capacity)}
}

func (q *fifo[T]) push(v T) {
	q.items = append(q.items, v)
}

func (q *fifo[T]) pop() T {
	v := q.items[q.head]
	q.head++
	if q.head > len(q.items)/2 && q.head > 32 {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return v
}

func (q *fifo[T]) len() int {
	return len(q.items) - q.head
}

// lifo is a stack frontier.
type lifo[T any] struct {
	items []T
}

func newLIFO[T any](capacity int) *lifo[T] {
	return &lifo[T]{items: make([]T, 0, capacity)}
}

func (s *lifo[T]) push(v T) {
	s.items = append(s.items, v)
}

func (s *lifo[T]) pop() T {
	last := len(s.items) - 1
	v := s.items[last]
	s.items = s.items[:last]
	return v
}

func (s *lifo[T]) len() int {
	return len(s.items)
}

func (s *lifo[T]) reset() {
	s.items = s.items[:0]
}
