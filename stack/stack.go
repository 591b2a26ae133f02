package stack

func New[T any]() *stack[T] {
	return &stack[T]{}
}

func (s *stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Close unlinks the chain node by node.
func (s *stack[T]) Close() {
	for n := s.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	s.head = nil
}

func (s *stack[T]) Pop() (T, bool) {
	var zero T

	n := s.head
	if n == nil {
		return zero, false
	}
	s.head, n.next = n.next, nil
	return n.v, true
}

func (s *stack[T]) Peek() (T, bool) {
	var zero T

	if s.head == nil {
		return zero, false
	}
	return s.head.v, true
}

func (s *stack[T]) PeekMut() (*T, bool) {
	if s.head == nil {
		return nil, false
	}
	return &s.head.v, true
}

func (s *stack[T]) Push(v T) {
	s.head = &node[T]{v: v, next: s.head}
}
