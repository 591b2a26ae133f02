package nested

func New[T any]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *List[T]) Len() int {
	n := 0
	for c := l.head; c != nil; c = c.rest.head {
		n++
	}
	return n
}

func (l *List[T]) Close() {
	for l.head != nil {
		c := l.head
		l.head, c.rest.head = c.rest.head, nil
	}
}

// PushFront wraps the current list in a new cell holding v.
func (l *List[T]) PushFront(v T) {
	l.head = &cell[T]{elem: v, rest: List[T]{head: l.head}}
}

func (l *List[T]) PopFront() (T, bool) {
	var zero T

	c := l.head
	if c == nil {
		return zero, false
	}
	l.head, c.rest.head = c.rest.head, nil
	return c.elem, true
}

// PushBack walks to the empty list at the end of the chain and pushes
// there. O(n).
func (l *List[T]) PushBack(v T) {
	l.last().PushFront(v)
}

// PopBack removes the element of the last cell. O(n).
func (l *List[T]) PopBack() (T, bool) {
	var zero T

	if l.head == nil {
		return zero, false
	}
	cur := l
	for cur.head.rest.head != nil {
		cur = &cur.head.rest
	}
	return cur.PopFront()
}

func (l *List[T]) last() *List[T] {
	cur := l
	for cur.head != nil {
		cur = &cur.head.rest
	}
	return cur
}
