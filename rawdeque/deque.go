package rawdeque

import (
	"github.com/infinivision/gaealist/arena"
	"github.com/infinivision/gaealist/link"
	"github.com/infinivision/gaealist/locker"
)

func New[T any]() *deque[T] {
	return NewWithConfig[T](arena.DefaultConfig())
}

func NewWithConfig[T any](cfg arena.Config) *deque[T] {
	return &deque[T]{
		cfg:  cfg,
		head: arena.Nil,
		tail: arena.Nil,
		l:    locker.New(),
		a:    arena.New[link.Node[T]](cfg),
	}
}

func (q *deque[T]) Len() int {
	return q.a.Live()
}

func (q *deque[T]) Close() {
	q.l.Check("close")
	for _, ok := q.pop(); ok; _, ok = q.pop() {
	}
}

// Push appends v at the tail.
func (q *deque[T]) Push(v T) {
	q.l.Check("push")
	h := q.a.Alloc(link.Node[T]{Elem: v, Next: arena.Nil})
	switch q.tail {
	case arena.Nil:
		q.head = h
	default:
		q.a.Get(q.tail).Next = h
	}
	q.tail = h
}

// Pop removes the element at the head.
func (q *deque[T]) Pop() (T, bool) {
	q.l.Check("pop")
	return q.pop()
}

func (q *deque[T]) Peek() (T, bool) {
	var zero T

	q.l.RCheck("peek")
	if q.head == arena.Nil {
		return zero, false
	}
	return q.a.Get(q.head).Elem, true
}

func (q *deque[T]) PeekMut() (*T, bool) {
	q.l.Check("peek mut")
	if q.head == arena.Nil {
		return nil, false
	}
	return &q.a.Get(q.head).Elem, true
}

func (q *deque[T]) IntoIter() link.Iterator[T] {
	q.l.Check("into iter")
	itr := &intoIterator[T]{&deque[T]{
		cfg:  q.cfg,
		head: q.head,
		tail: q.tail,
		l:    locker.New(),
		a:    q.a,
	}}
	q.head, q.tail = arena.Nil, arena.Nil
	q.a = arena.New[link.Node[T]](q.cfg)
	return itr
}

func (q *deque[T]) Iter() link.Iterator[T] {
	return link.NewIterator(q.a, q.l, q.head)
}

func (q *deque[T]) IterMut() link.MutIterator[T] {
	return link.NewMutIterator(q.a, q.l, q.head)
}

func (q *deque[T]) pop() (T, bool) {
	var zero T

	if q.head == arena.Nil {
		return zero, false
	}
	n := q.a.Free(q.head)
	if q.head = n.Next; q.head == arena.Nil {
		q.tail = arena.Nil
	}
	return n.Elem, true
}

func (itr *intoIterator[T]) Close() {
	itr.q.Close()
}

func (itr *intoIterator[T]) Next() (T, bool) {
	return itr.q.Pop()
}
