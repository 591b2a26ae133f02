package rawstack

import (
	"github.com/infinivision/gaealist/arena"
	"github.com/infinivision/gaealist/link"
	"github.com/infinivision/gaealist/locker"
)

func New[T any]() *stack[T] {
	return NewWithConfig[T](arena.DefaultConfig())
}

func NewWithConfig[T any](cfg arena.Config) *stack[T] {
	return &stack[T]{
		cfg:  cfg,
		head: arena.Nil,
		l:    locker.New(),
		a:    arena.New[link.Node[T]](cfg),
	}
}

func (s *stack[T]) Len() int {
	return s.a.Live()
}

// Close frees every remaining node, one pop at a time.
func (s *stack[T]) Close() {
	s.l.Check("close")
	for _, ok := s.pop(); ok; _, ok = s.pop() {
	}
}

func (s *stack[T]) Push(v T) {
	s.l.Check("push")
	s.head = s.a.Alloc(link.Node[T]{Elem: v, Next: s.head})
}

func (s *stack[T]) Pop() (T, bool) {
	s.l.Check("pop")
	return s.pop()
}

func (s *stack[T]) Peek() (T, bool) {
	var zero T

	s.l.RCheck("peek")
	if s.head == arena.Nil {
		return zero, false
	}
	return s.a.Get(s.head).Elem, true
}

// PeekMut returns a pointer into the head node. It stays valid until
// that node is popped.
func (s *stack[T]) PeekMut() (*T, bool) {
	s.l.Check("peek mut")
	if s.head == arena.Nil {
		return nil, false
	}
	return &s.a.Get(s.head).Elem, true
}

// IntoIter moves the whole chain into the returned iterator and leaves s
// empty.
func (s *stack[T]) IntoIter() link.Iterator[T] {
	s.l.Check("into iter")
	itr := &intoIterator[T]{&stack[T]{cfg: s.cfg, head: s.head, l: locker.New(), a: s.a}}
	s.head = arena.Nil
	s.a = arena.New[link.Node[T]](s.cfg)
	return itr
}

func (s *stack[T]) Iter() link.Iterator[T] {
	return link.NewIterator(s.a, s.l, s.head)
}

func (s *stack[T]) IterMut() link.MutIterator[T] {
	return link.NewMutIterator(s.a, s.l, s.head)
}

func (s *stack[T]) pop() (T, bool) {
	var zero T

	if s.head == arena.Nil {
		return zero, false
	}
	n := s.a.Free(s.head)
	s.head = n.Next
	return n.Elem, true
}

func (itr *intoIterator[T]) Close() {
	itr.s.Close()
}

func (itr *intoIterator[T]) Next() (T, bool) {
	return itr.s.Pop()
}
