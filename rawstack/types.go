package rawstack

import (
	"github.com/infinivision/gaealist/arena"
	"github.com/infinivision/gaealist/link"
	"github.com/infinivision/gaealist/locker"
)

type Stack[T any] interface {
	Len() int
	Close()

	Push(T)
	Pop() (T, bool)
	Peek() (T, bool)
	PeekMut() (*T, bool)

	IntoIter() link.Iterator[T]
	Iter() link.Iterator[T]
	IterMut() link.MutIterator[T]
}

type intoIterator[T any] struct {
	s *stack[T]
}

type stack[T any] struct {
	cfg  arena.Config
	head arena.Handle
	l    locker.Locker
	a    arena.Arena[link.Node[T]]
}
