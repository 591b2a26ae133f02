package rawdeque

import (
	"github.com/infinivision/gaealist/arena"
	"github.com/infinivision/gaealist/link"
	"github.com/infinivision/gaealist/locker"
)

type Deque[T any] interface {
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
	q *deque[T]
}

// head owns the chain; tail is a cache of the last reachable node and is
// Nil exactly when head is.
type deque[T any] struct {
	cfg  arena.Config
	head arena.Handle
	tail arena.Handle
	l    locker.Locker
	a    arena.Arena[link.Node[T]]
}
