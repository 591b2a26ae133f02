package link

import (
	"github.com/infinivision/gaealist/arena"
	"github.com/infinivision/gaealist/locker"
)

// Node is the unit stored in an arena by the raw containers. Next does not
// own the node it names: a node is owned by being reachable from the
// container's head.
type Node[T any] struct {
	Elem T
	Next arena.Handle
}

// Iterator yields elements until exhausted, then keeps returning false.
type Iterator[T any] interface {
	Close()
	Next() (T, bool)
}

type MutIterator[T any] interface {
	Close()
	Next() (*T, bool)
}

type iterator[T any] struct {
	held bool
	cur  arena.Handle
	l    locker.Locker
	a    arena.Arena[Node[T]]
}

type mutIterator[T any] struct {
	held bool
	cur  arena.Handle
	l    locker.Locker
	a    arena.Arena[Node[T]]
}
