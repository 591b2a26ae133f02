package link

import (
	"github.com/infinivision/gaealist/arena"
	"github.com/infinivision/gaealist/locker"
)

func NewIterator[T any](a arena.Arena[Node[T]], l locker.Locker, head arena.Handle) *iterator[T] {
	l.RLock()
	return &iterator[T]{held: true, cur: head, l: l, a: a}
}

func NewMutIterator[T any](a arena.Arena[Node[T]], l locker.Locker, head arena.Handle) *mutIterator[T] {
	l.Lock()
	return &mutIterator[T]{held: true, cur: head, l: l, a: a}
}

func (itr *iterator[T]) Close() {
	if itr.held {
		itr.held = false
		itr.cur = arena.Nil
		itr.l.RUnlock()
	}
}

func (itr *iterator[T]) Next() (T, bool) {
	var zero T

	if !itr.held || itr.cur == arena.Nil {
		itr.Close()
		return zero, false
	}
	n := itr.a.Get(itr.cur)
	itr.cur = n.Next
	return n.Elem, true
}

func (itr *mutIterator[T]) Close() {
	if itr.held {
		itr.held = false
		itr.cur = arena.Nil
		itr.l.Unlock()
	}
}

func (itr *mutIterator[T]) Next() (*T, bool) {
	if !itr.held || itr.cur == arena.Nil {
		itr.Close()
		return nil, false
	}
	n := itr.a.Get(itr.cur)
	itr.cur = n.Next
	return &n.Elem, true
}
