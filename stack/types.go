package stack

type Stack[T any] interface {
	IsEmpty() bool
	Close()
	Push(T)
	Pop() (T, bool)
	Peek() (T, bool)
	PeekMut() (*T, bool)
}

// node owns next: dropping a node drops the chain behind it.
type node[T any] struct {
	v    T
	next *node[T]
}

type stack[T any] struct {
	head *node[T]
}
