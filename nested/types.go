package nested

// List is either empty (head == nil) or one element followed by the rest
// of the list, which the cell owns.
type List[T any] struct {
	head *cell[T]
}

type cell[T any] struct {
	elem T
	rest List[T]
}
