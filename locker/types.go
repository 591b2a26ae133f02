package locker

// Locker tracks the borrows taken on one container. It never blocks: a
// borrow that conflicts with a live one panics with errmsg.BorrowConflict.
type Locker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()

	// Check panics if any borrow is alive.
	Check(string)
	// RCheck panics if an exclusive borrow is alive.
	RCheck(string)
}

type locker struct {
	r int  // shared borrows
	w bool // exclusive borrow
}
