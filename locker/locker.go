package locker

import (
	"github.com/infinivision/gaealist/errmsg"
	"github.com/pkg/errors"
)

func New() *locker {
	return &locker{}
}

func (l *locker) Lock() {
	l.Check("exclusive borrow")
	l.w = true
}

func (l *locker) Unlock() {
	if !l.w {
		panic(errors.Wrap(errmsg.BorrowConflict, "unlock without exclusive borrow"))
	}
	l.w = false
}

func (l *locker) RLock() {
	l.RCheck("shared borrow")
	l.r++
}

func (l *locker) RUnlock() {
	if l.r == 0 {
		panic(errors.Wrap(errmsg.BorrowConflict, "runlock without shared borrow"))
	}
	l.r--
}

func (l *locker) Check(op string) {
	switch {
	case l.w:
		panic(errors.Wrapf(errmsg.BorrowConflict, "%s while exclusively borrowed", op))
	case l.r > 0:
		panic(errors.Wrapf(errmsg.BorrowConflict, "%s while %v shared borrows are alive", op, l.r))
	}
}

func (l *locker) RCheck(op string) {
	if l.w {
		panic(errors.Wrapf(errmsg.BorrowConflict, "%s while exclusively borrowed", op))
	}
}
