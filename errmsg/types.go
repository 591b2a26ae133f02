package errmsg

import "github.com/pkg/errors"

var (
	NullHandle     = errors.New("null handle")
	DoubleFree     = errors.New("double free")
	UseAfterFree   = errors.New("use after free")
	BorrowConflict = errors.New("borrow conflict")
)
