package arena

import (
	"io"

	"github.com/nnsgmsone/damrey/logger"
)

const (
	Nil Handle = 0
)

// Handle names a slot and the generation it was allocated in. The zero
// Handle is Nil.
type Handle uint64

type Arena[N any] interface {
	Live() int
	Alloc(N) Handle
	Get(Handle) *N
	Free(Handle) N
}

type Config struct {
	ChunkSize int // nodes per chunk, 0 means derive from the page size
	LogWriter io.Writer
	LogLevel  int
}

type slot[N any] struct {
	gen  uint32
	live bool
	v    N
}

type arena[N any] struct {
	n   int // live slots
	cnt int // slots ever handed out
	sz  int // chunk size
	fs  []uint32
	cs  [][]slot[N]
	log logger.Log
}
