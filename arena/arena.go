package arena

import (
	"os"
	"unsafe"

	"github.com/infinivision/gaealist/constant"
	"github.com/infinivision/gaealist/errmsg"
	"github.com/nnsgmsone/damrey/logger"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func DefaultConfig() Config {
	return Config{
		LogWriter: os.Stderr,
		LogLevel:  logger.PANIC, // damrey emits a message only at or below the configured level
	}
}

func New[N any](cfg Config) *arena[N] {
	if cfg.LogWriter == nil {
		cfg.LogWriter = os.Stderr
	}
	log := logger.New(cfg.LogWriter, "arena")
	log.SetLevel(cfg.LogLevel)
	return &arena[N]{
		sz:  chunkSize[N](cfg.ChunkSize),
		log: log,
	}
}

func (a *arena[N]) Live() int {
	return a.n
}

func (a *arena[N]) Alloc(v N) Handle {
	var idx uint32

	switch {
	case len(a.fs) > 0:
		idx = a.fs[len(a.fs)-1]
		a.fs = a.fs[:len(a.fs)-1]
	default:
		if a.cnt == len(a.cs)*a.sz {
			a.cs = append(a.cs, make([]slot[N], a.sz))
		}
		idx = uint32(a.cnt)
		a.cnt++
	}
	s := a.slot(idx)
	s.live = true
	s.v = v
	a.n++
	return handle(idx, s.gen)
}

func (a *arena[N]) Get(h Handle) *N {
	s, err := a.lookup(h)
	if err != nil {
		a.log.Errorf("get %#x: %v\n", uint64(h), err)
		panic(errors.Wrapf(err, "get %#x", uint64(h)))
	}
	return &s.v
}

// Free reclaims the slot named by h and returns the value it held. The
// slot's generation moves on so every copy of h goes stale.
func (a *arena[N]) Free(h Handle) N {
	var zero N

	s, err := a.lookup(h)
	if err != nil {
		if errors.Is(err, errmsg.UseAfterFree) {
			err = errmsg.DoubleFree
		}
		a.log.Errorf("free %#x: %v\n", uint64(h), err)
		panic(errors.Wrapf(err, "free %#x", uint64(h)))
	}
	v := s.v
	s.v = zero
	s.live = false
	s.gen++
	a.n--
	a.fs = append(a.fs, index(h))
	return v
}

func (a *arena[N]) lookup(h Handle) (*slot[N], error) {
	if h == Nil {
		return nil, errmsg.NullHandle
	}
	idx := index(h)
	if int(idx) >= a.cnt {
		return nil, errmsg.UseAfterFree
	}
	s := a.slot(idx)
	if !s.live || s.gen != generation(h) {
		return nil, errmsg.UseAfterFree
	}
	return s, nil
}

func (a *arena[N]) slot(idx uint32) *slot[N] {
	return &a.cs[int(idx)/a.sz][int(idx)%a.sz]
}

func handle(idx, gen uint32) Handle {
	return Handle(uint64(gen)<<constant.GenOff | uint64(idx+1)&constant.IndexMask)
}

func index(h Handle) uint32 {
	return uint32(uint64(h)&constant.IndexMask) - 1
}

func generation(h Handle) uint32 {
	return uint32(uint64(h) >> constant.GenOff)
}

func chunkSize[N any](n int) int {
	if n <= 0 {
		var s slot[N]

		if sz := int(unsafe.Sizeof(s)); sz > 0 {
			n = unix.Getpagesize() / sz
		}
	}
	switch {
	case n < constant.MinChunkSize:
		return constant.MinChunkSize
	case n > constant.MaxChunkSize:
		return constant.MaxChunkSize
	}
	return n
}
