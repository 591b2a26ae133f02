package arena

import (
	"bytes"
	"io"
	"testing"

	"github.com/infinivision/gaealist/constant"
	"github.com/infinivision/gaealist/errmsg"
	"github.com/nnsgmsone/damrey/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(w io.Writer) Config {
	return Config{ChunkSize: constant.MinChunkSize, LogWriter: w, LogLevel: logger.PANIC}
}

func panicErr(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	f()
	return nil
}

func TestAllocGetFree(t *testing.T) {
	a := New[string](testConfig(io.Discard))

	h1 := a.Alloc("a")
	h2 := a.Alloc("b")
	require.NotEqual(t, Nil, h1)
	require.NotEqual(t, h1, h2)
	assert.Equal(t, 2, a.Live())

	assert.Equal(t, "a", *a.Get(h1))
	*a.Get(h2) = "c"
	assert.Equal(t, "c", *a.Get(h2))

	assert.Equal(t, "a", a.Free(h1))
	assert.Equal(t, 1, a.Live())
	assert.Equal(t, "c", a.Free(h2))
	assert.Equal(t, 0, a.Live())
}

func TestReusedSlotRejectsStaleHandle(t *testing.T) {
	a := New[int](testConfig(io.Discard))

	h1 := a.Alloc(1)
	a.Free(h1)
	h2 := a.Alloc(2)
	require.Equal(t, index(h1), index(h2))
	require.NotEqual(t, h1, h2)

	err := panicErr(t, func() { a.Get(h1) })
	assert.True(t, errors.Is(err, errmsg.UseAfterFree))
	assert.Equal(t, 2, *a.Get(h2))
	assert.Equal(t, 1, a.Live())
}

func TestDoubleFree(t *testing.T) {
	var buf bytes.Buffer

	a := New[int](testConfig(&buf))
	h := a.Alloc(7)
	require.Equal(t, 7, a.Free(h))

	err := panicErr(t, func() { a.Free(h) })
	assert.True(t, errors.Is(err, errmsg.DoubleFree))
	assert.Contains(t, buf.String(), "ERROR")
	assert.Equal(t, 0, a.Live())
}

func TestNilHandle(t *testing.T) {
	a := New[int](testConfig(io.Discard))

	err := panicErr(t, func() { a.Get(Nil) })
	assert.True(t, errors.Is(err, errmsg.NullHandle))
	err = panicErr(t, func() { a.Free(Nil) })
	assert.True(t, errors.Is(err, errmsg.NullHandle))
}

func TestUnknownHandle(t *testing.T) {
	a := New[int](testConfig(io.Discard))
	a.Alloc(1)

	err := panicErr(t, func() { a.Get(handle(100, 0)) })
	assert.True(t, errors.Is(err, errmsg.UseAfterFree))
}

func TestGrowthKeepsAddresses(t *testing.T) {
	a := New[int](testConfig(io.Discard))

	first := a.Alloc(0)
	p := a.Get(first)
	hs := []Handle{first}
	for i := 1; i < 10*constant.MinChunkSize; i++ {
		hs = append(hs, a.Alloc(i))
	}
	require.Same(t, p, a.Get(first))
	for i, h := range hs {
		require.Equal(t, i, *a.Get(h))
	}
	for _, h := range hs {
		a.Free(h)
	}
	assert.Equal(t, 0, a.Live())
}

func TestFreedValueIsCleared(t *testing.T) {
	a := New[*int](testConfig(io.Discard))

	v := 3
	h := a.Alloc(&v)
	a.Free(h)
	assert.Nil(t, a.slot(index(h)).v)
}

func TestChunkSize(t *testing.T) {
	assert.Equal(t, constant.MinChunkSize, chunkSize[int](1))
	assert.Equal(t, constant.MaxChunkSize, chunkSize[int](constant.MaxChunkSize+1))
	assert.Equal(t, 100, chunkSize[int](100))

	n := chunkSize[[64]byte](0)
	assert.GreaterOrEqual(t, n, constant.MinChunkSize)
	assert.LessOrEqual(t, n, constant.MaxChunkSize)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NotNil(t, cfg.LogWriter)
	assert.Equal(t, logger.PANIC, cfg.LogLevel)

	a := New[int](Config{})
	assert.GreaterOrEqual(t, a.sz, constant.MinChunkSize)
}
