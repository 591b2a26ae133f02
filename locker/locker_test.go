package locker

import (
	"testing"

	"github.com/infinivision/gaealist/errmsg"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conflict(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a borrow conflict")
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, errmsg.BorrowConflict))
	}()
	f()
}

func TestSharedBorrowsCoexist(t *testing.T) {
	l := New()
	l.RLock()
	l.RLock()
	l.RCheck("peek")
	conflict(t, func() { l.Lock() })
	conflict(t, func() { l.Check("push") })
	l.RUnlock()
	l.RUnlock()
	l.Check("push")
}

func TestExclusiveBorrow(t *testing.T) {
	l := New()
	l.Lock()
	conflict(t, func() { l.Lock() })
	conflict(t, func() { l.RLock() })
	conflict(t, func() { l.RCheck("peek") })
	conflict(t, func() { l.Check("pop") })
	l.Unlock()
	l.RLock()
	l.RUnlock()
}

func TestUnbalancedRelease(t *testing.T) {
	l := New()
	conflict(t, func() { l.Unlock() })
	conflict(t, func() { l.RUnlock() })
}
