package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAllow_SlidingWindow(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	l := New(clock)

	var permitted []bool
	for range 4 {
		permitted = append(permitted, l.Allow("user-1", 3, time.Second).Permitted)
		clock.Advance(100 * time.Millisecond)
	}
	assert.Equal(t, []bool{true, true, true, false}, permitted)

	clock.Advance(time.Second)
	assert.True(t, l.Allow("user-1", 3, time.Second).Permitted)
}

func TestAllow_Remaining(t *testing.T) {
	t.Parallel()

	l := New(clockwork.NewFakeClock())

	assert.Equal(t, 2, l.Allow("k", 3, time.Minute).Remaining)
	assert.Equal(t, 1, l.Allow("k", 3, time.Minute).Remaining)
	assert.Equal(t, 0, l.Allow("k", 3, time.Minute).Remaining)

	d := l.Allow("k", 3, time.Minute)
	assert.False(t, d.Permitted)
	assert.Equal(t, 0, d.Remaining)
}

func TestAllow_DenialIsNotRecorded(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	l := New(clock)

	require.True(t, l.Allow("k", 1, time.Second).Permitted)
	clock.Advance(600 * time.Millisecond)
	d := l.Allow("k", 1, time.Second)
	require.False(t, d.Permitted)
	assert.Equal(t, 400*time.Millisecond, d.RetryAfter)

	// If the denial had been recorded the window would still be full here.
	clock.Advance(401 * time.Millisecond)
	assert.True(t, l.Allow("k", 1, time.Second).Permitted)
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	l := New(clockwork.NewFakeClock())
	require.True(t, l.Allow("a", 1, time.Minute).Permitted)
	require.False(t, l.Allow("a", 1, time.Minute).Permitted)
	assert.True(t, l.Allow("b", 1, time.Minute).Permitted)
}

func TestAllow_SweepsEmptyKeysAtMostEveryInterval(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	l := New(clock)

	for i := range 10 {
		l.Allow(fmt.Sprintf("idle-%d", i), 5, time.Second)
	}
	require.Equal(t, 10, l.Len())

	// Windows have emptied but the sweep interval has not passed.
	clock.Advance(time.Minute)
	l.Allow("active", 5, time.Second)
	assert.Equal(t, 11, l.Len())

	clock.Advance(SweepInterval)
	l.Allow("active", 5, time.Second)
	assert.Equal(t, 1, l.Len(), "idle keys are swept")
}

func TestAllow_ConcurrentSameKey(t *testing.T) {
	t.Parallel()

	l := New(clockwork.NewFakeClock())

	const callers = 50
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared", 10, time.Minute).Permitted {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, granted)
}
