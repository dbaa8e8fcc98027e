package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowConsumesBurst(t *testing.T) {
	t.Parallel()

	l := New(3, 0.0001) // effectively no refill within the test window

	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.False(t, l.Allow(), "bucket should be empty after burst")
}

func TestRefillRestoresTokens(t *testing.T) {
	t.Parallel()

	l := New(1, 100) // 1 token per 10ms

	assert.True(t, l.Allow())
	assert.False(t, l.Allow())

	time.Sleep(30 * time.Millisecond)
	assert.True(t, l.Allow(), "token should have refilled")
}

func TestWaitEventuallyProceeds(t *testing.T) {
	t.Parallel()

	l := New(1, 50) // 1 token per 20ms
	assert.True(t, l.Allow())

	start := time.Now()
	l.Wait()
	assert.Less(t, time.Since(start), time.Second)
}

func TestAvailableNeverExceedsBurst(t *testing.T) {
	t.Parallel()

	l := New(2, 1000)
	time.Sleep(20 * time.Millisecond)
	assert.LessOrEqual(t, l.Available(), 2.0)
}

func TestConcurrentAllow(t *testing.T) {
	t.Parallel()

	l := New(50, 0.0001)

	var wg sync.WaitGroup
	allowed := make(chan bool, 100)
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- l.Allow()
		}()
	}
	wg.Wait()
	close(allowed)

	count := 0
	for ok := range allowed {
		if ok {
			count++
		}
	}
	assert.Equal(t, 50, count, "exactly the burst capacity should pass")
}
