package leakybucket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kanengo/church/middleware/ratelimit"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestLeakyBucket(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	bucket := NewLeakyBucket(10, 100*time.Millisecond, WithClock(clock.Now))

	acquired := 0
	for i := 0; i < 20; i++ {
		if bucket.TryAcquire(1) {
			acquired++
		}
	}
	assert.Equal(t, 10, acquired)
	assert.ErrorIs(t, bucket.Allow(), ratelimit.ErrTriggerLimit)

	clock.Advance(250 * time.Millisecond)

	acquired = 0
	for i := 0; i < 20; i++ {
		if bucket.TryAcquire(1) {
			acquired++
		}
	}
	assert.Equal(t, 2, acquired)

	// the leftover 50ms counts towards the next token
	clock.Advance(50 * time.Millisecond)
	assert.NoError(t, bucket.Allow())
}

func TestLeakyBucketCapacity(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	bucket := NewLeakyBucket(3, time.Second, WithClock(clock.Now))

	clock.Advance(time.Hour)
	assert.True(t, bucket.TryAcquire(3))
	assert.False(t, bucket.TryAcquire(1))
}

func TestLeakyBucketWaitTime(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	bucket := NewLeakyBucket(2, time.Second, WithClock(clock.Now))

	assert.Equal(t, time.Duration(0), bucket.GetWaitTime(2))
	assert.NoError(t, bucket.Allow())
	assert.NoError(t, bucket.Allow())
	assert.Equal(t, 3*time.Second, bucket.GetWaitTime(3))

	clock.Advance(400 * time.Millisecond)
	assert.Equal(t, 600*time.Millisecond, bucket.GetWaitTime(1))
}
