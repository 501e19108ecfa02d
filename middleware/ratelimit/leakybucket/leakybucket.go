package leakybucket

import (
	"sync"
	"time"

	"github.com/kanengo/church/middleware/ratelimit"
)

var (
	_ ratelimit.Limiter = (*LeakyBucket)(nil)
)

type Option func(lb *LeakyBucket)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(lb *LeakyBucket) {
		lb.now = now
	}
}

// LeakyBucket holds up to capacity tokens and regains one every fillRate.
type LeakyBucket struct {
	capacity        int64
	remainingTokens int64
	fillRate        time.Duration
	lastFilled      time.Time
	now             func() time.Time
	mu              sync.Mutex
}

func NewLeakyBucket(capacity int64, fillRate time.Duration, opts ...Option) *LeakyBucket {
	lb := &LeakyBucket{
		capacity:        capacity,
		remainingTokens: capacity,
		fillRate:        fillRate,
		now:             time.Now,
	}
	for _, o := range opts {
		o(lb)
	}
	lb.lastFilled = lb.now()
	return lb
}

func (lb *LeakyBucket) Allow() error {
	if !lb.TryAcquire(1) {
		return ratelimit.ErrTriggerLimit
	}
	return nil
}

func (lb *LeakyBucket) refill() {
	now := lb.now()
	newTokens := int64(now.Sub(lb.lastFilled) / lb.fillRate)
	if newTokens <= 0 {
		return
	}
	lb.remainingTokens += newTokens
	if lb.remainingTokens > lb.capacity {
		lb.remainingTokens = lb.capacity
	}
	// keep the partial interval so slow callers are not penalized
	lb.lastFilled = lb.lastFilled.Add(time.Duration(newTokens) * lb.fillRate)
}

func (lb *LeakyBucket) TryAcquire(n int64) bool {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.refill()
	if lb.remainingTokens >= n {
		lb.remainingTokens -= n
		return true
	}
	return false
}

func (lb *LeakyBucket) GetWaitTime(n int64) time.Duration {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.refill()
	if lb.remainingTokens >= n {
		return 0
	}
	neededTokens := n - lb.remainingTokens
	return time.Duration(neededTokens)*lb.fillRate - lb.now().Sub(lb.lastFilled)
}
