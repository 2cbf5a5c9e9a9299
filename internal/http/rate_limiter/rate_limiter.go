package rate_limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether the client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps a token bucket per client in process memory.
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
}

// NewMemoryLimiter allows requests per window with the given burst.
func NewMemoryLimiter(requests int, window time.Duration, burst int) *MemoryLimiter {
	if requests < 1 {
		requests = 1
	}
	if burst < 1 {
		burst = 1
	}
	return &MemoryLimiter{
		visitors: make(map[string]*clientLimiter),
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    burst,
		idleTTL:  5 * time.Minute,
		now:      time.Now,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	return m.visitor(key).AllowN(m.now(), 1), nil
}

func (m *MemoryLimiter) visitor(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, exists := m.visitors[key]
	if !exists {
		limiter := rate.NewLimiter(m.limit, m.burst)
		m.visitors[key] = &clientLimiter{limiter, m.now()}
		return limiter
	}

	v.lastSeen = m.now()
	return v.limiter
}

// StartCleanupLoop drops idle visitors every interval until ctx is done.
func (m *MemoryLimiter) StartCleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.cleanup()
		}
	}
}

func (m *MemoryLimiter) cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, v := range m.visitors {
		if m.now().Sub(v.lastSeen) > m.idleTTL {
			delete(m.visitors, key)
		}
	}
}
