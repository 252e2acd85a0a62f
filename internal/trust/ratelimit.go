package trust

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type senderEntry struct {
	lim *rate.Limiter
	ts  time.Time
}

// SenderLimiter is a per-user in-process burst limiter, checked ahead of the
// DB daily quota so a misbehaving client never reaches the database.
type SenderLimiter struct {
	mu   sync.Mutex
	m    map[uuid.UUID]*senderEntry
	r    rate.Limit
	b    int
	ttl  time.Duration
	stop chan struct{}
}

func NewSenderLimiter(r rate.Limit, burst int, ttl time.Duration) *SenderLimiter {
	l := &SenderLimiter{
		m:    make(map[uuid.UUID]*senderEntry),
		r:    r,
		b:    burst,
		ttl:  ttl,
		stop: make(chan struct{}),
	}
	go l.gc()
	return l
}

func (l *SenderLimiter) Allow(userID uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.m[userID]
	if !ok {
		e = &senderEntry{lim: rate.NewLimiter(l.r, l.b)}
		l.m[userID] = e
	}
	e.ts = time.Now()
	return e.lim.Allow()
}

func (l *SenderLimiter) gc() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			now := time.Now()
			l.mu.Lock()
			for k, v := range l.m {
				if now.Sub(v.ts) > l.ttl {
					delete(l.m, k)
				}
			}
			l.mu.Unlock()
		}
	}
}

func (l *SenderLimiter) Stop() {
	close(l.stop)
}
