package notify

import (
	"context"
	"sync"

	"github.com/MosaabBleik/pharmacy-service/internal/dashboard"
)

const DefaultFeedSize = 50

// Feed keeps the most recent notices in a fixed-size ring.
type Feed struct {
	mu    sync.Mutex
	buf   []dashboard.Notice
	next  int
	count int
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{buf: make([]dashboard.Notice, size)}
}

func (f *Feed) Notify(_ context.Context, n dashboard.Notice) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.buf[f.next] = n
	f.next = (f.next + 1) % len(f.buf)
	if f.count < len(f.buf) {
		f.count++
	}
}

// Recent returns up to limit notices, newest first. A limit <= 0 returns all
// retained notices.
func (f *Feed) Recent(limit int) []dashboard.Notice {
	f.mu.Lock()
	defer f.mu.Unlock()

	if limit <= 0 || limit > f.count {
		limit = f.count
	}
	out := make([]dashboard.Notice, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (f.next - i + len(f.buf)) % len(f.buf)
		out = append(out, f.buf[idx])
	}
	return out
}
