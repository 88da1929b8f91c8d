package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Service-wide counters. Incremented by the chat and vendor services,
// reported on /api/stats.
var (
	ChatRequests    Counter
	ChatToolCalls   Counter
	VendorFallbacks Counter
	OrdersPlaced    Counter
)

func Snapshot() map[string]uint64 {
	return map[string]uint64{
		"chat_requests":    ChatRequests.Load(),
		"chat_tool_calls":  ChatToolCalls.Load(),
		"vendor_fallbacks": VendorFallbacks.Load(),
		"orders_placed":    OrdersPlaced.Load(),
	}
}
