package telegram

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	maxTrackedChats = 10_000
	chatIdleTTL     = 30 * time.Minute
)

// chatLimiter keeps one token bucket per chat. Idle chats expire from the LRU.
type chatLimiter struct {
	mu      sync.Mutex
	perMin  int
	buckets *expirable.LRU[int64, *rate.Limiter]
}

// newChatLimiter returns nil when perMin is not positive, which disables limiting.
func newChatLimiter(perMin int) *chatLimiter {
	if perMin <= 0 {
		return nil
	}
	return &chatLimiter{
		perMin:  perMin,
		buckets: expirable.NewLRU[int64, *rate.Limiter](maxTrackedChats, nil, chatIdleTTL),
	}
}

func (c *chatLimiter) Allow(chatID int64) bool {
	if c == nil {
		return true
	}

	c.mu.Lock()
	lim, ok := c.buckets.Get(chatID)
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Minute/time.Duration(c.perMin)), c.perMin)
		c.buckets.Add(chatID, lim)
	}
	c.mu.Unlock()

	return lim.Allow()
}
