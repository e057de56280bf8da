package estimator

import (
	"context"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"brme/internal/temporal"
)

// Cached memoizes successful drafts of another estimator.
// Entries are keyed by text, reference minute and timezone, so a draft is only
// reused while "now" still points at the same minute.
type Cached struct {
	next  temporal.Estimator
	store *gocache.Cache
}

// NewCached wraps next with a cache whose entries live for ttl.
func NewCached(next temporal.Estimator, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		store: gocache.New(ttl, 2*ttl),
	}
}

// Estimate implements temporal.Estimator.
func (c *Cached) Estimate(ctx context.Context, text string, ref temporal.Reference) (temporal.DraftEvent, error) {
	key := cacheKey(text, ref)
	if v, ok := c.store.Get(key); ok {
		return v.(temporal.DraftEvent), nil
	}

	draft, err := c.next.Estimate(ctx, text, ref)
	if err != nil {
		return temporal.DraftEvent{}, err
	}
	c.store.SetDefault(key, draft)
	return draft, nil
}

// Len returns the number of live entries.
func (c *Cached) Len() int {
	return c.store.ItemCount()
}

func cacheKey(text string, ref temporal.Reference) string {
	minute := ref.Now.Truncate(time.Minute).Unix()
	return strings.Join([]string{
		text,
		strconv.FormatInt(minute, 10),
		ref.TimezoneOffset,
		ref.TimezoneName,
	}, "|")
}
