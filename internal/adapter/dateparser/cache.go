package dateparser

import (
	"time"

	"github.com/couchcryptid/launch-data-etl/internal/domain"
	"github.com/couchcryptid/launch-data-etl/internal/observability"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedDecoder wraps a DateDecoder with an in-memory LRU cache. Chronology
// pages repeat the same date strings for launches on the same day, and the
// natural-language parser is the slowest step of normalization.
type CachedDecoder struct {
	inner   domain.DateDecoder
	cache   *lru.Cache[string, time.Time]
	metrics *observability.Metrics
}

// NewCachedDecoder creates a cache decorator around a decoder.
func NewCachedDecoder(inner domain.DateDecoder, maxEntries int, metrics *observability.Metrics) (*CachedDecoder, error) {
	cache, err := lru.New[string, time.Time](maxEntries)
	if err != nil {
		return nil, err
	}
	return &CachedDecoder{inner: inner, cache: cache, metrics: metrics}, nil
}

func (c *CachedDecoder) DecodeDate(value string) (time.Time, error) {
	if t, ok := c.cache.Get(value); ok {
		c.metrics.DateCache.WithLabelValues("hit").Inc()
		return t, nil
	}
	c.metrics.DateCache.WithLabelValues("miss").Inc()

	t, err := c.inner.DecodeDate(value)
	if err != nil {
		// Failures are not cached; they abort the batch anyway.
		return t, err
	}
	c.cache.Add(value, t)
	return t, nil
}

// Len returns the number of cached dates.
func (c *CachedDecoder) Len() int {
	return c.cache.Len()
}
