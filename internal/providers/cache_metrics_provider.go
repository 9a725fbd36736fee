package providers

import (
	"laleme/internal/structures"
	"strings"
)

// MetricsCacheProvider counts hits and misses per derived view. The view is
// the key prefix up to the first colon ("heatmap", "calendar", "ranking").
type MetricsCacheProvider struct {
	inner   CacheProviderInterface
	metrics MetricsProviderInterface
}

func cacheView(key string) string {
	view, _, found := strings.Cut(key, ":")
	if !found || view == "" {
		return "other"
	}
	return view
}

func (c *MetricsCacheProvider) Get(key string) ([]byte, bool) {
	val, ok := c.inner.Get(key)
	if ok {
		c.metrics.IncCacheHits(cacheView(key))
	} else {
		c.metrics.IncCacheMisses(cacheView(key))
	}
	return val, ok
}

func (c *MetricsCacheProvider) Set(key string, value []byte) {
	c.inner.Set(key, value)
}

// NewInstrumentedCacheProvider wraps the cache with hit/miss counters. A
// disabled cache is returned bare so every request is not counted as a miss.
func NewInstrumentedCacheProvider(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) CacheProviderInterface {
	inner := NewCacheProvider(conf, logger)
	if _, disabled := inner.(*noopCache); disabled {
		return inner
	}
	return &MetricsCacheProvider{
		inner:   inner,
		metrics: metrics,
	}
}
