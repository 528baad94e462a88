package memory

import (
    "context"
    "time"

    gocache "github.com/patrickmn/go-cache"

    "xeni/internal/health"
    "xeni/internal/ports"
)

// Cache is a process-local ports.ReportCache. Expired reports are swept by
// go-cache's janitor every cleanupInterval, so superseded keys do not pile up.
type Cache struct {
    c *gocache.Cache
}

var _ ports.ReportCache = (*Cache)(nil)

func NewCache(defaultTTL, cleanupInterval time.Duration) *Cache {
    return &Cache{c: gocache.New(defaultTTL, cleanupInterval)}
}

func (c *Cache) GetReport(ctx context.Context, key string) (health.Report, bool, error) {
    v, ok := c.c.Get(key)
    if !ok {
        return health.Report{}, false, nil
    }
    r, ok := v.(health.Report)
    return r, ok, nil
}

// SetReport stores r for ttl, or for the cache default when ttl is not positive.
func (c *Cache) SetReport(ctx context.Context, key string, r health.Report, ttl time.Duration) error {
    if ttl <= 0 {
        ttl = gocache.DefaultExpiration
    }
    c.c.Set(key, r, ttl)
    return nil
}

// Len counts stored entries, including expired ones the janitor has not swept yet.
func (c *Cache) Len() int { return c.c.ItemCount() }
