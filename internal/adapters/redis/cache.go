package redis

import (
    "context"
    "errors"
    "time"

    "github.com/goccy/go-json"
    goredis "github.com/redis/go-redis/v9"

    "xeni/internal/health"
    "xeni/internal/ports"
)

// Cache stores evaluated reports in redis so every replica shares them.
type Cache struct {
    client *goredis.Client
    prefix string
}

var _ ports.ReportCache = (*Cache)(nil)

func Connect(ctx context.Context, addr string) (*Cache, error) {
    client := goredis.NewClient(&goredis.Options{Addr: addr})
    if err := client.Ping(ctx).Err(); err != nil {
        _ = client.Close()
        return nil, err
    }
    return New(client), nil
}

func New(client *goredis.Client) *Cache { return &Cache{client: client, prefix: "xeni:"} }

func (c *Cache) GetReport(ctx context.Context, key string) (health.Report, bool, error) {
    var r health.Report
    raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
    if errors.Is(err, goredis.Nil) {
        return r, false, nil
    }
    if err != nil {
        return r, false, err
    }
    if err := json.Unmarshal(raw, &r); err != nil {
        return r, false, err
    }
    return r, true, nil
}

func (c *Cache) SetReport(ctx context.Context, key string, r health.Report, ttl time.Duration) error {
    raw, err := json.Marshal(r)
    if err != nil {
        return err
    }
    return c.client.Set(ctx, c.prefix+key, raw, ttl).Err()
}

func (c *Cache) Close() error { return c.client.Close() }
