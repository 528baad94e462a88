package config

import (
    "errors"
    "fmt"
    "strings"
    "time"

    "github.com/spf13/viper"
)

// ErrNoDatabaseURL is returned alongside an otherwise usable Config.
var ErrNoDatabaseURL = errors.New("DATABASE_URL not set")

type Config struct {
    Env           string
    ListenAddr    string
    DatabaseURL   string
    HealthWorkers int
    PollInterval  time.Duration
    RedisAddr     string
    CacheTTL      time.Duration
    KafkaBrokers  []string
    KafkaTopic    string
    CatalogPath   string
    FixturesPath  string
    CORSOrigins   []string
    LogLevel      string
}

// Load reads configuration from the environment and, when CONFIG_FILE is set,
// from that YAML file. Environment variables win over the file.
func Load() (Config, error) {
    v := viper.New()
    v.AutomaticEnv()
    v.SetDefault("APP_ENV", "development")
    v.SetDefault("LISTEN_ADDR", ":8080")
    v.SetDefault("HEALTH_WORKERS", 0)
    v.SetDefault("POLL_INTERVAL", "500ms")
    v.SetDefault("CACHE_TTL", "10m")
    v.SetDefault("KAFKA_TOPIC", "case-health")
    v.SetDefault("CORS_ORIGINS", "*")
    v.SetDefault("LOG_LEVEL", "info")

    if path := v.GetString("CONFIG_FILE"); path != "" {
        v.SetConfigFile(path)
        if err := v.ReadInConfig(); err != nil {
            return Config{}, fmt.Errorf("read config %s: %w", path, err)
        }
    }

    cfg := Config{
        Env:           v.GetString("APP_ENV"),
        ListenAddr:    v.GetString("LISTEN_ADDR"),
        DatabaseURL:   v.GetString("DATABASE_URL"),
        HealthWorkers: v.GetInt("HEALTH_WORKERS"),
        PollInterval:  v.GetDuration("POLL_INTERVAL"),
        RedisAddr:     v.GetString("REDIS_ADDR"),
        CacheTTL:      v.GetDuration("CACHE_TTL"),
        KafkaBrokers:  splitList(v.GetString("KAFKA_BROKERS")),
        KafkaTopic:    v.GetString("KAFKA_TOPIC"),
        CatalogPath:   v.GetString("CATALOG_PATH"),
        FixturesPath:  v.GetString("FIXTURES_PATH"),
        CORSOrigins:   splitList(v.GetString("CORS_ORIGINS")),
        LogLevel:      v.GetString("LOG_LEVEL"),
    }
    if cfg.PollInterval <= 0 {
        cfg.PollInterval = 500 * time.Millisecond
    }
    if cfg.DatabaseURL == "" {
        // Not fatal: the server falls back to the in-memory store.
        return cfg, ErrNoDatabaseURL
    }
    return cfg, nil
}

func splitList(s string) []string {
    var out []string
    for _, p := range strings.Split(s, ",") {
        if p = strings.TrimSpace(p); p != "" {
            out = append(out, p)
        }
    }
    return out
}
