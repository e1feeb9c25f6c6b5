package entity

import "time"

type Config struct {
	Port            string        `toml:"port"`
	ProxyURL        string        `toml:"proxy_url"`
	DefaultLanguage string        `toml:"default_language"`
	PollInterval    time.Duration `toml:"poll_interval"`
	PollWorkers     int           `toml:"poll_workers"`
	FetchTimeout    time.Duration `toml:"fetch_timeout"`
	// Empty means the in-process cache is used.
	RedisAddr string `toml:"redis_addr"`
	// In minutes, used when the export request has no cache_ttl.
	ExportCacheTTL int    `toml:"export_cache_ttl"`
	LogLevel       string `toml:"log_level"`
}
