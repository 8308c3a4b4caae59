package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Log     LogConfig
	Shell   ShellConfig
	Codec   CodecConfig
	Metrics MetricsConfig
	Webhook WebhookConfig
	Trace   TraceConfig
}

type LogConfig struct {
	Path        string
	PostgresDSN string
	Redis       RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Stream   string
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

type ShellConfig struct {
	StartDir string
	Theme    string
}

type CodecConfig struct {
	JPEGQuality int
}

type MetricsConfig struct {
	Addr string
}

type WebhookConfig struct {
	URL         string
	Secret      string
	Timeout     time.Duration
	MaxAttempts int
}

type TraceConfig struct {
	Exporter     string
	OTLPEndpoint string
	OTLPInsecure bool
}

// Load reads the environment. With nothing set it yields the plain
// behavior: conversion.log in the working directory and no extra sinks.
func Load() Config {
	return Config{
		Log: LogConfig{
			Path:        env("IMGCONVERT_LOG_PATH", "conversion.log"),
			PostgresDSN: env("IMGCONVERT_LOG_POSTGRES_DSN", ""),
			Redis: RedisConfig{
				Addr:     env("IMGCONVERT_LOG_REDIS_ADDR", ""),
				Password: env("IMGCONVERT_LOG_REDIS_PASSWORD", ""),
				DB:       envInt("IMGCONVERT_LOG_REDIS_DB", 0),
				Stream:   env("IMGCONVERT_LOG_REDIS_STREAM", "imgconvert:log"),
			},
		},
		Shell: ShellConfig{
			StartDir: env("IMGCONVERT_START_DIR", workingDir()),
			Theme:    strings.ToLower(env("IMGCONVERT_THEME", "charm")),
		},
		Codec: CodecConfig{
			JPEGQuality: envInt("IMGCONVERT_JPEG_QUALITY", 75),
		},
		Metrics: MetricsConfig{
			Addr: env("IMGCONVERT_METRICS_ADDR", ""),
		},
		Webhook: WebhookConfig{
			URL:         env("IMGCONVERT_WEBHOOK_URL", ""),
			Secret:      env("IMGCONVERT_WEBHOOK_SECRET", ""),
			Timeout:     envDuration("IMGCONVERT_WEBHOOK_TIMEOUT", 10*time.Second),
			MaxAttempts: envInt("IMGCONVERT_WEBHOOK_MAX_ATTEMPTS", 3),
		},
		Trace: TraceConfig{
			Exporter:     env("OTEL_TRACES_EXPORTER", "none"),
			OTLPEndpoint: env("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			OTLPInsecure: envBool("OTEL_EXPORTER_OTLP_INSECURE", false),
		},
	}
}

func workingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

func env(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	value := env(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envBool(key string, fallback bool) bool {
	value := env(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := env(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
