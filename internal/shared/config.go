package shared

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"jizzakh_hotels/internal/i18n"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string // devserver listen address
	MetricsAddr string
	BackendBase string
	BackendKey  string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	SessionKey  string
	DefaultLang i18n.Locale
	Workers     int // catalogcheck concurrency
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":3001"),
		MetricsAddr: env("METRICS_ADDR", ""),
		BackendBase: env("BACKEND_BASE_URL", "http://localhost:3001"),
		BackendKey:  env("BACKEND_API_KEY", ""),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		SessionKey:  env("SESSION_KEY", "default"),
		DefaultLang: i18n.Default,
		Workers:     atoi("AUDIT_WORKERS", 8),
	}
	if lang := os.Getenv("DEFAULT_LANG"); lang != "" {
		l, err := i18n.Parse(lang)
		if err != nil {
			log.Warn().Str("lang", lang).Msg("DEFAULT_LANG not supported, using en")
		} else {
			c.DefaultLang = l
		}
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
