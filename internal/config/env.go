package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr        string
	GinMode        string
	LogLevel       string
	LogFormat      string
	StoreBaseURL   string
	StoreTimeout   time.Duration
	CatalogBaseURL string
	RedisAddr      string
	JWTSecret      string
	CORSOrigins    []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	storeBase := strings.TrimSpace(os.Getenv("STORE_BASE_URL"))
	if storeBase == "" {
		storeBase = "http://localhost:5000"
	}

	catalogBase := strings.TrimSpace(os.Getenv("CATALOG_BASE_URL"))
	if catalogBase == "" {
		catalogBase = "https://public.opendatasoft.com"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	timeout := 15 * time.Second
	if raw := strings.TrimSpace(os.Getenv("STORE_TIMEOUT_SECONDS")); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		LogLevel:       strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		LogFormat:      strings.TrimSpace(os.Getenv("LOG_FORMAT")),
		StoreBaseURL:   storeBase,
		StoreTimeout:   timeout,
		CatalogBaseURL: catalogBase,
		RedisAddr:      strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		JWTSecret:      secret,
		CORSOrigins:    origins,
	}
}
