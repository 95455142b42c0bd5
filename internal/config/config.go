package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env                 string
	MongoURI            string
	MongoDB             string
	ServerAddr          string
	AppURL              string
	FrontendOrigin      string
	RateLimitBookings   int
	RateLimitContact    int
	RateLimitWindowSec  int
	RedisURL            string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	CacheTTLSeconds     int
	JWTSecret           string
	SessionTTLHours     int
	OAuthServerURL      string
	OAuthAppID          string
	StripeSecretKey     string
	StripeWebhookSecret string
	SMTPHost            string
	SMTPPort            int
	SMTPUser            string
	SMTPPassword        string
	EmailFrom           string
	AdminEmail          string
	AdminUser           string
	AdminPassword       string
	Timezone            *time.Location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func Load() (*Config, error) {
	loadDotEnv(".env")
	loc, err := time.LoadLocation(getEnv("TZ", "Europe/Zurich"))
	if err != nil {
		return nil, err
	}

	// An empty MONGO_URI is a supported mode: the server falls back to the
	// seeded in-memory store.
	mongoURI := getEnv("MONGO_URI", "")
	mongoDB := getEnv("MONGO_DB", "")
	if mongoDB == "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "beautyskin"
	}

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		MongoURI:            mongoURI,
		MongoDB:             mongoDB,
		ServerAddr:          getEnv("SERVER_ADDR", ":8080"),
		AppURL:              getEnv("APP_URL", "http://localhost:3000"),
		FrontendOrigin:      getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		RateLimitBookings:   getEnvInt("RATE_LIMIT_BOOKINGS", 10),
		RateLimitContact:    getEnvInt("RATE_LIMIT_CONTACT", 5),
		RateLimitWindowSec:  getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
		RedisURL:            getEnv("REDIS_URL", ""),
		RedisAddr:           getEnv("REDIS_ADDR", ""),
		RedisPassword:       getEnv("REDIS_PASSWORD", ""),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds:     getEnvInt("CACHE_TTL_SECONDS", 60),
		JWTSecret:           getEnv("JWT_SECRET", ""),
		SessionTTLHours:     getEnvInt("SESSION_TTL_HOURS", 24*365),
		OAuthServerURL:      getEnv("OAUTH_SERVER_URL", ""),
		OAuthAppID:          getEnv("VITE_APP_ID", ""),
		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		SMTPHost:            getEnv("SMTP_HOST", ""),
		SMTPPort:            getEnvInt("SMTP_PORT", 587),
		SMTPUser:            getEnv("SMTP_USER", ""),
		SMTPPassword:        getEnv("SMTP_PASSWORD", ""),
		EmailFrom:           getEnv("EMAIL_FROM", "noreply@scortanubeautyskin.ch"),
		AdminEmail:          getEnv("ADMIN_EMAIL", ""),
		AdminUser:           getEnv("ADMIN_USER", "admin"),
		AdminPassword:       getEnv("ADMIN_PASSWORD", ""),
		Timezone:            loc,
	}

	return cfg, nil
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// mongodb URIs sometimes include extra path segments; we only support the first one as db name.
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}

func loadDotEnv(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		_ = os.Setenv(key, val)
	}
}
