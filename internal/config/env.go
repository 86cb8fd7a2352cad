package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	// GatewayBaseURL points at the downstream billing gateway that issues
	// control numbers for FIXED-bill services.
	GatewayBaseURL string
	GatewayAPIKey  string

	// StorageBaseURL is the public base for static guide/muhimu files; used
	// as the download fallback when no API file path is stored.
	StorageBaseURL string

	JWTSecret string

	CORSAllowedOrigins []string
}

func LoadEnv() Env {
	env := Env{
		AppAddr:        getenv("APP_ADDR", ":8080"),
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:         getenv("DB_USER", "root"),
		DBPass:         strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:         getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:         getenv("DB_NAME", "huduma_portal"),
		GatewayBaseURL: getenv("BILLING_GATEWAY_URL", "http://localhost:9090"),
		GatewayAPIKey:  strings.TrimSpace(os.Getenv("BILLING_GATEWAY_KEY")),
		StorageBaseURL: getenv("STORAGE_BASE_URL", "http://localhost:8080/storage"),
		JWTSecret:      getenv("JWT_SECRET", "super-secret-key-change-me"),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, o)
			}
		}
	}

	return env
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
