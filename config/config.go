package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	DBPath       string
	JWTSecret    string
	AdminToken   string
	AIEndpoint   string
	AIAPIKey     string
	AITimeoutSec int
	KBDomains    string
	KBMaxBytes   int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:         get("PORT", "8080"),
		DBPath:       get("DB_PATH", "farmassist.db"),
		JWTSecret:    get("JWT_SECRET", "devsecret"),
		AdminToken:   get("ADMIN_TOKEN", ""),
		AIEndpoint:   get("AI_ENDPOINT", "https://api-inference.huggingface.co/models/meta-llama/Llama-3.2-3B-Instruct"),
		AIAPIKey:     get("AI_API_KEY", ""),
		AITimeoutSec: getInt("AI_TIMEOUT_SEC", 25),
		KBDomains:    get("KB_ALLOWED_DOMAINS", ""),
		KBMaxBytes:   getInt("KB_MAX_BYTES_PER_PAGE", 1500000),
	}
	log.Printf("[cfg] port=%s db=%s ai=%s key_set=%t timeout=%ds", cfg.Port, cfg.DBPath, cfg.AIEndpoint, cfg.AIAPIKey != "", cfg.AITimeoutSec)
	return cfg
}
