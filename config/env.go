package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig menampung semua variabel konfigurasi aplikasi.
type AppConfig struct {
	Port          string
	Env           string
	APIBaseURL    string
	SessionSecret string
	CloudinaryURL string
	PageSize      int
}

// Load memuat konfigurasi dari file .env atau environment variables.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:          getEnv("PORT", "3000"),
		Env:           getEnv("ENVIRONMENT", "development"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://127.0.0.1:8000/api"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		PageSize:      getEnvInt("PAGE_SIZE", 8),
	}

	// Secret sesi wajib di luar development; kunci paseto diturunkan darinya.
	if cfg.SessionSecret == "" {
		if cfg.Env != "development" {
			log.Fatal("SESSION_SECRET must be set outside development!")
		}
		log.Println("SESSION_SECRET not set, using development default")
		cfg.SessionSecret = "udoo-development-secret"
	}

	return cfg
}

// IsProduction melaporkan apakah aplikasi berjalan dalam mode produksi.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
		log.Printf("invalid value for %s, using default %d", key, defaultValue)
	}
	return defaultValue
}
