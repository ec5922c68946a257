package config

import (
	"log"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	DBPath       string
	SecretKey    string
	CookieSecure bool
	Timezone     string
}

// Load reads configuration from environment variables, with a local .env
// file as an optional overlay beneath them.
func Load() Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_PATH", filepath.Join("data", "comply.db"))
	viper.SetDefault("SECRET_KEY", "")
	viper.SetDefault("COOKIE_SECURE", false)
	viper.SetDefault("TZ", "UTC")
	viper.AutomaticEnv()

	cfg := Config{
		Port:         viper.GetString("PORT"),
		DBPath:       viper.GetString("DB_PATH"),
		SecretKey:    viper.GetString("SECRET_KEY"),
		CookieSecure: viper.GetBool("COOKIE_SECURE"),
		Timezone:     viper.GetString("TZ"),
	}

	if cfg.SecretKey == "" {
		log.Println("Warning: SECRET_KEY not set; session tokens will not survive restarts.")
	}
	return cfg
}
