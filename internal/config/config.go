package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Session   SessionConfig
	Checkout  CheckoutConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
	// PublicBaseURL is the externally reachable storefront origin, used to
	// build QR payloads for store links.
	PublicBaseURL string
}

type SessionConfig struct {
	Secret string
	Expiry time.Duration
	// LoginDelay simulates the latency of a real identity provider.
	LoginDelay time.Duration
}

type CheckoutConfig struct {
	// ShippingCost is the flat home-delivery fee in whole kronor.
	ShippingCost int
	// ConfirmDelay simulates payment processing latency.
	ConfirmDelay time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:3000")
	viper.SetDefault("SESSION_SECRET", "dev-session-secret")
	viper.SetDefault("SESSION_EXPIRY_MINUTES", 720)
	viper.SetDefault("LOGIN_DELAY_MS", 500)
	viper.SetDefault("SHIPPING_COST", 49)
	viper.SetDefault("CONFIRM_DELAY_MS", 1500)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:          viper.GetString("SERVER_PORT"),
			Env:           viper.GetString("SERVER_ENV"),
			PublicBaseURL: viper.GetString("PUBLIC_BASE_URL"),
		},
		Session: SessionConfig{
			Secret:     viper.GetString("SESSION_SECRET"),
			Expiry:     time.Duration(viper.GetInt("SESSION_EXPIRY_MINUTES")) * time.Minute,
			LoginDelay: time.Duration(viper.GetInt("LOGIN_DELAY_MS")) * time.Millisecond,
		},
		Checkout: CheckoutConfig{
			ShippingCost: viper.GetInt("SHIPPING_COST"),
			ConfirmDelay: time.Duration(viper.GetInt("CONFIRM_DELAY_MS")) * time.Millisecond,
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerWindow: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Window:            time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
	}
}
