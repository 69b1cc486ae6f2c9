package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config gom toàn bộ cấu hình đọc từ biến môi trường
type Config struct {
	Env          string `env:"ENV" envDefault:"dev"`
	Port         string `env:"PORT" envDefault:"3000"`
	JWTSecret    string `env:"JWT_SECRET" envDefault:"hikebook-secret-jwt-key-2025-super-secure"`
	SecureCookie bool   `env:"SECURE_COOKIE" envDefault:"false"`
	DebugRoutes  bool   `env:"DEBUG_ROUTES" envDefault:"false"`
	SeedOnStart  bool   `env:"SEED_ON_START" envDefault:"false"`

	// danh sách origin được gọi API kèm cookie
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
	API      APIConfig
}

type DatabaseConfig struct {
	Driver     string `env:"DB_DRIVER" envDefault:"postgres"`
	Host       string `env:"DB_HOST" envDefault:"localhost"`
	Port       string `env:"DB_PORT" envDefault:"5432"`
	User       string `env:"DB_USER" envDefault:"postgres"`
	Password   string `env:"DB_PASSWORD"`
	Name       string `env:"DB_NAME" envDefault:"hikebook"`
	SSLMode    string `env:"DB_SSLMODE" envDefault:"disable"`
	TimeZone   string `env:"DB_TIMEZONE" envDefault:"Asia/Jakarta"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"hikebook.db"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Username string `env:"REDIS_USER"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type APIConfig struct {
	RateLimitRPS   float64 `env:"API_RATE_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"API_RATE_BURST" envDefault:"10"`
}

// LoadEnv nạp file .env nếu có
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}
}

// Load nạp .env rồi parse Config từ biến môi trường
func Load() (*Config, error) {
	LoadEnv()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
