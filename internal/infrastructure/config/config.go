package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT       JWTConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Directory DirectoryConfig
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET"`
	CookieName string        `env:"JWT_COOKIE_NAME, default=carboncell"`
	TTL        time.Duration `env:"JWT_TTL,         default=24h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=user_auth"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type DirectoryConfig struct {
	BaseURL  string        `env:"DIRECTORY_BASE_URL,  default=https://api.publicapis.org/entries"`
	Timeout  time.Duration `env:"DIRECTORY_TIMEOUT,   default=10s"`
	CacheTTL time.Duration `env:"DIRECTORY_CACHE_TTL, default=5m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
