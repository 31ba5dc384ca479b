package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the complete service configuration, read from the environment.
type Config struct {
	App       App
	Postgres  Postgres
	Redis     Redis
	Fixer     Fixer
	Kafka     Kafka
	RateLimit RateLimit
	Currency  Currency
}

type App struct {
	Host     string `env:"APP_HOST" env-default:"localhost"`
	Port     string `env:"APP_PORT" env-default:"8080"`
	LogLevel string `env:"APP_LOG_LEVEL" env-default:"info"`
}

type Postgres struct {
	Host         string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port         int    `env:"POSTGRES_PORT" env-default:"5432"`
	User         string `env:"POSTGRES_USER" env-default:"user"`
	Password     string `env:"POSTGRES_PASSWORD" env-default:"password"`
	DB           string `env:"POSTGRES_DB" env-default:"database"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" env-default:"8"`
}

// DSN returns the pgx connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.DB)
}

type Redis struct {
	Host         string        `env:"REDIS_HOST" env-default:"localhost"`
	Port         int           `env:"REDIS_PORT" env-default:"6379"`
	DB           int           `env:"REDIS_DB" env-default:"0"`
	Password     string        `env:"REDIS_PASSWORD" env-default:""`
	PoolSize     int           `env:"REDIS_POOL_SIZE" env-default:"10"`
	MinIdleConns int           `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
	DialTimeout  time.Duration `env:"REDIS_DIAL_TIMEOUT" env-default:"2s"`
	ReadTimeout  time.Duration `env:"REDIS_READ_TIMEOUT" env-default:"1s"`
	RatesTTL     time.Duration `env:"REDIS_RATES_TTL" env-default:"60m"`
}

// Addr returns host:port.
func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Fixer configures the external rate provider client.
type Fixer struct {
	BaseURL        string        `env:"FIXER_API_URL" env-default:"http://data.fixer.io/api"`
	APIKey         string        `env:"FIXER_API_KEY" env-default:""`
	ConnectTimeout time.Duration `env:"FIXER_CONNECT_TIMEOUT" env-default:"2s"`
	ReadTimeout    time.Duration `env:"FIXER_READ_TIMEOUT" env-default:"5s"`
	// One request per ThrottleInterval, free-tier quota.
	ThrottleInterval time.Duration `env:"FIXER_THROTTLE_INTERVAL" env-default:"2500ms"`
	ThrottleBurst    int           `env:"FIXER_THROTTLE_BURST" env-default:"1"`
}

type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `env:"KAFKA_TOPIC" env-default:"conversions"`

	// BatchTimeout bounds how long a partial batch waits before it is flushed.
	BatchTimeout time.Duration `env:"KAFKA_BATCH_TIMEOUT" env-default:"10ms"`
}

// RateLimit bounds inbound API traffic per client IP.
type RateLimit struct {
	Requests int64         `env:"API_RATE_LIMIT_REQUESTS" env-default:"100"`
	Period   time.Duration `env:"API_RATE_LIMIT_PERIOD" env-default:"1m"`
}

type Currency struct {
	// Strict rejects codes that are not active in the currency catalog.
	Strict    bool `env:"CURRENCY_STRICT" env-default:"false"`
	Bootstrap bool `env:"CURRENCY_BOOTSTRAP" env-default:"true"`
}

// Load reads variables from the env file at path (if it exists) into the
// process environment and parses the environment into a Config.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from env: %w", err)
	}
	return &cfg, nil
}
