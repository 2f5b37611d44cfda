package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Metrics   MetricsConfig
	Contracts ContractsConfig
	Outbox    OutboxConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location,Idempotent-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret              string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer              string        `envconfig:"JWT_ISSUER" default:"rental-contracts"`
	AccessTokenDuration time.Duration `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"24h"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

type ContractsConfig struct {
	IdempotencyTTL time.Duration `envconfig:"CONTRACT_IDEMPOTENCY_TTL" default:"24h"`
	// Calendar used to pick the year of a new contract number.
	NumberTimeZone string `envconfig:"CONTRACT_NUMBER_TIMEZONE" default:"UTC"`
}

type OutboxConfig struct {
	Enabled     bool          `envconfig:"OUTBOX_ENABLED" default:"true"`
	Interval    time.Duration `envconfig:"OUTBOX_INTERVAL" default:"2s"`
	BatchSize   int           `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts int           `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c ContractsConfig) NumberLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.NumberTimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid CONTRACT_NUMBER_TIMEZONE %q: %w", c.NumberTimeZone, err)
	}
	return loc, nil
}

func (c OutboxConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("OUTBOX_INTERVAL must be positive, got %s", c.Interval)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("OUTBOX_BATCH_SIZE must be positive, got %d", c.BatchSize)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("OUTBOX_MAX_ATTEMPTS must be at least 1, got %d", c.MaxAttempts)
	}
	return nil
}

func (c ContractsConfig) Validate() error {
	if c.IdempotencyTTL <= 0 {
		return fmt.Errorf("CONTRACT_IDEMPOTENCY_TTL must be positive, got %s", c.IdempotencyTTL)
	}
	_, err := c.NumberLocation()
	return err
}

// Validate rejects settings that would only fail later at runtime.
func (c Config) Validate() error {
	if err := c.Contracts.Validate(); err != nil {
		return err
	}
	return c.Outbox.Validate()
}

// LoadConfig reads an optional .env file before processing the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:              "test-secret-key-for-contracts",
			Issuer:              "rental-contracts",
			AccessTokenDuration: time.Hour,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Contracts: ContractsConfig{
			IdempotencyTTL: 24 * time.Hour,
			NumberTimeZone: "UTC",
		},
		Outbox: OutboxConfig{
			Enabled:     false, // e2e tests drive RelayOnce directly
			Interval:    100 * time.Millisecond,
			BatchSize:   10,
			MaxAttempts: 3,
		},
	}
}
