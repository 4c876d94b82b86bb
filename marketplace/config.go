package marketplace

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// LoadConfig reads the TOML file at path, then applies a .env file (if any)
// and MARKET_* environment overrides on top of it.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Could not load .env file", slog.String("error", err.Error()))
	}

	cfg.applyEnv()
	cfg.setDefaults()
	return &cfg, cfg.Validate()
}

type Config struct {
	Log       LogConfig       `toml:"log"`
	Web       WebConfig       `toml:"web"`
	DB        DBConfig        `toml:"db"`
	Storage   StorageConfig   `toml:"storage"`
	Auth      AuthConfig      `toml:"auth"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	Redis     RedisConfig     `toml:"redis"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
	Queries   bool       `toml:"queries"`
}

type WebConfig struct {
	Host         string   `toml:"host"`
	Port         int      `toml:"port"`
	AllowOrigins []string `toml:"allow_origins"`
	Debug        bool     `toml:"debug"`
}

type DBConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	Database     string `toml:"database"`
	SSLMode      string `toml:"ssl_mode"`
	PoolSize     int    `toml:"pool_size"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	MaxLifetime  int    `toml:"max_lifetime"`
}

// StorageConfig points at an S3-compatible bucket holding card and deck images.
type StorageConfig struct {
	Key             string `toml:"key"`
	Secret          string `toml:"secret"`
	Region          string `toml:"region"`
	Bucket          string `toml:"bucket"`
	Endpoint        string `toml:"endpoint"`
	PublicURL       string `toml:"public_url"`
	DefaultImageURL string `toml:"default_image_url"`
	PathStyle       bool   `toml:"path_style"`
}

type AuthConfig struct {
	ClientID     string `toml:"client_id"`
	JWKSURL      string `toml:"jwks_url"`
	IssuerPrefix string `toml:"issuer_prefix"`
	IssuerSuffix string `toml:"issuer_suffix"`
	// VerifyTokens enables signature and audience checks on every request.
	// Login always verifies.
	VerifyTokens bool `toml:"verify_tokens"`
}

type RateLimitConfig struct {
	Enabled bool `toml:"enabled"`
	Limit   int  `toml:"limit"`
	Window  int  `toml:"window_seconds"`
}

// RedisConfig is optional; an empty Addr keeps rate limiting in memory.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

func (c *Config) applyEnv() {
	c.DB.Host = getEnvOrDefault("MARKET_DB_HOST", c.DB.Host)
	c.DB.Port = getEnvIntOrDefault("MARKET_DB_PORT", c.DB.Port)
	c.DB.User = getEnvOrDefault("MARKET_DB_USER", c.DB.User)
	c.DB.Password = getEnvOrDefault("MARKET_DB_PASSWORD", c.DB.Password)
	c.DB.Database = getEnvOrDefault("MARKET_DB_DATABASE", c.DB.Database)

	c.Storage.Key = getEnvOrDefault("MARKET_STORAGE_KEY", c.Storage.Key)
	c.Storage.Secret = getEnvOrDefault("MARKET_STORAGE_SECRET", c.Storage.Secret)
	c.Storage.Bucket = getEnvOrDefault("MARKET_STORAGE_BUCKET", c.Storage.Bucket)

	c.Auth.ClientID = getEnvOrDefault("MARKET_AUTH_CLIENT_ID", c.Auth.ClientID)
	c.Redis.Addr = getEnvOrDefault("MARKET_REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnvOrDefault("MARKET_REDIS_PASSWORD", c.Redis.Password)
}

func (c *Config) setDefaults() {
	if c.Web.Host == "" {
		c.Web.Host = "0.0.0.0"
	}
	if c.Web.Port == 0 {
		c.Web.Port = 8080
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.DB.SSLMode == "" {
		c.DB.SSLMode = "disable"
	}
	if c.Auth.JWKSURL == "" {
		c.Auth.JWKSURL = "https://login.microsoftonline.com/common/discovery/v2.0/keys"
	}
	if c.Auth.IssuerPrefix == "" {
		c.Auth.IssuerPrefix = "https://login.microsoftonline.com/"
	}
	if c.Auth.IssuerSuffix == "" {
		c.Auth.IssuerSuffix = "/v2.0"
	}
	if c.RateLimit.Limit == 0 {
		c.RateLimit.Limit = 120
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = 60
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.DB.Host == "" {
		errs = append(errs, errors.New("db.host is required"))
	}
	if c.DB.Database == "" {
		errs = append(errs, errors.New("db.database is required"))
	}
	if c.Storage.Bucket == "" {
		errs = append(errs, errors.New("storage.bucket is required"))
	}
	if c.Auth.ClientID == "" {
		errs = append(errs, errors.New("auth.client_id is required"))
	}
	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("Ignoring non-numeric environment value",
			slog.String("key", key),
			slog.String("value", value))
		return defaultValue
	}
	return n
}
