package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	SigningKey      string
	ExpirationHours int
}

// TTL returns the token lifetime, which is also how long an idle session is kept.
func (c JWTConfig) TTL() time.Duration {
	if c.ExpirationHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.ExpirationHours) * time.Hour
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// PortalConfig holds the settings of the mocked portal backend.
type PortalConfig struct {
	// LoginDelay and RegisterDelay simulate the round trip of a real auth backend.
	LoginDelay    time.Duration
	RegisterDelay time.Duration
	// OrderDelay simulates submitting a new service order.
	OrderDelay time.Duration
	// SeedDemoOrders fills every new session with the two demonstration orders.
	SeedDemoOrders bool
	// CatalogFile optionally overrides the built-in device and repair catalogs.
	CatalogFile string
}

// Config holds all configuration
type Config struct {
	ServiceName string
	Server      ServerConfig
	JWT         JWTConfig
	Log         LogConfig
	Metrics     MetricsConfig
	Portal      PortalConfig
}

// Load loads configuration from the .env file (if any) and environment variables
func Load(serviceName string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional
		fmt.Printf("Warning: .env file not found, using environment variables\n")
	}

	config := &Config{
		ServiceName: serviceName,
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		JWT: JWTConfig{
			SigningKey:      getEnv("JWT_SIGNING_KEY", "defaultsecretkey"),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", serviceName),
		},
		Portal: PortalConfig{
			LoginDelay:     getEnvAsDuration("LOGIN_DELAY", 1*time.Second),
			RegisterDelay:  getEnvAsDuration("REGISTER_DELAY", 1500*time.Millisecond),
			OrderDelay:     getEnvAsDuration("ORDER_DELAY", 0),
			SeedDemoOrders: getEnvAsBool("SEED_DEMO_ORDERS", true),
			CatalogFile:    getEnv("CATALOG_FILE", ""),
		},
	}

	if config.Server.Port == "" {
		return nil, fmt.Errorf("config: SERVER_PORT must not be empty")
	}
	if config.JWT.SigningKey == "" {
		return nil, fmt.Errorf("config: JWT_SIGNING_KEY must not be empty")
	}
	if config.Portal.LoginDelay < 0 || config.Portal.RegisterDelay < 0 || config.Portal.OrderDelay < 0 {
		return nil, fmt.Errorf("config: delays must not be negative")
	}

	return config, nil
}

// LogFields returns the configuration as zap fields
func (c *Config) LogFields() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("server_port", c.Server.Port),
		zap.Int("jwt_expiration_hours", c.JWT.ExpirationHours),
		zap.Duration("login_delay", c.Portal.LoginDelay),
		zap.Duration("register_delay", c.Portal.RegisterDelay),
		zap.Duration("order_delay", c.Portal.OrderDelay),
		zap.Bool("seed_demo_orders", c.Portal.SeedDemoOrders),
		zap.String("catalog_file", c.Portal.CatalogFile),
	}
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as durations
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as booleans
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
