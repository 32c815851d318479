package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, store URI, etc.)
// - default: Values common across all environments (timeouts, CORS, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	CORS     CORSConfig
	Log      LogConfig
	Identity IdentityConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"5000"`
}

// Document store drivers.
const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

type StoreConfig struct {
	// Driver selects the document store backend: "mongo" or "memory".
	Driver         string        `envconfig:"STORE_DRIVER" default:"mongo"`
	MongoURI       string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	Database       string        `envconfig:"MONGO_DATABASE" default:"qrkeep"`
	Collection     string        `envconfig:"MONGO_COLLECTION" default:"qrcodes"`
	ConnectTimeout time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Session-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// IdentityConfig points the session middleware at the external identity
// provider. An empty endpoint disables server-side session resolution and the
// service falls back to trusting client-supplied user ids.
type IdentityConfig struct {
	Endpoint string        `envconfig:"IDENTITY_ENDPOINT" default:""`
	Timeout  time.Duration `envconfig:"IDENTITY_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	// Overrides come from the real environment; .env only fills gaps.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "5999", // Test port
		},
		Store: StoreConfig{
			Driver:         StoreDriverMemory,
			Database:       "qrkeep_test",
			Collection:     "qrcodes",
			ConnectTimeout: 2 * time.Second,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
