package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// DefaultOrigin is used when API_ORIGIN is not set.
const DefaultOrigin = "http://localhost:4000/api"

// Config holds the project config values
type Config struct {
	APIOrigin    string
	SessionToken string
	TokenFile    string
	PollInterval time.Duration
	Environment  string
}

// New loads .env if present, sets up the global zap logger and reads
// all config values from the environment
func New() *Config {
	// a missing .env file is fine, real deployments set env vars directly
	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		APIOrigin:    os.Getenv("API_ORIGIN"),
		SessionToken: os.Getenv("SESSION_TOKEN"),
		TokenFile:    os.Getenv("TOKEN_FILE"),
		PollInterval: pollInterval(),
		Environment:  env,
	}
}

func setLogger(environment string) (*zap.Logger, error) {
	switch environment {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}

func pollInterval() time.Duration {
	v := os.Getenv("POLL_INTERVAL")
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		zap.S().Warnw("invalid POLL_INTERVAL, using default",
			"value", v,
		)
		return 0
	}
	return d
}
