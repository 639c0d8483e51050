package env

import (
	"casino_simulator/internal/config"
	"os"
)

const appEnvName = "APP_ENV"

type loggerConfig struct {
	development bool
}

func NewLoggerConfig() config.LoggerConfig {
	return &loggerConfig{development: os.Getenv(appEnvName) == "development"}
}

func (cfg *loggerConfig) Development() bool {
	return cfg.development
}
