package plotkit

import (
	"os"
	"strconv"

	"github.com/plotkit/plotkit/pkg/logger"
	"github.com/plotkit/plotkit/pkg/logger/zerolog"
)

// DefaultLog is the logger used by code that was not handed one explicitly,
// such as the CSV loader and the persistence helpers.
var DefaultLog logger.Logger

const (
	defaultLogLevel      = "warn"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
	defaultLogColored    = "true"
	defaultLogJSON       = "false"
)

// Environment variable names
const (
	envLogLevel      = "PLOTKIT_LOG_LEVEL"
	envLogTimeFormat = "PLOTKIT_LOG_TIME_FORMAT"
	envLogColor      = "PLOTKIT_LOG_COLOR"
	envLogJSON       = "PLOTKIT_LOG_JSON"
)

func init() {
	log, err := initLogger()
	if err != nil {
		panic(err)
	}
	DefaultLog = log
}

// initLogger builds the default logger from environment variables.
func initLogger() (logger.Logger, error) {
	level := getEnvWithDefault(envLogLevel, defaultLogLevel)
	timeFormat := getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat)

	colored, err := parseBoolEnv(envLogColor, defaultLogColored)
	if err != nil {
		return nil, err
	}
	jsonFormat, err := parseBoolEnv(envLogJSON, defaultLogJSON)
	if err != nil {
		return nil, err
	}

	return zerolog.New(level, timeFormat, colored, jsonFormat)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key, defaultValue string) (bool, error) {
	return strconv.ParseBool(getEnvWithDefault(key, defaultValue))
}
