package utils

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

func GetEnvString(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Printf("Error parsing %s: %v, will use default value", key, err)
		return defaultValue
	}
	return intValue
}

// GetEnvSeconds reads a whole number of seconds, falling back to the default
// when the value is missing, malformed or not positive.
func GetEnvSeconds(key string, defaultSeconds int) time.Duration {
	seconds := GetEnvInt(key, defaultSeconds)
	if seconds <= 0 {
		log.Printf("Invalid %s: %d, will use default value", key, seconds)
		seconds = defaultSeconds
	}
	return time.Duration(seconds) * time.Second
}
