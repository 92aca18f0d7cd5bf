package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type envVarType interface {
	string | int | bool | float64 | time.Duration
}

// GetEnv reads an environment variable and parses it to the type of the default value.
// An unset or empty variable returns the default value, an unparsable one panics.
func GetEnv[T envVarType](envVarName string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		return defaultValue
	}

	value, err := parseEnv[T](envValue)
	if err != nil {
		panic(fmt.Sprintf("Environment variable %s is not valid: '%s' (%s)", envVarName, envValue, err))
	}
	return value
}

func GetRequiredEnv[T envVarType](envVarName string) T {
	envValue, ok := os.LookupEnv(envVarName)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVarName)
	}

	value, err := parseEnv[T](envValue)
	if err != nil {
		log.Fatalf("%s environment variable is not valid: '%s' (%s)", envVarName, envValue, err)
	}
	return value
}

func parseEnv[T envVarType](envValue string) (T, error) {
	var value T
	var out any
	var err error

	switch any(value).(type) {
	case string:
		out = envValue
	case int:
		out, err = strconv.Atoi(envValue)
	case bool:
		out, err = strconv.ParseBool(envValue)
	case float64:
		out, err = strconv.ParseFloat(envValue, 64)
	case time.Duration:
		out, err = time.ParseDuration(envValue)
	}
	if err != nil {
		return value, err
	}
	return out.(T), nil
}
