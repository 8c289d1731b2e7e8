package utils

import (
	"flag"
	"os"
	"strconv"
	"time"
)

// StringFlagOrEnv defines a string flag which can be set by an environment variable.
// Precedence: flag > env var > default value.
func StringFlagOrEnv(p *string, name string, envName string, defaultValue string, usage string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		defaultValue = envValue
	}
	flag.StringVar(p, name, defaultValue, usage)
}

// BoolFlagOrEnv defines a bool flag which can be set by an environment variable.
// Precedence: flag > env var > default value.
func BoolFlagOrEnv(p *bool, name string, envName string, defaultValue bool, usage string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		defaultValue, _ = strconv.ParseBool(envValue)
	}
	flag.BoolVar(p, name, defaultValue, usage)
}

// IntFlagOrEnv defines an int flag which can be set by an environment variable.
// Precedence: flag > env var > default value.
func IntFlagOrEnv(p *int, name string, envName string, defaultValue int, usage string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		if parsed, err := strconv.Atoi(envValue); err == nil {
			defaultValue = parsed
		}
	}
	flag.IntVar(p, name, defaultValue, usage)
}

// DurationFlagOrEnv defines a duration flag which can be set by an environment variable.
// Precedence: flag > env var > default value.
func DurationFlagOrEnv(p *time.Duration, name string, envName string, defaultValue time.Duration, usage string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		if parsed, err := time.ParseDuration(envValue); err == nil {
			defaultValue = parsed
		}
	}
	flag.DurationVar(p, name, defaultValue, usage)
}
