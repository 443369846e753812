package env

import (
	"os"
	"strconv"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

// TrySetBoolFromEnv leaves val untouched when the variable is unset or unparsable.
func TrySetBoolFromEnv(envName string, val *bool) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	if parsed, err := strconv.ParseBool(envVal); err == nil {
		*val = parsed
	}
}
