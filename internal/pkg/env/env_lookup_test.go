package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrySetFromEnv(t *testing.T) {
	t.Setenv("SHOP_TEST_STRING", "overridden")

	val := "default"
	TrySetFromEnv("SHOP_TEST_STRING", &val)
	assert.Equal(t, "overridden", val)

	missing := "default"
	TrySetFromEnv("SHOP_TEST_MISSING", &missing)
	assert.Equal(t, "default", missing)
}

func TestTrySetBoolFromEnv(t *testing.T) {
	t.Setenv("SHOP_TEST_BOOL", "true")
	t.Setenv("SHOP_TEST_BAD_BOOL", "maybe")

	val := false
	TrySetBoolFromEnv("SHOP_TEST_BOOL", &val)
	assert.True(t, val)

	bad := true
	TrySetBoolFromEnv("SHOP_TEST_BAD_BOOL", &bad)
	assert.True(t, bad)
}
