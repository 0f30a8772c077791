package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetFlagsAndArgs() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	os.Args = []string{"cmd"}
}

func setEnv(t *testing.T) {
	t.Setenv("RUN_ADDRESS", "localhost:9000")
	t.Setenv("LOG_LVL", "debug")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("ADMIN_PASSWORD", "toor")
}

func TestNew(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)
	os.Args = []string{
		"cmd",
		"-a", "localhost:8080",
		"-l", "error",
	}
	cfg := New()

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, "error", cfg.LogLvl)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "root", cfg.AdminUsername)
	assert.Equal(t, "toor", cfg.AdminPassword)
}

func TestNewEnvOnly(t *testing.T) {
	resetFlagsAndArgs()
	setEnv(t)

	cfg := New()

	assert.Equal(t, "localhost:9000", cfg.Address)
	assert.Equal(t, "debug", cfg.LogLvl)
}
