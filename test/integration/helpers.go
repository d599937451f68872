//go:build integration
// +build integration

// Package integration exercises the client against the Dwolla sandbox.
// The tests need sandbox application credentials:
//
//	DWOLLA_SANDBOX_KEY=... DWOLLA_SANDBOX_SECRET=... go test -tags=integration ./test/integration/
//
// Tests skip themselves when the credentials are absent, so the suite
// is safe to run as part of the regular build.
package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwollaclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Key     string
	Secret  string
	Verbose bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Key:     os.Getenv("DWOLLA_SANDBOX_KEY"),
		Secret:  os.Getenv("DWOLLA_SANDBOX_SECRET"),
		Verbose: os.Getenv("DWOLLA_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test unless sandbox credentials are
// configured.
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.Key == "" || c.Secret == "" {
		t.Skip("Skipping integration test: DWOLLA_SANDBOX_KEY and DWOLLA_SANDBOX_SECRET not set")
	}
}

// NewSandboxClient creates a client against the sandbox environment.
func NewSandboxClient(t *testing.T, config *TestConfig) dwolla.Client {
	t.Helper()

	client, err := dwollaclient.NewSandbox(context.Background(), config.Key, config.Secret)
	if err != nil {
		t.Fatalf("Failed to create sandbox client: %v", err)
	}

	return client
}

// GenerateTestName returns a unique name with the given prefix so
// repeated runs never collide on server-side uniqueness checks.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// Logf logs through t only when verbose output is enabled.
func (c *TestConfig) Logf(t *testing.T, format string, args ...interface{}) {
	t.Helper()

	if c.Verbose {
		t.Logf(format, args...)
	}
}
