// +build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/fivetwenty-io/clevercloud/pkg/ccclient"
	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Endpoint       string
	Token          string
	Secret         string
	OrganisationID string
	WasmPath       string
	Verbose        bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Endpoint:       os.Getenv("CLEVER_ENDPOINT"),
		Token:          os.Getenv("CLEVER_TOKEN"),
		Secret:         os.Getenv("CLEVER_SECRET"),
		OrganisationID: os.Getenv("CLEVER_ORGANISATION"),
		WasmPath:       os.Getenv("CLEVER_TEST_WASM"),
		Verbose:        os.Getenv("CLEVER_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if config.Token == "" || config.Secret == "" {
		t.Skip("CLEVER_TOKEN or CLEVER_SECRET not set, skipping integration test")
	}
}

// RequireOrganisation skips test if no organisation is configured
func (config *TestConfig) RequireOrganisation(t *testing.T) {
	if config.OrganisationID == "" {
		t.Skip("CLEVER_ORGANISATION not set, skipping integration test")
	}
}

// RequireWasm skips test if no WebAssembly module is configured, otherwise
// returns its content
func (config *TestConfig) RequireWasm(t *testing.T) []byte {
	if config.WasmPath == "" {
		t.Skip("CLEVER_TEST_WASM not set, skipping integration test")
	}

	code, err := os.ReadFile(config.WasmPath)
	if err != nil {
		t.Fatalf("Failed to read WebAssembly module %s: %v", config.WasmPath, err)
	}

	return code
}

// NewTestClient builds a client from the test configuration
func (config *TestConfig) NewTestClient(t *testing.T) clevercloud.Client {
	cfg := &clevercloud.Config{
		Endpoint:    config.Endpoint,
		Credentials: clevercloud.NewOAuth1Credentials(config.Token, config.Secret),
	}

	if config.Verbose {
		cfg.Debug = true
		cfg.Logger = &testLogger{t: t}
	}

	client, err := ccclient.New(cfg)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	return client
}

// testLogger forwards client debug output to the test log
type testLogger struct {
	t *testing.T
}

func (l *testLogger) Debug(msg string, fields map[string]interface{}) {
	l.t.Logf("DEBUG %s %v", msg, fields)
}

func (l *testLogger) Info(msg string, fields map[string]interface{}) {
	l.t.Logf("INFO %s %v", msg, fields)
}

func (l *testLogger) Warn(msg string, fields map[string]interface{}) {
	l.t.Logf("WARN %s %v", msg, fields)
}

func (l *testLogger) Error(msg string, fields map[string]interface{}) {
	l.t.Logf("ERROR %s %v", msg, fields)
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}
