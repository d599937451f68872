// Package commands implements the dwolla CLI commands.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fivetwenty-io/dwolla-client/internal/auth"
	"github.com/fivetwenty-io/dwolla-client/internal/client"
	"github.com/fivetwenty-io/dwolla-client/internal/constants"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwollaclient"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Output format constants.
const (
	// NotAvailable represents a value that is not available.
	NotAvailable = "N/A"
	// OutputFormatJSON is the JSON output format string.
	OutputFormatJSON = "json"
	// OutputFormatYAML is the YAML output format string.
	OutputFormatYAML = "yaml"
)

// Environment names accepted by --environment.
const (
	EnvironmentSandbox    = "sandbox"
	EnvironmentProduction = "production"
)

// Common static errors.
var (
	// ErrNoCredentialsConfigured indicates neither an access token nor
	// key/secret credentials are configured.
	ErrNoCredentialsConfigured = errors.New("no credentials configured, run 'dwolla configure' or set DWOLLA_KEY and DWOLLA_SECRET")
	// ErrUnknownEnvironment indicates an unrecognized --environment value.
	ErrUnknownEnvironment = errors.New("unknown environment, expected sandbox or production")
	// ErrCredentialsRequired indicates configure was run without a key or
	// secret.
	ErrCredentialsRequired = errors.New("a key and secret are required")
	// ErrAmountRequired indicates a transfer create without an amount.
	ErrAmountRequired = errors.New("an amount is required")
	// ErrDocumentTypeRequired indicates a document upload without a type.
	ErrDocumentTypeRequired = errors.New("a document type is required (passport, license, idCard, other)")
)

// CreateClient builds an API client from the resolved configuration:
// flags, DWOLLA_* environment variables, and ~/.dwolla/config.yml, in
// that order of precedence. Key/secret credentials get a token manager
// that caches minted tokens in the config file; a bare access token is
// used as-is.
func CreateClient() (dwolla.Client, error) {
	baseURL, err := resolveBaseURL()
	if err != nil {
		return nil, err
	}

	config := &dwolla.Config{BaseURL: baseURL}

	// The library never retries; retry policy belongs to the injected
	// HTTP client.
	if retries := viper.GetInt("retries"); retries > 0 {
		config.HTTPClient = buildRetryingHTTPClient(retries)
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newZapLogger()
	}

	key := viper.GetString("key")
	secret := viper.GetString("secret")

	if key != "" && secret != "" {
		return createManagedClient(config, key, secret)
	}

	if token := viper.GetString("token"); token != "" {
		config.AccessToken = token

		managed, err := dwollaclient.New(context.Background(), config)
		if err != nil {
			return nil, fmt.Errorf("failed to create client: %w", err)
		}

		return managed, nil
	}

	return nil, ErrNoCredentialsConfigured
}

// createManagedClient wires a config-persisting token manager so
// tokens minted by one invocation are reused by the next. The cached
// token from the config file seeds the manager when its expiry is
// still known.
func createManagedClient(config *dwolla.Config, key, secret string) (dwolla.Client, error) {
	cliConfig := loadConfig()

	var initialExpiry time.Time
	if cliConfig.TokenExpiry != nil {
		initialExpiry = *cliConfig.TokenExpiry
	}

	tokenManager := auth.NewConfigTokenManager(&auth.OAuth2Config{
		TokenURL:     strings.TrimSuffix(config.BaseURL, "/") + constants.TokenPath,
		ClientID:     key,
		ClientSecret: secret,
		HTTPClient:   config.HTTPClient,
	}, NewConfigPersister(), cliConfig.Token, initialExpiry)

	managed, err := client.NewWithTokenManager(config, tokenManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return managed, nil
}

// resolveBaseURL maps --environment to an API endpoint. --base-url
// overrides the environment when set.
func resolveBaseURL() (string, error) {
	if baseURL := viper.GetString("base_url"); baseURL != "" {
		baseURL = strings.TrimSuffix(baseURL, "/")
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			baseURL = "https://" + baseURL
		}

		return baseURL, nil
	}

	switch viper.GetString("environment") {
	case EnvironmentSandbox, "":
		return constants.SandboxAPIURL, nil
	case EnvironmentProduction:
		return constants.ProductionAPIURL, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnknownEnvironment, viper.GetString("environment"))
	}
}

// buildRetryingHTTPClient wraps the standard HTTP client with
// exponential-backoff retries for injection into the API client.
func buildRetryingHTTPClient(retries int) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retries
	retryClient.Logger = nil

	return retryClient.StandardClient()
}

// zapLogger adapts a zap sugared logger to the client Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

func newZapLogger() *zapLogger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

func (l *zapLogger) Debug(msg string, fields map[string]interface{}) {
	l.sugar.Debugw(msg, flattenFields(fields)...)
}

func (l *zapLogger) Info(msg string, fields map[string]interface{}) {
	l.sugar.Infow(msg, flattenFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields map[string]interface{}) {
	l.sugar.Warnw(msg, flattenFields(fields)...)
}

func (l *zapLogger) Error(msg string, fields map[string]interface{}) {
	l.sugar.Errorw(msg, flattenFields(fields)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// printYAML writes v to stdout as YAML.
func printYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}

// confirmAction prompts before a destructive operation. It returns
// false unless the user answers y.
func confirmAction(action, entityType, id string) bool {
	_, _ = fmt.Fprintf(os.Stdout, "Really %s %s '%s'? (y/N): ", action, entityType, id)

	var response string

	_, _ = fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		_, _ = os.Stdout.WriteString("Cancelled\n")

		return false
	}

	return true
}

// formatValue substitutes N/A for empty table cells.
func formatValue(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
