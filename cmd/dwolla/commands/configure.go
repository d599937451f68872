package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/dwolla-client/internal/constants"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwollaclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewConfigureCommand creates the configure command
func NewConfigureCommand() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure API credentials",
		Long:  "Store Dwolla application credentials in the CLI configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(os.Stdin)

			// Environment
			environment := viper.GetString("environment")
			if environment == "" {
				fmt.Print("Environment (sandbox/production) [sandbox]: ")
				environment, _ = reader.ReadString('\n')
				environment = strings.TrimSpace(environment)

				if environment == "" {
					environment = EnvironmentSandbox
				}
			}

			if environment != EnvironmentSandbox && environment != EnvironmentProduction {
				return fmt.Errorf("%w: '%s'", ErrUnknownEnvironment, environment)
			}

			// Application key
			key := viper.GetString("key")
			if key == "" {
				fmt.Print("Key: ")
				key, _ = reader.ReadString('\n')
				key = strings.TrimSpace(key)
			}

			// Application secret, read without echo
			secret := viper.GetString("secret")
			if secret == "" {
				fmt.Print("Secret: ")
				byteSecret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read secret: %w", err)
				}
				secret = string(byteSecret)
				fmt.Println()
			}

			if key == "" || secret == "" {
				return ErrCredentialsRequired
			}

			baseURL := constants.SandboxAPIURL
			if environment == EnvironmentProduction {
				baseURL = constants.ProductionAPIURL
			}

			// Exchange the credentials for a token before persisting them
			if !skipVerify {
				client, err := dwollaclient.New(context.Background(), &dwolla.Config{
					BaseURL: baseURL,
					Key:     key,
					Secret:  secret,
				})
				if err != nil {
					return fmt.Errorf("failed to create client: %w", err)
				}

				if _, err := client.Token(context.Background()); err != nil {
					return fmt.Errorf("failed to verify credentials: %w", err)
				}

				fmt.Printf("Credentials verified against %s\n", baseURL)
			}

			config := loadConfig()
			config.Environment = environment
			config.Key = key
			config.Secret = secret

			// Drop any cached token; it was minted with the old credentials.
			config.Token = ""
			config.TokenExpiry = nil

			if err := saveConfigStruct(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Configuration saved (key: %s, secret: %s)\n", key, constants.MaskedSecret)

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save credentials without exchanging them for a token")

	return cmd
}
