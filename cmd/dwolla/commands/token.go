package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTokenCommand creates the token command
func NewTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Fetch an access token",
		Long: `Exchange the configured application credentials for a bearer access token.

The token is printed to stdout so it can be exported or passed to other
tools. Tokens expire after roughly an hour; rerun the command for a
fresh one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			token, err := client.Token(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch token: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(map[string]string{"access_token": token})
			case OutputFormatYAML:
				return printYAML(map[string]string{"access_token": token})
			default:
				_, _ = fmt.Fprintln(os.Stdout, token)

				return nil
			}
		},
	}
}
