package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewFundingSourcesCommand creates the funding-sources command group.
func NewFundingSourcesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "funding-sources",
		Aliases: []string{"funding-source", "fs"},
		Short:   "Manage funding sources",
		Long:    "List, attach, and remove the bank accounts and balances backing transfers",
	}

	cmd.AddCommand(newFundingSourcesListCommand())
	cmd.AddCommand(newFundingSourcesGetCommand())
	cmd.AddCommand(newFundingSourcesCreateCommand())
	cmd.AddCommand(newFundingSourcesRemoveCommand())
	cmd.AddCommand(newFundingSourcesBalanceCommand())

	return cmd
}

func newFundingSourcesListCommand() *cobra.Command {
	var includeRemoved bool

	cmd := &cobra.Command{
		Use:   "list CUSTOMER_ID",
		Short: "List a customer's funding sources",
		Long:  "List the funding sources attached to a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var params *dwolla.QueryParams
			if includeRemoved {
				params = dwolla.NewQueryParams().WithRemoved(true)
			}

			sources, err := client.FundingSources().ListForCustomer(context.Background(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to list funding sources: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(sources.Resources())
			case OutputFormatYAML:
				return printYAML(sources.Resources())
			default:
				return outputFundingSourcesListTable(sources.Resources())
			}
		},
	}

	cmd.Flags().BoolVar(&includeRemoved, "removed", false, "include removed funding sources")

	return cmd
}

func outputFundingSourcesListTable(sources []dwolla.FundingSource) error {
	if len(sources) == 0 {
		_, _ = os.Stdout.WriteString("No funding sources found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Type", "Status", "Bank", "Removed")

	for _, source := range sources {
		_ = table.Append(source.ID, source.Name, fundingSourceType(source),
			source.Status, formatValue(source.BankName), fmt.Sprintf("%t", source.Removed))
	}

	_ = table.Render()

	return nil
}

// fundingSourceType folds the bank account subtype into the type column.
func fundingSourceType(source dwolla.FundingSource) string {
	if source.BankAccountType != "" {
		return source.Type + "/" + source.BankAccountType
	}

	return source.Type
}

func newFundingSourcesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FUNDING_SOURCE_ID",
		Short: "Get funding source details",
		Long:  "Display detailed information about a specific funding source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			source, err := client.FundingSources().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get funding source '%s': %w", args[0], err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(source)
			case OutputFormatYAML:
				return printYAML(source)
			default:
				return outputFundingSourceDetailsTable(source)
			}
		},
	}
}

func outputFundingSourceDetailsTable(source *dwolla.FundingSource) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", source.ID)
	_ = table.Append("Name", source.Name)
	_ = table.Append("Type", fundingSourceType(*source))
	_ = table.Append("Status", source.Status)
	_ = table.Append("Removed", fmt.Sprintf("%t", source.Removed))
	_ = table.Append("Created", source.Created.Format("2006-01-02 15:04:05"))

	if source.BankName != "" {
		_ = table.Append("Bank", source.BankName)
	}

	if len(source.Channels) > 0 {
		_ = table.Append("Channels", strings.Join(source.Channels, ", "))
	}

	if source.Fingerprint != "" {
		_ = table.Append("Fingerprint", source.Fingerprint)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render funding source table: %w", err)
	}

	return nil
}

func newFundingSourcesCreateCommand() *cobra.Command {
	var (
		name            string
		routingNumber   string
		accountNumber   string
		bankAccountType string
		plaidToken      string
	)

	cmd := &cobra.Command{
		Use:   "create CUSTOMER_ID",
		Short: "Attach a funding source",
		Long:  "Attach a bank account to a customer, by routing and account number or by Plaid token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			createReq := &dwolla.FundingSourceCreateRequest{
				Name:            name,
				RoutingNumber:   routingNumber,
				AccountNumber:   accountNumber,
				BankAccountType: bankAccountType,
				PlaidToken:      plaidToken,
			}

			source, err := client.FundingSources().CreateForCustomer(context.Background(), args[0], createReq)
			if err != nil {
				return fmt.Errorf("failed to create funding source: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created funding source '%s'\n", source.Name)
			_, _ = fmt.Fprintf(os.Stdout, "  ID: %s\n", source.ID)
			_, _ = fmt.Fprintf(os.Stdout, "  Status: %s\n", source.Status)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "funding source display name (required)")
	cmd.Flags().StringVar(&routingNumber, "routing-number", "", "bank routing number")
	cmd.Flags().StringVar(&accountNumber, "account-number", "", "bank account number")
	cmd.Flags().StringVar(&bankAccountType, "type", "checking", "bank account type (checking, savings)")
	cmd.Flags().StringVar(&plaidToken, "plaid-token", "", "Plaid processor token, replaces routing/account numbers")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newFundingSourcesRemoveCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove FUNDING_SOURCE_ID",
		Short: "Remove a funding source",
		Long:  "Soft-delete a funding source; it stays readable but can no longer move funds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmAction("remove", "funding source", args[0]) {
				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			source, err := client.FundingSources().Remove(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to remove funding source '%s': %w", args[0], err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully removed funding source '%s'\n", source.Name)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force removal without confirmation")

	return cmd
}

func newFundingSourcesBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance FUNDING_SOURCE_ID",
		Short: "Get the balance of a funding source",
		Long:  "Display the balance of a Dwolla balance funding source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			balance, err := client.FundingSources().GetBalance(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get balance for funding source '%s': %w", args[0], err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(balance)
			case OutputFormatYAML:
				return printYAML(balance)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Balance", balance.Balance.Value+" "+balance.Balance.Currency)

				if balance.Total != nil {
					_ = table.Append("Total", balance.Total.Value+" "+balance.Total.Currency)
				}

				_ = table.Append("Last Updated", balance.LastUpdated.Format("2006-01-02 15:04:05"))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render balance table: %w", err)
				}

				return nil
			}
		},
	}
}
