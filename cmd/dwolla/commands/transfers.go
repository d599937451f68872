package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/dwolla-client/internal/constants"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTransfersCommand creates the transfers command group.
func NewTransfersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transfers",
		Aliases: []string{"transfer"},
		Short:   "Manage transfers",
		Long:    "List, create, and cancel transfers between funding sources",
	}

	cmd.AddCommand(newTransfersListCommand())
	cmd.AddCommand(newTransfersGetCommand())
	cmd.AddCommand(newTransfersCreateCommand())
	cmd.AddCommand(newTransfersCancelCommand())
	cmd.AddCommand(newTransfersFailureCommand())

	return cmd
}

func newTransfersListCommand() *cobra.Command {
	var (
		limit  int
		offset int
		status string
	)

	cmd := &cobra.Command{
		Use:   "list CUSTOMER_ID",
		Short: "List a customer's transfers",
		Long:  "List the transfers a customer sent or received",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := dwolla.NewQueryParams().WithLimit(limit).WithOffset(offset)
			if status != "" {
				params = params.WithStatus(status)
			}

			transfers, err := client.Transfers().ListForCustomer(context.Background(), args[0], params)
			if err != nil {
				return fmt.Errorf("failed to list transfers: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(transfers.Resources())
			case OutputFormatYAML:
				return printYAML(transfers.Resources())
			default:
				return outputTransfersListTable(transfers.Resources())
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending, processed, cancelled, failed)")

	return cmd
}

func outputTransfersListTable(transfers []dwolla.Transfer) error {
	if len(transfers) == 0 {
		_, _ = os.Stdout.WriteString("No transfers found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Amount", "Status", "Created", "Correlation ID")

	for _, transfer := range transfers {
		_ = table.Append(transfer.ID, transfer.Amount.Value+" "+transfer.Amount.Currency,
			transfer.Status, transfer.Created.Format("2006-01-02 15:04:05"),
			formatValue(transfer.CorrelationID))
	}

	_ = table.Render()

	return nil
}

func newTransfersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TRANSFER_ID",
		Short: "Get transfer details",
		Long:  "Display detailed information about a specific transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			transfer, err := client.Transfers().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get transfer '%s': %w", args[0], err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(transfer)
			case OutputFormatYAML:
				return printYAML(transfer)
			default:
				return outputTransferDetailsTable(transfer)
			}
		},
	}
}

func outputTransferDetailsTable(transfer *dwolla.Transfer) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", transfer.ID)
	_ = table.Append("Amount", transfer.Amount.Value+" "+transfer.Amount.Currency)
	_ = table.Append("Status", transfer.Status)
	_ = table.Append("Created", transfer.Created.Format("2006-01-02 15:04:05"))

	if sourceHref := transfer.Links.Href("source"); sourceHref != "" {
		_ = table.Append("Source", sourceHref)
	}

	if destinationHref := transfer.Links.Href("destination"); destinationHref != "" {
		_ = table.Append("Destination", destinationHref)
	}

	if transfer.CorrelationID != "" {
		_ = table.Append("Correlation ID", transfer.CorrelationID)
	}

	if transfer.IndividualACHID != "" {
		_ = table.Append("Individual ACH ID", transfer.IndividualACHID)
	}

	for key, value := range transfer.Metadata {
		_ = table.Append("Metadata: "+key, value)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render transfer table: %w", err)
	}

	return nil
}

func newTransfersCreateCommand() *cobra.Command {
	var (
		source         string
		destination    string
		amount         string
		currency       string
		idempotencyKey string
		correlationID  string
		metadata       map[string]string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a transfer",
		Long: `Initiate a transfer between two funding sources.

Source and destination take funding source IDs or full resource URLs.
Pass --idempotency-key to make the request safe to replay; the same key
always yields the same transfer.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if amount == "" {
				return ErrAmountRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			createReq := &dwolla.TransferCreateRequest{
				Links:         transferEndpointLinks(source, destination),
				Amount:        dwolla.Amount{Value: amount, Currency: currency},
				CorrelationID: correlationID,
			}
			if len(metadata) > 0 {
				createReq.Metadata = metadata
			}

			transfer, err := client.Transfers().Create(ctx, createReq, idempotencyKey)
			if err != nil {
				return fmt.Errorf("failed to create transfer: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created transfer of %s %s\n",
				transfer.Amount.Value, transfer.Amount.Currency)
			_, _ = fmt.Fprintf(os.Stdout, "  ID: %s\n", transfer.ID)
			_, _ = fmt.Fprintf(os.Stdout, "  Status: %s\n", transfer.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "source funding source ID or URL (required)")
	cmd.Flags().StringVar(&destination, "destination", "", "destination funding source ID or URL (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "transfer amount, for example 42.00 (required)")
	cmd.Flags().StringVar(&currency, "currency", "USD", "transfer currency")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "idempotency key deduplicating replayed requests")
	cmd.Flags().StringVar(&correlationID, "correlation-id", "", "correlation id tying the transfer to an external record")
	cmd.Flags().StringToStringVar(&metadata, "metadata", nil, "metadata to attach (key=value)")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// transferEndpointLinks accepts bare funding source IDs or full
// resource URLs for either endpoint of a transfer.
func transferEndpointLinks(source, destination string) dwolla.Links {
	return dwolla.TransferLinks(fundingSourceHref(source), fundingSourceHref(destination))
}

func fundingSourceHref(idOrURL string) string {
	if strings.HasPrefix(idOrURL, "http://") || strings.HasPrefix(idOrURL, "https://") {
		return idOrURL
	}

	baseURL, err := resolveBaseURL()
	if err != nil {
		return idOrURL
	}

	return baseURL + "/funding-sources/" + idOrURL
}

func newTransfersCancelCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cancel TRANSFER_ID",
		Short: "Cancel a transfer",
		Long:  "Cancel a pending transfer before it is processed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force && !confirmAction("cancel", "transfer", args[0]) {
				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			transfer, err := client.Transfers().Cancel(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel transfer '%s': %w", args[0], err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Transfer '%s' is now %s\n", transfer.ID, transfer.Status)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "cancel without confirmation")

	return cmd
}

func newTransfersFailureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "failure TRANSFER_ID",
		Short: "Explain a transfer failure",
		Long:  "Display the ACH return code and description for a failed transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			failure, err := client.Transfers().GetFailure(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get failure for transfer '%s': %w", args[0], err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(failure)
			case OutputFormatYAML:
				return printYAML(failure)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Code", failure.Code)
				_ = table.Append("Description", failure.Description)
				_ = table.Append("Explanation", formatValue(failure.Explanation))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render failure table: %w", err)
				}

				return nil
			}
		},
	}
}
