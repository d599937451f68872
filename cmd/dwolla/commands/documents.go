package commands

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewDocumentsCommand creates the documents command group.
func NewDocumentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"document", "docs"},
		Short:   "Manage verification documents",
		Long:    "Upload and inspect the identity verification documents of customers and beneficial owners",
	}

	cmd.AddCommand(newDocumentsUploadCommand())
	cmd.AddCommand(newDocumentsListCommand())
	cmd.AddCommand(newDocumentsGetCommand())

	return cmd
}

func newDocumentsUploadCommand() *cobra.Command {
	var (
		documentType    string
		beneficialOwner bool
	)

	cmd := &cobra.Command{
		Use:   "upload ID FILE",
		Short: "Upload a verification document",
		Long: `Upload an identity verification document for a customer, or for a
beneficial owner when --beneficial-owner is set. ID names the customer
or owner; FILE is the image or PDF to upload.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if documentType == "" {
				return ErrDocumentTypeRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			file, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open file: %w", err)
			}
			defer func() { _ = file.Close() }()

			upload := &dwolla.DocumentUploadRequest{
				DocumentType: documentType,
				FileName:     filepath.Base(args[1]),
				File:         file,
				ContentType:  mime.TypeByExtension(filepath.Ext(args[1])),
			}

			ctx := context.Background()

			var document *dwolla.Document
			if beneficialOwner {
				document, err = client.Documents().UploadForBeneficialOwner(ctx, args[0], upload)
			} else {
				document, err = client.Documents().UploadForCustomer(ctx, args[0], upload)
			}

			if err != nil {
				return fmt.Errorf("failed to upload document: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully uploaded %s document '%s'\n", document.Type, upload.FileName)
			_, _ = fmt.Fprintf(os.Stdout, "  ID: %s\n", document.ID)
			_, _ = fmt.Fprintf(os.Stdout, "  Status: %s\n", document.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&documentType, "type", "", "document type (passport, license, idCard, other) (required)")
	cmd.Flags().BoolVar(&beneficialOwner, "beneficial-owner", false, "upload for a beneficial owner instead of a customer")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newDocumentsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list CUSTOMER_ID",
		Short: "List a customer's documents",
		Long:  "List the verification documents uploaded for a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			documents, err := client.Documents().ListForCustomer(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list documents: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(documents.Resources())
			case OutputFormatYAML:
				return printYAML(documents.Resources())
			default:
				return outputDocumentsListTable(documents.Resources())
			}
		},
	}
}

func outputDocumentsListTable(documents []dwolla.Document) error {
	if len(documents) == 0 {
		_, _ = os.Stdout.WriteString("No documents found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Type", "Status", "Created", "Failure Reason")

	for _, document := range documents {
		_ = table.Append(document.ID, document.Type, document.Status,
			document.Created.Format("2006-01-02"), formatValue(document.FailureReason))
	}

	_ = table.Render()

	return nil
}

func newDocumentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DOCUMENT_ID",
		Short: "Get document details",
		Long:  "Display the review status of a verification document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			document, err := client.Documents().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get document '%s': %w", args[0], err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(document)
			case OutputFormatYAML:
				return printYAML(document)
			default:
				return outputDocumentDetailsTable(document)
			}
		},
	}
}

func outputDocumentDetailsTable(document *dwolla.Document) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", document.ID)
	_ = table.Append("Type", document.Type)
	_ = table.Append("Status", document.Status)
	_ = table.Append("Created", document.Created.Format("2006-01-02 15:04:05"))

	if document.FailureReason != "" {
		_ = table.Append("Failure Reason", document.FailureReason)
	}

	for _, reason := range document.AllFailureReasons {
		_ = table.Append("  "+reason.Reason, reason.Description)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render document table: %w", err)
	}

	return nil
}
