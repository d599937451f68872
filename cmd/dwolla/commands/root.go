package commands

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand creates the root resource command
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Display the API root document",
		Long:  "Fetch the API root document listing the resources available to the authorized application",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			root, err := client.Root().Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch API root: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(root)
			case OutputFormatYAML:
				return printYAML(root)
			default:
				return outputRootTable(root)
			}
		},
	}
}

func outputRootTable(root *dwolla.Root) error {
	if accountID := root.AccountID(); accountID != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Account: %s\n\n", accountID)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Relation", "Href")

	relations := make([]string, 0, len(root.Links))
	for relation := range root.Links {
		relations = append(relations, relation)
	}

	sort.Strings(relations)

	for _, relation := range relations {
		_ = table.Append(relation, root.Links[relation].Href)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render root table: %w", err)
	}

	return nil
}
