package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fivetwenty-io/dwolla-client/internal/constants"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewEventsCommand creates the events command group.
func NewEventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events",
		Aliases: []string{"event"},
		Short:   "Inspect the event stream",
		Long:    "List and inspect the events recorded for the authorized application, newest first",
	}

	cmd.AddCommand(newEventsListCommand())
	cmd.AddCommand(newEventsGetCommand())

	return cmd
}

func newEventsListCommand() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long:  "List events, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := dwolla.NewQueryParams().WithLimit(limit).WithOffset(offset)

			events, err := client.Events().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list events: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(events.Resources())
			case OutputFormatYAML:
				return printYAML(events.Resources())
			default:
				return outputEventsListTable(events.Resources())
			}
		},
	}

	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")

	return cmd
}

func outputEventsListTable(events []dwolla.Event) error {
	if len(events) == 0 {
		_, _ = os.Stdout.WriteString("No events found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Topic", "Resource ID", "Created")

	for _, event := range events {
		_ = table.Append(event.ID, event.Topic, event.ResourceID,
			event.Created.Format("2006-01-02 15:04:05"))
	}

	_ = table.Render()

	return nil
}

func newEventsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EVENT_ID",
		Short: "Get event details",
		Long:  "Display detailed information about a specific event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			event, err := client.Events().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get event '%s': %w", args[0], err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(event)
			case OutputFormatYAML:
				return printYAML(event)
			default:
				return outputEventDetailsTable(event)
			}
		},
	}
}

func outputEventDetailsTable(event *dwolla.Event) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", event.ID)
	_ = table.Append("Topic", event.Topic)
	_ = table.Append("Resource ID", event.ResourceID)
	_ = table.Append("Created", event.Created.Format("2006-01-02 15:04:05"))

	if resourceHref := event.Links.Href("resource"); resourceHref != "" {
		_ = table.Append("Resource", resourceHref)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render event table: %w", err)
	}

	return nil
}
