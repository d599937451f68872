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

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
		Long:    "List, create, and manage Dwolla customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersDeactivateCommand())
	cmd.AddCommand(newCustomersReactivateCommand())
	cmd.AddCommand(newCustomersSuspendCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		allPages bool
		limit    int
		offset   int
		search   string
		email    string
		status   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		Long:  "List the customers belonging to the authorized application",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			// Fetching every page anyway; use the largest page the API accepts.
			if allPages && !cmd.Flags().Changed("limit") {
				limit = constants.MaxListLimit
			}

			params := dwolla.NewQueryParams().WithLimit(limit).WithOffset(offset)
			if search != "" {
				params = params.WithSearch(search)
			}

			if email != "" {
				params = params.WithEmail(email)
			}

			if status != "" {
				params = params.WithStatus(status)
			}

			customers, err := client.Customers().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list customers: %w", err)
			}

			allCustomers, err := fetchAllCustomerPages(ctx, client, customers, allPages)
			if err != nil {
				return err
			}

			return outputCustomersList(allCustomers, customers, allPages)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&limit, "limit", constants.DefaultListLimit, "results per page")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of results to skip")
	cmd.Flags().StringVar(&search, "search", "", "filter by name or business name")
	cmd.Flags().StringVar(&email, "email", "", "filter by email address")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")

	return cmd
}

// fetchAllCustomerPages follows the HAL next links until the collection
// is exhausted.
func fetchAllCustomerPages(ctx context.Context, client dwolla.Client, customers *dwolla.CustomerList, allPages bool) ([]dwolla.Customer, error) {
	allCustomers := customers.Resources()
	if !allPages {
		return allCustomers, nil
	}

	for next := customers.NextHref(); next != ""; {
		var page dwolla.CustomerList

		err := client.Get(ctx, next, nil, &page)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch next page: %w", err)
		}

		allCustomers = append(allCustomers, page.Resources()...)
		next = page.NextHref()
	}

	return allCustomers, nil
}

func outputCustomersList(allCustomers []dwolla.Customer, customers *dwolla.CustomerList, allPages bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return printJSON(allCustomers)
	case OutputFormatYAML:
		return printYAML(allCustomers)
	default:
		return outputCustomersListTable(allCustomers, customers, allPages)
	}
}

func outputCustomersListTable(allCustomers []dwolla.Customer, customers *dwolla.CustomerList, allPages bool) error {
	if len(allCustomers) == 0 {
		_, _ = os.Stdout.WriteString("No customers found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Email", "Type", "Status", "Created")

	for _, customer := range allCustomers {
		_ = table.Append(customer.ID, customerDisplayName(customer), customer.Email,
			customer.Type, customer.Status, customer.Created.Format("2006-01-02"))
	}

	_ = table.Render()

	if !allPages && customers.NextHref() != "" {
		_, _ = os.Stdout.WriteString("\nMore customers available. Use --all to fetch all pages.\n")
	}

	return nil
}

// customerDisplayName prefers the business name for business customers.
func customerDisplayName(customer dwolla.Customer) string {
	if customer.BusinessName != "" {
		return customer.BusinessName
	}

	return customer.FirstName + " " + customer.LastName
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CUSTOMER_ID",
		Short: "Get customer details",
		Long:  "Display detailed information about a specific customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get customer '%s': %w", args[0], err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return printJSON(customer)
			case OutputFormatYAML:
				return printYAML(customer)
			default:
				return outputCustomerDetailsTable(customer)
			}
		},
	}
}

func outputCustomerDetailsTable(customer *dwolla.Customer) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", customer.ID)
	_ = table.Append("Name", customerDisplayName(*customer))
	_ = table.Append("Email", customer.Email)
	_ = table.Append("Type", customer.Type)
	_ = table.Append("Status", customer.Status)
	_ = table.Append("Created", customer.Created.Format("2006-01-02 15:04:05"))

	if customer.BusinessName != "" {
		_ = table.Append("Business Name", customer.BusinessName)
	}

	if customer.CorrelationID != "" {
		_ = table.Append("Correlation ID", customer.CorrelationID)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render customer table: %w", err)
	}

	return nil
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		firstName     string
		lastName      string
		email         string
		customerType  string
		businessName  string
		correlationID string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		Long:  "Create a new customer; only first name, last name, and email are required for an unverified customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			createReq := &dwolla.CustomerCreateRequest{
				FirstName:     firstName,
				LastName:      lastName,
				Email:         email,
				Type:          customerType,
				BusinessName:  businessName,
				CorrelationID: correlationID,
			}

			customer, err := client.Customers().Create(context.Background(), createReq)
			if err != nil {
				return fmt.Errorf("failed to create customer: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created customer '%s'\n", customerDisplayName(*customer))
			_, _ = fmt.Fprintf(os.Stdout, "  ID: %s\n", customer.ID)
			_, _ = fmt.Fprintf(os.Stdout, "  Status: %s\n", customer.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "customer first name (required)")
	cmd.Flags().StringVar(&lastName, "last-name", "", "customer last name (required)")
	cmd.Flags().StringVar(&email, "email", "", "customer email address (required)")
	cmd.Flags().StringVar(&customerType, "type", "", "customer type (personal, business); empty creates an unverified customer")
	cmd.Flags().StringVar(&businessName, "business-name", "", "business name for business customers")
	cmd.Flags().StringVar(&correlationID, "correlation-id", "", "correlation id tying the customer to an external record")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newCustomersDeactivateCommand() *cobra.Command {
	return newCustomerStatusCommand("deactivate", "Deactivate a customer",
		"Block a customer from sending or receiving funds",
		func(ctx context.Context, client dwolla.Client, customerID string) (*dwolla.Customer, error) {
			return client.Customers().Deactivate(ctx, customerID)
		})
}

func newCustomersReactivateCommand() *cobra.Command {
	return newCustomerStatusCommand("reactivate", "Reactivate a customer",
		"Restore a deactivated customer",
		func(ctx context.Context, client dwolla.Client, customerID string) (*dwolla.Customer, error) {
			return client.Customers().Reactivate(ctx, customerID)
		})
}

func newCustomersSuspendCommand() *cobra.Command {
	return newCustomerStatusCommand("suspend", "Suspend a customer",
		"Suspend a customer pending review",
		func(ctx context.Context, client dwolla.Client, customerID string) (*dwolla.Customer, error) {
			return client.Customers().Suspend(ctx, customerID)
		})
}

func newCustomerStatusCommand(use, short, long string,
	updateFunc func(ctx context.Context, client dwolla.Client, customerID string) (*dwolla.Customer, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " CUSTOMER_ID",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			customer, err := updateFunc(context.Background(), client, args[0])
			if err != nil {
				return fmt.Errorf("failed to %s customer '%s': %w", use, args[0], err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Customer '%s' is now %s\n", customer.ID, customer.Status)

			return nil
		},
	}
}
