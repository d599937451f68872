//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"testing"

	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCustomerWorkflow_CompleteJourney walks a customer through its
// whole lifecycle against the sandbox.
func TestCustomerWorkflow_CompleteJourney(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := NewSandboxClient(t, config)
	ctx := context.Background()

	// 1. The root document names the master account
	root, err := client.Root().Get(ctx)
	require.NoError(t, err, "Failed to fetch API root")
	require.NotEmpty(t, root.AccountID())

	account, err := client.Accounts().Get(ctx, root.AccountID())
	require.NoError(t, err, "Failed to fetch master account")
	config.Logf(t, "Master account: %s (%s)", account.Name, account.ID)

	// 2. Create an unverified customer
	name := GenerateTestName("journey")
	email := fmt.Sprintf("%s@integration.test", name)

	customer, err := client.Customers().Create(ctx, &dwolla.CustomerCreateRequest{
		FirstName: "Journey",
		LastName:  "Customer",
		Email:     email,
	})
	require.NoError(t, err, "Failed to create customer")
	require.NotEmpty(t, customer.ID)

	defer func() {
		// Customers cannot be deleted; deactivation is the cleanup
		_, _ = client.Customers().Deactivate(ctx, customer.ID)
	}()

	// 3. Fetch it back and find it through search
	fetched, err := client.Customers().Get(ctx, customer.ID)
	require.NoError(t, err, "Failed to fetch customer")
	assert.Equal(t, email, fetched.Email)

	listed, err := client.Customers().List(ctx, dwolla.NewQueryParams().WithSearch(email))
	require.NoError(t, err, "Failed to search customers")
	require.Len(t, listed.Resources(), 1)
	assert.Equal(t, customer.ID, listed.Resources()[0].ID)

	// 4. Update profile fields
	updated, err := client.Customers().Update(ctx, customer.ID, &dwolla.CustomerUpdateRequest{
		Phone: "5555550100",
	})
	require.NoError(t, err, "Failed to update customer")
	assert.Equal(t, customer.ID, updated.ID)

	// 5. Deactivate, then reactivate
	deactivated, err := client.Customers().Deactivate(ctx, customer.ID)
	require.NoError(t, err, "Failed to deactivate customer")
	assert.Equal(t, dwolla.CustomerStatusDeactivated, deactivated.Status)

	reactivated, err := client.Customers().Reactivate(ctx, customer.ID)
	require.NoError(t, err, "Failed to reactivate customer")
	assert.NotEqual(t, dwolla.CustomerStatusDeactivated, reactivated.Status)
}

// TestTransferWorkflow_FundingSourceToBalance attaches a bank account,
// verifies it with micro-deposits and moves funds to the master
// account's balance.
func TestTransferWorkflow_FundingSourceToBalance(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := NewSandboxClient(t, config)
	ctx := context.Background()

	// Setup: a customer with an attached bank account
	name := GenerateTestName("transfer")

	customer, err := client.Customers().Create(ctx, &dwolla.CustomerCreateRequest{
		FirstName: "Transfer",
		LastName:  "Customer",
		Email:     fmt.Sprintf("%s@integration.test", name),
	})
	require.NoError(t, err, "Failed to create customer")

	defer func() {
		_, _ = client.Customers().Deactivate(ctx, customer.ID)
	}()

	source, err := client.FundingSources().CreateForCustomer(ctx, customer.ID, &dwolla.FundingSourceCreateRequest{
		RoutingNumber:   "222222226",
		AccountNumber:   "123456789",
		BankAccountType: "checking",
		Name:            name,
	})
	require.NoError(t, err, "Failed to create funding source")

	defer func() {
		_, _ = client.FundingSources().Remove(ctx, source.ID)
	}()

	// 1. Verify through micro-deposits; the sandbox accepts any two
	// amounts under ten cents
	_, err = client.FundingSources().InitiateMicroDeposits(ctx, source.ID)
	require.NoError(t, err, "Failed to initiate micro-deposits")

	err = client.FundingSources().VerifyMicroDeposits(ctx, source.ID, &dwolla.MicroDepositsVerifyRequest{
		Amount1: dwolla.Amount{Value: "0.03", Currency: "USD"},
		Amount2: dwolla.Amount{Value: "0.09", Currency: "USD"},
	})
	require.NoError(t, err, "Failed to verify micro-deposits")

	verified, err := client.FundingSources().Get(ctx, source.ID)
	require.NoError(t, err, "Failed to fetch funding source")
	assert.Equal(t, dwolla.FundingSourceStatusVerified, verified.Status)

	// 2. The destination is the master account's balance
	root, err := client.Root().Get(ctx)
	require.NoError(t, err, "Failed to fetch API root")

	var accountSources dwolla.FundingSourceList

	err = client.Get(ctx, root.AccountHref()+"/funding-sources", nil, &accountSources)
	require.NoError(t, err, "Failed to list account funding sources")

	var destination string

	for _, fs := range accountSources.Resources() {
		if fs.Type == "balance" {
			destination = fs.SelfHref()

			break
		}
	}
	require.NotEmpty(t, destination, "Master account has no balance funding source")

	// 3. Create a transfer; replaying the idempotency key must return
	// the same transfer
	request := &dwolla.TransferCreateRequest{
		Links:  dwolla.TransferLinks(verified.SelfHref(), destination),
		Amount: dwolla.Amount{Value: "1.00", Currency: "USD"},
	}

	key := dwolla.NewIdempotencyKey()

	transfer, err := client.Transfers().Create(ctx, request, key)
	require.NoError(t, err, "Failed to create transfer")
	config.Logf(t, "Transfer %s is %s", transfer.ID, transfer.Status)

	replayed, err := client.Transfers().Create(ctx, request, key)
	require.NoError(t, err, "Failed to replay transfer create")
	assert.Equal(t, transfer.ID, replayed.ID)

	// 4. Cancel while still pending
	if transfer.Status == dwolla.TransferStatusPending {
		cancelled, err := client.Transfers().Cancel(ctx, transfer.ID)
		require.NoError(t, err, "Failed to cancel transfer")
		assert.Equal(t, dwolla.TransferStatusCancelled, cancelled.Status)
	}
}

// TestReadOnlyEndpoints covers the endpoints that need no fixtures.
func TestReadOnlyEndpoints(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := NewSandboxClient(t, config)
	ctx := context.Background()

	t.Run("business classifications", func(t *testing.T) {
		classifications, err := client.BusinessClassifications().List(ctx)
		require.NoError(t, err, "Failed to list business classifications")
		assert.NotEmpty(t, classifications.Resources())
	})

	t.Run("events", func(t *testing.T) {
		events, err := client.Events().List(ctx, dwolla.NewQueryParams().WithLimit(5))
		require.NoError(t, err, "Failed to list events")
		assert.LessOrEqual(t, len(events.Resources()), 5)
	})

	t.Run("webhook subscriptions", func(t *testing.T) {
		subscriptions, err := client.WebhookSubscriptions().List(ctx)
		require.NoError(t, err, "Failed to list webhook subscriptions")
		assert.NotNil(t, subscriptions)
	})
}
