// Package dwolla provides types, interfaces, and helpers for working
// with the Dwolla payments API.
//
// # Overview
//
// The dwolla package defines the domain types (e.g., Customer,
// FundingSource, Transfer, WebhookSubscription) and the interfaces for
// resource-oriented clients (e.g., CustomersClient, TransfersClient).
// A concrete implementation of these clients is provided by the
// dwollaclient package, which wires configuration, transport, and
// authentication. Most consumers should import dwollaclient to
// construct a client and then interact with the resource client
// interfaces exposed here.
//
// # Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
//	  "github.com/fivetwenty-io/dwolla-client/pkg/dwollaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := dwollaclient.NewSandbox(ctx, "key", "secret")
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of customers
//	  customers, err := cli.Customers().List(ctx, dwolla.NewQueryParams().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = customers
//	}
//
// # Queries and pagination
//
// Use QueryParams to express common list options (limit, offset,
// search, status). List responses carry HAL links; follow NextHref
// through the raw client to walk additional pages:
//
//	page, err := cli.Customers().List(ctx, nil)
//	for err == nil && page.NextHref() != "" {
//	  var next dwolla.CustomerList
//	  err = cli.Get(ctx, page.NextHref(), nil, &next)
//	  page = &next
//	}
//
// # Errors
//
// API errors are represented by APIError and ErrorResponse. Helpers
// such as IsNotFoundError, IsUnauthorizedError, and IsValidationError
// make it easy to branch on common error cases. Every APIError carries
// the X-Request-Id correlation id of the failed call, which support
// asks for verbatim.
//
// # Idempotency and retries
//
// The library never retries a request and never invents idempotency
// keys. Generate a key with NewIdempotencyKey, hold onto it for the
// lifetime of the logical operation, and pass it to Create calls so
// application-level retries cannot double-move money.
//
// # Webhooks
//
// VerifyWebhookSignature authenticates webhook payloads against the
// subscription secret before they are trusted:
//
//	sig := r.Header.Get(dwolla.SignatureHeader)
//	if err := dwolla.VerifyWebhookSignature(secret, sig, body); err != nil {
//	  // discard the payload
//	}
package dwolla
