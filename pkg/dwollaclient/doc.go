// Package dwollaclient provides the primary entry point for constructing a
// Dwolla API client that implements the dwolla.Client interface.
//
// It layers configuration, HTTP transport, and OAuth2 authentication on top
// of the resource interfaces and types defined in the dwolla package. Most
// applications should import dwollaclient to build a client, then use the
// returned dwolla.Client to access resource-specific clients, for example
// Customers(), Transfers(), FundingSources(), etc.
//
// # Quick start
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
//
//	  // Sandbox with client credentials. A bearer token is fetched on
//	  // demand by the first request and refreshed before it expires.
//	  cli, err := dwollaclient.NewSandbox(ctx, "app-key", "app-secret")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an access token you already have:
//	  cli, err = dwollaclient.NewWithToken(ctx, "https://api-sandbox.dwolla.com", "eyJhbGciOi...")
//
//	  // Or with full control over the configuration:
//	  cli, err = dwollaclient.New(ctx, &dwolla.Config{
//	    BaseURL: "https://api-sandbox.dwolla.com",
//	    Key:     "app-key",
//	    Secret:  "app-secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the dwolla.Client interface
//	  customers, err := cli.Customers().List(ctx, dwolla.NewQueryParams().WithLimit(10))
//	  if err != nil { log.Fatal(err) }
//	  _ = customers
//	}
//
// # Retries
//
// The client never retries a failed request on its own; payment
// operations are not safely repeatable without an idempotency key.
// Callers that want retry behavior can supply a Config.HTTPClient whose
// transport retries, and pass idempotency keys to the create
// operations that accept them.
//
// # Helpers
//
// The package also provides convenience constructors NewSandbox,
// NewProduction, and NewWithToken that wrap New with the appropriate
// configuration.
package dwollaclient
