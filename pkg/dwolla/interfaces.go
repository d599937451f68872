package dwolla

import "context"

// RootClient accesses the API root document.
type RootClient interface {
	// Get fetches the root document, whose links name the resources
	// available to the authorized application.
	Get(ctx context.Context) (*Root, error)
}

// AccountsClient accesses the master account.
type AccountsClient interface {
	// Get fetches an account by id.
	Get(ctx context.Context, accountID string) (*Account, error)
}

// CustomersClient manages customers.
type CustomersClient interface {
	// Create creates a new customer and returns the created resource.
	Create(ctx context.Context, request *CustomerCreateRequest) (*Customer, error)

	// Get fetches a customer by id.
	Get(ctx context.Context, customerID string) (*Customer, error)

	// List pages through customers. A nil params uses server defaults.
	List(ctx context.Context, params *QueryParams) (*CustomerList, error)

	// Update modifies a customer's profile fields.
	Update(ctx context.Context, customerID string, request *CustomerUpdateRequest) (*Customer, error)

	// Deactivate blocks a customer from sending or receiving funds.
	Deactivate(ctx context.Context, customerID string) (*Customer, error)

	// Reactivate restores a deactivated customer.
	Reactivate(ctx context.Context, customerID string) (*Customer, error)

	// Suspend suspends a customer pending review.
	Suspend(ctx context.Context, customerID string) (*Customer, error)
}

// FundingSourcesClient manages funding sources and their verification.
type FundingSourcesClient interface {
	// CreateForCustomer attaches a bank account to a customer.
	CreateForCustomer(ctx context.Context, customerID string, request *FundingSourceCreateRequest) (*FundingSource, error)

	// Get fetches a funding source by id.
	Get(ctx context.Context, fundingSourceID string) (*FundingSource, error)

	// ListForCustomer lists a customer's funding sources. Removed
	// sources are included when params asks for them.
	ListForCustomer(ctx context.Context, customerID string, params *QueryParams) (*FundingSourceList, error)

	// Update modifies an unverified funding source.
	Update(ctx context.Context, fundingSourceID string, request *FundingSourceUpdateRequest) (*FundingSource, error)

	// Remove soft-deletes a funding source. Removed sources stay
	// readable but can no longer move funds.
	Remove(ctx context.Context, fundingSourceID string) (*FundingSource, error)

	// GetBalance fetches the balance of a balance funding source.
	GetBalance(ctx context.Context, fundingSourceID string) (*Balance, error)

	// InitiateMicroDeposits starts micro-deposit verification.
	InitiateMicroDeposits(ctx context.Context, fundingSourceID string) (*MicroDeposits, error)

	// GetMicroDeposits reports the state of micro-deposit verification.
	GetMicroDeposits(ctx context.Context, fundingSourceID string) (*MicroDeposits, error)

	// VerifyMicroDeposits confirms the two posted amounts.
	VerifyMicroDeposits(ctx context.Context, fundingSourceID string, request *MicroDepositsVerifyRequest) error
}

// TransfersClient moves funds between funding sources.
type TransfersClient interface {
	// Create initiates a transfer. idempotencyKey deduplicates replayed
	// requests; pass "" to skip the header or NewIdempotencyKey() for a
	// fresh key.
	Create(ctx context.Context, request *TransferCreateRequest, idempotencyKey string) (*Transfer, error)

	// Get fetches a transfer by id.
	Get(ctx context.Context, transferID string) (*Transfer, error)

	// ListForCustomer lists a customer's transfers.
	ListForCustomer(ctx context.Context, customerID string, params *QueryParams) (*TransferList, error)

	// Cancel cancels a pending transfer.
	Cancel(ctx context.Context, transferID string) (*Transfer, error)

	// GetFailure explains why a transfer failed.
	GetFailure(ctx context.Context, transferID string) (*TransferFailure, error)
}

// DocumentsClient manages identity verification documents.
type DocumentsClient interface {
	// UploadForCustomer uploads a verification document for a customer.
	UploadForCustomer(ctx context.Context, customerID string, upload *DocumentUploadRequest) (*Document, error)

	// UploadForBeneficialOwner uploads a verification document for a
	// beneficial owner.
	UploadForBeneficialOwner(ctx context.Context, ownerID string, upload *DocumentUploadRequest) (*Document, error)

	// Get fetches a document by id.
	Get(ctx context.Context, documentID string) (*Document, error)

	// ListForCustomer lists a customer's documents.
	ListForCustomer(ctx context.Context, customerID string) (*DocumentList, error)
}

// BeneficialOwnersClient manages the owners of business customers.
type BeneficialOwnersClient interface {
	// CreateForCustomer adds a beneficial owner to a business customer.
	CreateForCustomer(ctx context.Context, customerID string, request *BeneficialOwnerCreateRequest) (*BeneficialOwner, error)

	// Get fetches a beneficial owner by id.
	Get(ctx context.Context, ownerID string) (*BeneficialOwner, error)

	// Update replaces a beneficial owner's information, restarting
	// verification.
	Update(ctx context.Context, ownerID string, request *BeneficialOwnerCreateRequest) (*BeneficialOwner, error)

	// Delete removes a beneficial owner.
	Delete(ctx context.Context, ownerID string) error

	// ListForCustomer lists a business customer's beneficial owners.
	ListForCustomer(ctx context.Context, customerID string) (*BeneficialOwnerList, error)

	// GetOwnership reports the certification state of a business
	// customer's ownership information.
	GetOwnership(ctx context.Context, customerID string) (*BeneficialOwnership, error)

	// CertifyOwnership certifies that the submitted ownership
	// information is complete and correct.
	CertifyOwnership(ctx context.Context, customerID string) (*BeneficialOwnership, error)
}

// BusinessClassificationsClient lists the industry classifications
// accepted when creating business customers.
type BusinessClassificationsClient interface {
	// List fetches all business classifications.
	List(ctx context.Context) (*BusinessClassificationList, error)

	// Get fetches a business classification by id.
	Get(ctx context.Context, classificationID string) (*BusinessClassification, error)
}

// MassPaymentsClient manages batched payouts.
type MassPaymentsClient interface {
	// Create initiates a mass payment. idempotencyKey deduplicates
	// replayed requests; pass "" to skip the header.
	Create(ctx context.Context, request *MassPaymentCreateRequest, idempotencyKey string) (*MassPayment, error)

	// Get fetches a mass payment by id.
	Get(ctx context.Context, massPaymentID string) (*MassPayment, error)

	// UpdateStatus moves a mass payment between states, such as
	// releasing a deferred mass payment to pending.
	UpdateStatus(ctx context.Context, massPaymentID, status string) (*MassPayment, error)

	// ListItems pages through the items of a mass payment.
	ListItems(ctx context.Context, massPaymentID string, params *QueryParams) (*MassPaymentItemList, error)

	// GetItem fetches a single mass payment item by id.
	GetItem(ctx context.Context, itemID string) (*MassPaymentItem, error)
}

// WebhookSubscriptionsClient manages webhook endpoints.
type WebhookSubscriptionsClient interface {
	// Create registers a webhook endpoint.
	Create(ctx context.Context, request *WebhookSubscriptionCreateRequest) (*WebhookSubscription, error)

	// Get fetches a webhook subscription by id.
	Get(ctx context.Context, subscriptionID string) (*WebhookSubscription, error)

	// List fetches all webhook subscriptions.
	List(ctx context.Context) (*WebhookSubscriptionList, error)

	// Delete unregisters a webhook subscription.
	Delete(ctx context.Context, subscriptionID string) error

	// Pause stops deliveries without unregistering the subscription.
	Pause(ctx context.Context, subscriptionID string) (*WebhookSubscription, error)

	// Unpause resumes deliveries.
	Unpause(ctx context.Context, subscriptionID string) (*WebhookSubscription, error)
}

// WebhooksClient inspects webhook delivery records.
type WebhooksClient interface {
	// Get fetches a webhook delivery record by id.
	Get(ctx context.Context, webhookID string) (*Webhook, error)

	// ListForSubscription pages through a subscription's deliveries.
	ListForSubscription(ctx context.Context, subscriptionID string, params *QueryParams) (*WebhookList, error)

	// ListRetries lists the requested redeliveries of a webhook.
	ListRetries(ctx context.Context, webhookID string) (*WebhookRetryList, error)

	// Retry requests a redelivery of a webhook.
	Retry(ctx context.Context, webhookID string) (*WebhookRetry, error)
}

// EventsClient reads the platform event stream.
type EventsClient interface {
	// List pages through events, newest first.
	List(ctx context.Context, params *QueryParams) (*EventList, error)

	// Get fetches an event by id.
	Get(ctx context.Context, eventID string) (*Event, error)
}
