package dwolla

import (
	"io"
	"time"
)

// Root represents the API root document. Its links point at the
// resources available to the authorized application.
type Root struct {
	Resource
}

// AccountHref returns the URL of the master account, or "" when the
// token is not an application token.
func (r *Root) AccountHref() string {
	return r.Links.Href("account")
}

// AccountID returns the id of the master account.
func (r *Root) AccountID() string {
	return ResourceIDFromHref(r.AccountHref())
}

// Account represents the master account of the authorized application.
type Account struct {
	Resource

	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Customer types.
const (
	CustomerTypeUnverified  = "unverified"
	CustomerTypePersonal    = "personal"
	CustomerTypeBusiness    = "business"
	CustomerTypeReceiveOnly = "receive-only"
)

// Customer statuses.
const (
	CustomerStatusUnverified  = "unverified"
	CustomerStatusRetry       = "retry"
	CustomerStatusDocument    = "document"
	CustomerStatusVerified    = "verified"
	CustomerStatusSuspended   = "suspended"
	CustomerStatusDeactivated = "deactivated"
	CustomerStatusReactivated = "reactivated"
)

// Customer represents an end user on whose behalf funds move.
type Customer struct {
	Resource

	ID            string      `json:"id"                      yaml:"id"`
	FirstName     string      `json:"firstName"               yaml:"firstName"`
	LastName      string      `json:"lastName"                yaml:"lastName"`
	Email         string      `json:"email"                   yaml:"email"`
	Type          string      `json:"type"                    yaml:"type"`
	Status        string      `json:"status"                  yaml:"status"`
	Created       time.Time   `json:"created"                 yaml:"created"`
	BusinessName  string      `json:"businessName,omitempty"  yaml:"businessName,omitempty"`
	CorrelationID string      `json:"correlationId,omitempty" yaml:"correlationId,omitempty"`
	Address1      string      `json:"address1,omitempty"      yaml:"address1,omitempty"`
	Address2      string      `json:"address2,omitempty"      yaml:"address2,omitempty"`
	City          string      `json:"city,omitempty"          yaml:"city,omitempty"`
	State         string      `json:"state,omitempty"         yaml:"state,omitempty"`
	PostalCode    string      `json:"postalCode,omitempty"    yaml:"postalCode,omitempty"`
	Phone         string      `json:"phone,omitempty"         yaml:"phone,omitempty"`
	Controller    *Controller `json:"controller,omitempty"    yaml:"controller,omitempty"`
}

// CustomerCreateRequest represents a request to create a customer.
// Only FirstName, LastName and Email are required for an unverified
// customer; the remaining fields apply to verified personal and
// business customers.
type CustomerCreateRequest struct {
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName"  yaml:"lastName"`
	Email     string `json:"email"     yaml:"email"`
	// Type selects the customer kind; empty means unverified.
	Type      string `json:"type,omitempty"      yaml:"type,omitempty"`
	IPAddress string `json:"ipAddress,omitempty" yaml:"ipAddress,omitempty"`
	Phone     string `json:"phone,omitempty"     yaml:"phone,omitempty"`
	// CorrelationId ties the customer to a record in the caller's system.
	CorrelationID string `json:"correlationId,omitempty" yaml:"correlationId,omitempty"`
	// Verified personal customer fields.
	Address1    string `json:"address1,omitempty"    yaml:"address1,omitempty"`
	Address2    string `json:"address2,omitempty"    yaml:"address2,omitempty"`
	City        string `json:"city,omitempty"        yaml:"city,omitempty"`
	State       string `json:"state,omitempty"       yaml:"state,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"  yaml:"postalCode,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty" yaml:"dateOfBirth,omitempty"`
	// SSN is the full or last-four social security number.
	SSN string `json:"ssn,omitempty" yaml:"ssn,omitempty"`
	// Business customer fields.
	BusinessName           string      `json:"businessName,omitempty"           yaml:"businessName,omitempty"`
	DoingBusinessAs        string      `json:"doingBusinessAs,omitempty"        yaml:"doingBusinessAs,omitempty"`
	BusinessType           string      `json:"businessType,omitempty"           yaml:"businessType,omitempty"`
	BusinessClassification string      `json:"businessClassification,omitempty" yaml:"businessClassification,omitempty"`
	EIN                    string      `json:"ein,omitempty"                    yaml:"ein,omitempty"`
	Website                string      `json:"website,omitempty"                yaml:"website,omitempty"`
	Controller             *Controller `json:"controller,omitempty"             yaml:"controller,omitempty"`
}

// CustomerUpdateRequest represents a request to update a customer.
// Empty fields are left unchanged. Setting Type together with the
// identity fields upgrades an unverified customer to a verified one.
type CustomerUpdateRequest struct {
	FirstName string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"  yaml:"lastName,omitempty"`
	Email     string `json:"email,omitempty"     yaml:"email,omitempty"`
	Type      string `json:"type,omitempty"      yaml:"type,omitempty"`
	IPAddress string `json:"ipAddress,omitempty" yaml:"ipAddress,omitempty"`
	Phone     string `json:"phone,omitempty"     yaml:"phone,omitempty"`
	Address1  string `json:"address1,omitempty"  yaml:"address1,omitempty"`
	Address2  string `json:"address2,omitempty"  yaml:"address2,omitempty"`
	City      string `json:"city,omitempty"      yaml:"city,omitempty"`
	State     string `json:"state,omitempty"     yaml:"state,omitempty"`
	// PostalCode, DateOfBirth and SSN are required when upgrading to a
	// verified personal customer.
	PostalCode   string `json:"postalCode,omitempty"   yaml:"postalCode,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"  yaml:"dateOfBirth,omitempty"`
	SSN          string `json:"ssn,omitempty"          yaml:"ssn,omitempty"`
	BusinessName string `json:"businessName,omitempty" yaml:"businessName,omitempty"`
	Website      string `json:"website,omitempty"      yaml:"website,omitempty"`
}

// Controller represents the controller of a verified business customer.
type Controller struct {
	FirstName   string                `json:"firstName"             yaml:"firstName"`
	LastName    string                `json:"lastName"              yaml:"lastName"`
	Title       string                `json:"title"                 yaml:"title"`
	DateOfBirth string                `json:"dateOfBirth,omitempty" yaml:"dateOfBirth,omitempty"`
	SSN         string                `json:"ssn,omitempty"         yaml:"ssn,omitempty"`
	Address     *InternationalAddress `json:"address,omitempty"     yaml:"address,omitempty"`
	Passport    *Passport             `json:"passport,omitempty"    yaml:"passport,omitempty"`
}

// InternationalAddress represents a postal address that may sit
// outside the US.
type InternationalAddress struct {
	Address1            string `json:"address1"             yaml:"address1"`
	Address2            string `json:"address2,omitempty"   yaml:"address2,omitempty"`
	Address3            string `json:"address3,omitempty"   yaml:"address3,omitempty"`
	City                string `json:"city"                 yaml:"city"`
	StateProvinceRegion string `json:"stateProvinceRegion"  yaml:"stateProvinceRegion"`
	Country             string `json:"country"              yaml:"country"`
	PostalCode          string `json:"postalCode,omitempty" yaml:"postalCode,omitempty"`
}

// Passport identifies a non-US person.
type Passport struct {
	Number  string `json:"number"  yaml:"number"`
	Country string `json:"country" yaml:"country"`
}

// Funding source types and statuses.
const (
	FundingSourceTypeBank    = "bank"
	FundingSourceTypeBalance = "balance"

	FundingSourceStatusUnverified = "unverified"
	FundingSourceStatusVerified   = "verified"

	BankAccountTypeChecking = "checking"
	BankAccountTypeSavings  = "savings"
)

// FundingSource represents a bank account or balance attached to a
// customer.
type FundingSource struct {
	Resource

	ID              string    `json:"id"                        yaml:"id"`
	Status          string    `json:"status"                    yaml:"status"`
	Type            string    `json:"type"                      yaml:"type"`
	BankAccountType string    `json:"bankAccountType,omitempty" yaml:"bankAccountType,omitempty"`
	Name            string    `json:"name"                      yaml:"name"`
	BankName        string    `json:"bankName,omitempty"        yaml:"bankName,omitempty"`
	Created         time.Time `json:"created"                   yaml:"created"`
	Removed         bool      `json:"removed"                   yaml:"removed"`
	Channels        []string  `json:"channels,omitempty"        yaml:"channels,omitempty"`
	Fingerprint     string    `json:"fingerprint,omitempty"     yaml:"fingerprint,omitempty"`
}

// FundingSourceCreateRequest represents a request to attach a bank
// account to a customer.
type FundingSourceCreateRequest struct {
	RoutingNumber   string `json:"routingNumber,omitempty"   yaml:"routingNumber,omitempty"`
	AccountNumber   string `json:"accountNumber,omitempty"   yaml:"accountNumber,omitempty"`
	BankAccountType string `json:"bankAccountType,omitempty" yaml:"bankAccountType,omitempty"`
	Name            string `json:"name"                      yaml:"name"`
	// PlaidToken attaches a bank account verified through Plaid instead
	// of raw account and routing numbers.
	PlaidToken string   `json:"plaidToken,omitempty" yaml:"plaidToken,omitempty"`
	Channels   []string `json:"channels,omitempty"   yaml:"channels,omitempty"`
}

// FundingSourceUpdateRequest represents a request to update a funding
// source. Empty fields are left unchanged.
type FundingSourceUpdateRequest struct {
	Name            string `json:"name,omitempty"            yaml:"name,omitempty"`
	BankAccountType string `json:"bankAccountType,omitempty" yaml:"bankAccountType,omitempty"`
	RoutingNumber   string `json:"routingNumber,omitempty"   yaml:"routingNumber,omitempty"`
	AccountNumber   string `json:"accountNumber,omitempty"   yaml:"accountNumber,omitempty"`
}

// Balance represents the balance of a balance funding source.
type Balance struct {
	Resource

	Balance     Amount    `json:"balance"         yaml:"balance"`
	Total       *Amount   `json:"total,omitempty" yaml:"total,omitempty"`
	LastUpdated time.Time `json:"lastUpdated"     yaml:"lastUpdated"`
}

// Micro-deposit statuses.
const (
	MicroDepositsStatusPending   = "pending"
	MicroDepositsStatusProcessed = "processed"
	MicroDepositsStatusFailed    = "failed"
)

// MicroDeposits represents the state of micro-deposit verification on
// a funding source.
type MicroDeposits struct {
	Resource

	Created time.Time             `json:"created"           yaml:"created"`
	Status  string                `json:"status"            yaml:"status"`
	Failure *MicroDepositsFailure `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// MicroDepositsFailure describes why micro-deposits failed to post.
type MicroDepositsFailure struct {
	Code        string `json:"code"        yaml:"code"`
	Description string `json:"description" yaml:"description"`
}

// MicroDepositsVerifyRequest represents the two amounts a customer
// observed on their bank statement.
type MicroDepositsVerifyRequest struct {
	Amount1 Amount `json:"amount1" yaml:"amount1"`
	Amount2 Amount `json:"amount2" yaml:"amount2"`
}

// Transfer statuses.
const (
	TransferStatusPending   = "pending"
	TransferStatusProcessed = "processed"
	TransferStatusCancelled = "cancelled"
	TransferStatusFailed    = "failed"
)

// Transfer represents a movement of funds between two funding sources.
type Transfer struct {
	Resource

	ID              string            `json:"id"                        yaml:"id"`
	Status          string            `json:"status"                    yaml:"status"`
	Amount          Amount            `json:"amount"                    yaml:"amount"`
	Created         time.Time         `json:"created"                   yaml:"created"`
	Metadata        map[string]string `json:"metadata,omitempty"        yaml:"metadata,omitempty"`
	Clearing        *Clearing         `json:"clearing,omitempty"        yaml:"clearing,omitempty"`
	CorrelationID   string            `json:"correlationId,omitempty"   yaml:"correlationId,omitempty"`
	IndividualACHID string            `json:"individualAchId,omitempty" yaml:"individualAchId,omitempty"`
}

// TransferCreateRequest represents a request to move funds. Links must
// carry "source" and "destination" relations pointing at funding
// sources; TransferLinks builds them.
type TransferCreateRequest struct {
	Links    Links             `json:"_links"             yaml:"_links"`
	Amount   Amount            `json:"amount"             yaml:"amount"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Fees     []Fee             `json:"fees,omitempty"     yaml:"fees,omitempty"`
	Clearing *Clearing         `json:"clearing,omitempty" yaml:"clearing,omitempty"`
	// CorrelationId ties the transfer to a record in the caller's system.
	CorrelationID string `json:"correlationId,omitempty" yaml:"correlationId,omitempty"`
}

// TransferLinks builds the source and destination links of a transfer
// request from funding source URLs.
func TransferLinks(source, destination string) Links {
	return Links{
		"source":      Link{Href: source},
		"destination": Link{Href: destination},
	}
}

// Fee represents a facilitator fee charged on a transfer. The link
// must carry a "charge-to" relation.
type Fee struct {
	Links  Links  `json:"_links" yaml:"_links"`
	Amount Amount `json:"amount" yaml:"amount"`
}

// Clearing selects processing speed per leg ("next-available" selects
// same-day clearing where available).
type Clearing struct {
	Source      string `json:"source,omitempty"      yaml:"source,omitempty"`
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`
}

// TransferFailure explains why a transfer failed, keyed by an ACH
// return code such as "R01".
type TransferFailure struct {
	Resource

	Code        string `json:"code"        yaml:"code"`
	Description string `json:"description" yaml:"description"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// Document types and statuses.
const (
	DocumentTypePassport = "passport"
	DocumentTypeLicense  = "license"
	DocumentTypeIDCard   = "idCard"
	DocumentTypeOther    = "other"

	DocumentStatusPending  = "pending"
	DocumentStatusReviewed = "reviewed"
)

// Document represents an identity verification document uploaded for a
// customer or beneficial owner.
type Document struct {
	Resource

	ID                string                  `json:"id"                          yaml:"id"`
	Status            string                  `json:"status"                      yaml:"status"`
	Type              string                  `json:"type"                        yaml:"type"`
	Created           time.Time               `json:"created"                     yaml:"created"`
	FailureReason     string                  `json:"failureReason,omitempty"     yaml:"failureReason,omitempty"`
	AllFailureReasons []DocumentFailureReason `json:"allFailureReasons,omitempty" yaml:"allFailureReasons,omitempty"`
}

// DocumentFailureReason describes one reason a document was rejected.
type DocumentFailureReason struct {
	Reason      string `json:"reason"      yaml:"reason"`
	Description string `json:"description" yaml:"description"`
}

// DocumentUploadRequest carries the multipart payload of a document
// upload. It is encoded as multipart/form-data, not JSON.
type DocumentUploadRequest struct {
	// DocumentType is one of the DocumentType constants.
	DocumentType string
	// FileName is sent as the filename of the file part.
	FileName string
	// File supplies the document content.
	File io.Reader
	// ContentType sets the media type of the file part; empty defaults
	// to application/octet-stream.
	ContentType string
}

// Beneficial owner verification statuses.
const (
	BeneficialOwnerStatusVerified   = "verified"
	BeneficialOwnerStatusDocument   = "document"
	BeneficialOwnerStatusIncomplete = "incomplete"
)

// Beneficial ownership certification statuses.
const (
	CertificationStatusUncertified = "uncertified"
	CertificationStatusCertified   = "certified"
	CertificationStatusRecertify   = "recertify"
)

// BeneficialOwner represents an individual owning 25% or more of a
// business customer.
type BeneficialOwner struct {
	Resource

	ID                 string                `json:"id"                 yaml:"id"`
	FirstName          string                `json:"firstName"          yaml:"firstName"`
	LastName           string                `json:"lastName"           yaml:"lastName"`
	Created            time.Time             `json:"created"            yaml:"created"`
	VerificationStatus string                `json:"verificationStatus" yaml:"verificationStatus"`
	Address            *InternationalAddress `json:"address,omitempty"  yaml:"address,omitempty"`
}

// BeneficialOwnerCreateRequest represents a request to add a
// beneficial owner to a business customer. Either SSN or Passport must
// be supplied.
type BeneficialOwnerCreateRequest struct {
	FirstName   string               `json:"firstName"          yaml:"firstName"`
	LastName    string               `json:"lastName"           yaml:"lastName"`
	DateOfBirth string               `json:"dateOfBirth"        yaml:"dateOfBirth"`
	SSN         string               `json:"ssn,omitempty"      yaml:"ssn,omitempty"`
	Address     InternationalAddress `json:"address"            yaml:"address"`
	Passport    *Passport            `json:"passport,omitempty" yaml:"passport,omitempty"`
}

// BeneficialOwnership represents the certification state of a business
// customer's ownership information.
type BeneficialOwnership struct {
	Resource

	Status string `json:"status" yaml:"status"`
}

// BusinessClassification represents an industry grouping. Its embedded
// industry classifications are the values accepted when creating
// business customers.
type BusinessClassification struct {
	Resource

	ID       string                          `json:"id"                  yaml:"id"`
	Name     string                          `json:"name"                yaml:"name"`
	Embedded *BusinessClassificationEmbedded `json:"_embedded,omitempty" yaml:"_embedded,omitempty"`
}

// BusinessClassificationEmbedded holds the industry classifications of
// a business classification.
type BusinessClassificationEmbedded struct {
	IndustryClassifications []IndustryClassification `json:"industry-classifications" yaml:"industry-classifications"`
}

// IndustryClassification represents a single industry within a
// business classification.
type IndustryClassification struct {
	ID   string `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Mass payment statuses.
const (
	MassPaymentStatusDeferred   = "deferred"
	MassPaymentStatusPending    = "pending"
	MassPaymentStatusProcessing = "processing"
	MassPaymentStatusComplete   = "complete"
	MassPaymentStatusCancelled  = "cancelled"
)

// MassPayment represents a batch of transfers from a single source.
type MassPayment struct {
	Resource

	ID            string            `json:"id"                      yaml:"id"`
	Status        string            `json:"status"                  yaml:"status"`
	Created       time.Time         `json:"created"                 yaml:"created"`
	Metadata      map[string]string `json:"metadata,omitempty"      yaml:"metadata,omitempty"`
	CorrelationID string            `json:"correlationId,omitempty" yaml:"correlationId,omitempty"`
	Total         *Amount           `json:"total,omitempty"         yaml:"total,omitempty"`
	TotalFees     *Amount           `json:"totalFees,omitempty"     yaml:"totalFees,omitempty"`
}

// MassPaymentCreateRequest represents a request to create a mass
// payment. Links must carry a "source" relation; MassPaymentLinks
// builds it.
type MassPaymentCreateRequest struct {
	Links    Links                    `json:"_links"             yaml:"_links"`
	Items    []MassPaymentItemRequest `json:"items"              yaml:"items"`
	Metadata map[string]string        `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	// Status may be set to "deferred" to create the mass payment without
	// processing it.
	Status        string `json:"status,omitempty"        yaml:"status,omitempty"`
	CorrelationID string `json:"correlationId,omitempty" yaml:"correlationId,omitempty"`
}

// MassPaymentLinks builds the source link of a mass payment request
// from a funding source URL.
func MassPaymentLinks(source string) Links {
	return Links{
		"source": Link{Href: source},
	}
}

// MassPaymentItemRequest represents one payout within a mass payment.
// Links must carry a "destination" relation.
type MassPaymentItemRequest struct {
	Links         Links             `json:"_links"                  yaml:"_links"`
	Amount        Amount            `json:"amount"                  yaml:"amount"`
	Metadata      map[string]string `json:"metadata,omitempty"      yaml:"metadata,omitempty"`
	CorrelationID string            `json:"correlationId,omitempty" yaml:"correlationId,omitempty"`
}

// Mass payment item statuses.
const (
	MassPaymentItemStatusPending = "pending"
	MassPaymentItemStatusSuccess = "success"
	MassPaymentItemStatusFailed  = "failed"
)

// MassPaymentItem represents the processing state of one payout within
// a mass payment.
type MassPaymentItem struct {
	Resource

	ID            string            `json:"id"                      yaml:"id"`
	Status        string            `json:"status"                  yaml:"status"`
	Amount        Amount            `json:"amount"                  yaml:"amount"`
	Metadata      map[string]string `json:"metadata,omitempty"      yaml:"metadata,omitempty"`
	CorrelationID string            `json:"correlationId,omitempty" yaml:"correlationId,omitempty"`
}

// WebhookSubscription represents a registered webhook endpoint.
type WebhookSubscription struct {
	Resource

	ID      string    `json:"id"      yaml:"id"`
	URL     string    `json:"url"     yaml:"url"`
	Paused  bool      `json:"paused"  yaml:"paused"`
	Created time.Time `json:"created" yaml:"created"`
}

// WebhookSubscriptionCreateRequest represents a request to register a
// webhook endpoint. The secret signs every delivered payload.
type WebhookSubscriptionCreateRequest struct {
	URL    string `json:"url"    yaml:"url"`
	Secret string `json:"secret" yaml:"secret"`
}

// Webhook represents one delivery attempt record for an event.
type Webhook struct {
	Resource

	ID             string           `json:"id"             yaml:"id"`
	Topic          string           `json:"topic"          yaml:"topic"`
	AccountID      string           `json:"accountId"      yaml:"accountId"`
	EventID        string           `json:"eventId"        yaml:"eventId"`
	SubscriptionID string           `json:"subscriptionId" yaml:"subscriptionId"`
	Attempts       []WebhookAttempt `json:"attempts"       yaml:"attempts"`
}

// WebhookAttempt represents a single HTTP delivery attempt.
type WebhookAttempt struct {
	ID       string              `json:"id"       yaml:"id"`
	Request  WebhookHTTPRequest  `json:"request"  yaml:"request"`
	Response WebhookHTTPResponse `json:"response" yaml:"response"`
}

// WebhookHTTPRequest captures the outbound half of a delivery attempt.
type WebhookHTTPRequest struct {
	Timestamp time.Time       `json:"timestamp" yaml:"timestamp"`
	URL       string          `json:"url"       yaml:"url"`
	Headers   []WebhookHeader `json:"headers"   yaml:"headers"`
	Body      string          `json:"body"      yaml:"body"`
}

// WebhookHTTPResponse captures the endpoint's answer to a delivery
// attempt.
type WebhookHTTPResponse struct {
	Timestamp  time.Time       `json:"timestamp"  yaml:"timestamp"`
	Headers    []WebhookHeader `json:"headers"    yaml:"headers"`
	StatusCode int             `json:"statusCode" yaml:"statusCode"`
	Body       string          `json:"body"       yaml:"body"`
}

// WebhookHeader is one HTTP header recorded on a delivery attempt.
type WebhookHeader struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// WebhookRetry represents a requested redelivery of a webhook.
type WebhookRetry struct {
	Resource

	ID        string    `json:"id"        yaml:"id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Event represents something that happened in the platform, such as a
// completed transfer or a verified customer.
type Event struct {
	Resource

	ID         string    `json:"id"         yaml:"id"`
	Created    time.Time `json:"created"    yaml:"created"`
	Topic      string    `json:"topic"      yaml:"topic"`
	ResourceID string    `json:"resourceId" yaml:"resourceId"`
}

// List response aliases for the collection endpoints.
type (
	CustomerList               = ListResponse[Customer]
	FundingSourceList          = ListResponse[FundingSource]
	TransferList               = ListResponse[Transfer]
	DocumentList               = ListResponse[Document]
	BeneficialOwnerList        = ListResponse[BeneficialOwner]
	BusinessClassificationList = ListResponse[BusinessClassification]
	MassPaymentItemList        = ListResponse[MassPaymentItem]
	WebhookSubscriptionList    = ListResponse[WebhookSubscription]
	WebhookList                = ListResponse[Webhook]
	WebhookRetryList           = ListResponse[WebhookRetry]
	EventList                  = ListResponse[Event]
)
