package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// DocumentsClient implements dwolla.DocumentsClient.
type DocumentsClient struct {
	httpClient *transport.Client
}

// NewDocumentsClient creates a new documents client.
func NewDocumentsClient(httpClient *transport.Client) *DocumentsClient {
	return &DocumentsClient{httpClient: httpClient}
}

// UploadForCustomer implements dwolla.DocumentsClient.UploadForCustomer.
func (c *DocumentsClient) UploadForCustomer(ctx context.Context, customerID string, upload *dwolla.DocumentUploadRequest) (*dwolla.Document, error) {
	path := fmt.Sprintf("/customers/%s/documents", customerID)

	return c.upload(ctx, path, upload)
}

// UploadForBeneficialOwner implements dwolla.DocumentsClient.UploadForBeneficialOwner.
func (c *DocumentsClient) UploadForBeneficialOwner(ctx context.Context, ownerID string, upload *dwolla.DocumentUploadRequest) (*dwolla.Document, error) {
	path := fmt.Sprintf("/beneficial-owners/%s/documents", ownerID)

	return c.upload(ctx, path, upload)
}

// Get implements dwolla.DocumentsClient.Get.
func (c *DocumentsClient) Get(ctx context.Context, documentID string) (*dwolla.Document, error) {
	path := fmt.Sprintf("/documents/%s", documentID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	var document dwolla.Document

	err = json.Unmarshal(resp.Body, &document)
	if err != nil {
		return nil, fmt.Errorf("parsing document response: %w", err)
	}

	return &document, nil
}

// ListForCustomer implements dwolla.DocumentsClient.ListForCustomer.
func (c *DocumentsClient) ListForCustomer(ctx context.Context, customerID string) (*dwolla.DocumentList, error) {
	path := fmt.Sprintf("/customers/%s/documents", customerID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	var list dwolla.DocumentList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing document list response: %w", err)
	}

	return &list, nil
}

// upload encodes the document as multipart/form-data and posts it.
func (c *DocumentsClient) upload(ctx context.Context, path string, upload *dwolla.DocumentUploadRequest) (*dwolla.Document, error) {
	form, contentType, err := encodeDocumentForm(upload)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.PostRaw(ctx, path, form, contentType)
	if err != nil {
		return nil, fmt.Errorf("uploading document: %w", err)
	}

	return followCreated[dwolla.Document](ctx, c.httpClient, resp)
}
