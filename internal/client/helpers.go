package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"

	"github.com/fivetwenty-io/dwolla-client/internal/constants"
	"github.com/fivetwenty-io/dwolla-client/internal/transport"
	"github.com/fivetwenty-io/dwolla-client/pkg/dwolla"
)

// statusUpdateRequest flips a resource's status in place.
type statusUpdateRequest struct {
	Status string `json:"status"`
}

// decodeResponse unmarshals a response body into out. A nil out or an
// empty body is a no-op.
func decodeResponse(resp *transport.Response, out interface{}) error {
	if out == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}

	err := json.Unmarshal(resp.Body, out)
	if err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	return nil
}

// followCreated resolves the resource produced by a create request.
// The API usually answers 201 with an empty body and a Location header
// naming the new resource, which is then fetched with a GET. A
// non-empty body is decoded directly.
func followCreated[T any](ctx context.Context, httpClient *transport.Client, resp *transport.Response) (*T, error) {
	var resource T

	if len(bytes.TrimSpace(resp.Body)) > 0 {
		err := json.Unmarshal(resp.Body, &resource)
		if err != nil {
			return nil, fmt.Errorf("parsing create response: %w", err)
		}

		return &resource, nil
	}

	location := resp.Headers.Get(constants.HeaderLocation)
	if location == "" {
		return nil, dwolla.ErrNoLocationHeader
	}

	getResp, err := httpClient.Get(ctx, location, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching created resource: %w", err)
	}

	err = json.Unmarshal(getResp.Body, &resource)
	if err != nil {
		return nil, fmt.Errorf("parsing created resource: %w", err)
	}

	return &resource, nil
}

// encodeDocumentForm encodes a document upload as multipart/form-data
// with a documentType field and a file part.
func encodeDocumentForm(upload *dwolla.DocumentUploadRequest) ([]byte, string, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	err := writer.WriteField("documentType", upload.DocumentType)
	if err != nil {
		return nil, "", fmt.Errorf("writing documentType field: %w", err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, upload.FileName))

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("creating file part: %w", err)
	}

	_, err = io.Copy(part, upload.File)
	if err != nil {
		return nil, "", fmt.Errorf("writing file part: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
