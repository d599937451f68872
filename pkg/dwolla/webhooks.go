package dwolla

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// SignatureHeader is the request header carrying the HMAC-SHA256
// signature of a webhook payload.
const SignatureHeader = "X-Request-Signature-SHA-256"

// Static errors for err113 compliance.
var (
	// ErrInvalidWebhookSignature is returned when a webhook payload does
	// not match its signature header.
	ErrInvalidWebhookSignature = errors.New("webhook signature does not match payload")
)

// ComputeWebhookSignature returns the lowercase hex HMAC-SHA256 of
// body, keyed by the webhook subscription secret.
func ComputeWebhookSignature(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookSignature checks a webhook payload against the value of
// its X-Request-Signature-SHA-256 header. The comparison is constant
// time. Payloads that fail verification must be discarded.
func VerifyWebhookSignature(secret, signature string, body []byte) error {
	expected := ComputeWebhookSignature(secret, body)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
		return ErrInvalidWebhookSignature
	}

	return nil
}
