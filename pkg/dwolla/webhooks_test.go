package dwolla

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWebhookSignature(t *testing.T) {
	// Known HMAC-SHA256 vector: key "key", message
	// "The quick brown fox jumps over the lazy dog".
	signature := ComputeWebhookSignature("key", []byte("The quick brown fox jumps over the lazy dog"))

	assert.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", signature)
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "webhook-secret"
	body := []byte(`{"id":"evt-1","topic":"transfer_completed","resourceId":"t-1"}`)
	signature := ComputeWebhookSignature(secret, body)

	t.Run("valid signature", func(t *testing.T) {
		require.NoError(t, VerifyWebhookSignature(secret, signature, body))
	})

	t.Run("uppercase hex accepted", func(t *testing.T) {
		require.NoError(t, VerifyWebhookSignature(secret, strings.ToUpper(signature), body))
	})

	t.Run("tampered payload", func(t *testing.T) {
		tampered := []byte(`{"id":"evt-1","topic":"transfer_completed","resourceId":"t-2"}`)

		err := VerifyWebhookSignature(secret, signature, tampered)
		assert.ErrorIs(t, err, ErrInvalidWebhookSignature)
	})

	t.Run("wrong secret", func(t *testing.T) {
		err := VerifyWebhookSignature("other-secret", signature, body)
		assert.ErrorIs(t, err, ErrInvalidWebhookSignature)
	})

	t.Run("empty signature", func(t *testing.T) {
		err := VerifyWebhookSignature(secret, "", body)
		assert.ErrorIs(t, err, ErrInvalidWebhookSignature)
	})
}

func TestNewIdempotencyKey(t *testing.T) {
	first := NewIdempotencyKey()
	second := NewIdempotencyKey()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
