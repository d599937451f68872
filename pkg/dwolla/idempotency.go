package dwolla

import "github.com/google/uuid"

// IdempotencyKeyHeader is the request header that deduplicates
// replayed create requests. The API answers a replay carrying a known
// key with the original response instead of creating a second resource.
const IdempotencyKeyHeader = "Idempotency-Key"

// NewIdempotencyKey returns a random key for the Idempotency-Key
// header. The library never adds the header on its own; generate a key
// per logical operation and pass it to Create explicitly, reusing it
// on application-level retries.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
