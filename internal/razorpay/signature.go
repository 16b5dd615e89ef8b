package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayload computes the hex HMAC-SHA256 of payload under secret. The
// payload must be the provider's canonical string byte-for-byte.
func SignPayload(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature matches the HMAC of payload
// under secret. A mismatch is a normal negative result, not an error.
func VerifySignature(secret, payload, signature string) bool {
	return SignPayload(secret, payload) == signature
}
