package razorpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignPayload(t *testing.T) {
	sig := SignPayload("secret", "order_abc|pay_xyz")

	assert.Len(t, sig, 64)
	assert.Equal(t, sig, SignPayload("secret", "order_abc|pay_xyz"))
	assert.NotEqual(t, sig, SignPayload("other", "order_abc|pay_xyz"))
	assert.NotEqual(t, sig, SignPayload("secret", "pay_xyz|order_abc"))
}

func TestVerifySignature(t *testing.T) {
	secret := "whsec_test"
	payload := `{"event":"order.paid"}`
	sig := SignPayload(secret, payload)

	flipped := "f"
	if sig[63] == 'f' {
		flipped = "0"
	}

	assert.True(t, VerifySignature(secret, payload, sig))
	assert.False(t, VerifySignature(secret, payload, sig[:63]+flipped))
	assert.False(t, VerifySignature(secret, payload+" ", sig))
	assert.False(t, VerifySignature("wrong", payload, sig))
	assert.False(t, VerifySignature(secret, payload, ""))
}
