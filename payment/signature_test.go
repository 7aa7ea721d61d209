package payment_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"edtech/payment"

	"github.com/stretchr/testify/assert"
)

func sign(secret, canonical string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhook(t *testing.T) {
	v := payment.NewVerifier("webhook-secret")
	body := []byte(`{"payload":{"payment":{"entity":{"notes":{"course_id":"7","userId":"3"}}}}}`)

	assert.True(t, v.VerifyWebhook(body, sign("webhook-secret", string(body))))
	assert.False(t, v.VerifyWebhook(body, sign("wrong-secret", string(body))))
	assert.False(t, v.VerifyWebhook([]byte(`{}`), sign("webhook-secret", string(body))))
}

func TestVerifyPayment(t *testing.T) {
	v := payment.NewVerifier("key-secret")

	good := sign("key-secret", "order_abc|pay_xyz")
	assert.True(t, v.VerifyPayment("order_abc", "pay_xyz", good))

	// Identifiers are part of the canonical string
	assert.False(t, v.VerifyPayment("order_abc", "pay_other", good))
	assert.False(t, v.VerifyPayment("order_other", "pay_xyz", good))
	assert.False(t, v.VerifyPayment("order_abc", "pay_xyz", sign("other-secret", "order_abc|pay_xyz")))
}

func TestVerifierFailsClosed(t *testing.T) {
	body := []byte("payload")

	// Missing signature
	v := payment.NewVerifier("secret")
	assert.False(t, v.VerifyWebhook(body, ""))
	assert.False(t, v.VerifyPayment("order_abc", "pay_xyz", ""))

	// Missing secret
	empty := payment.NewVerifier("")
	assert.False(t, empty.VerifyWebhook(body, sign("", string(body))))
	assert.False(t, empty.VerifyPayment("order_abc", "pay_xyz", sign("", "order_abc|pay_xyz")))
}
