package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Verifier checks that a payment confirmation really originates from the
// provider. Both confirmation paths (webhook and client) use the same
// HMAC-SHA256 scheme and differ only in the canonical bytes that get hashed.
type Verifier struct {
	secret string
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret}
}

// verify compares the received signature against the keyed hash of the
// canonical bytes. Missing secret or signature fails closed; a mismatch is
// a normal negative result, not an error.
func (v *Verifier) verify(canonical []byte, signature string) bool {
	if v == nil || v.secret == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write(canonical)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhook checks a server-to-server notification, keyed by the raw
// request body
func (v *Verifier) VerifyWebhook(rawBody []byte, signature string) bool {
	return v.verify(rawBody, signature)
}

// VerifyPayment checks a client-side confirmation, keyed by the order and
// payment identifiers joined with the provider's fixed separator
func (v *Verifier) VerifyPayment(orderID, paymentID, signature string) bool {
	return v.verify([]byte(orderID+"|"+paymentID), signature)
}
