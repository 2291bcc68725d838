package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// ErrInvalidSignature is returned whenever a webhook payload fails
// authenticity verification, including when the provider's webhook secret
// is not configured (fail closed).
var ErrInvalidSignature = errors.New("webhook signature verification failed")

// ErrIgnoredEvent marks a verified but irrelevant provider event; callers
// acknowledge it without reconciling anything.
var ErrIgnoredEvent = errors.New("ignored webhook event")

func computeHMAC(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func verifyHMAC(secret, signature string, payload []byte) bool {
	if secret == "" || signature == "" {
		return false
	}
	expected := computeHMAC(secret, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}
