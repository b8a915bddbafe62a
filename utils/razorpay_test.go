package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayment(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test-webhook-secret"
	orderID := "order_N5X8c2Yp1qL0aB"
	paymentID := "pay_M9K3d7Zw4xR2cV"

	signature := signPayment(orderID, paymentID, secret)

	assert.True(t, VerifySignature(orderID, paymentID, signature, secret))
}

func TestVerifySignatureTampered(t *testing.T) {
	secret := "test-webhook-secret"
	orderID := "order_N5X8c2Yp1qL0aB"
	paymentID := "pay_M9K3d7Zw4xR2cV"

	signature := signPayment(orderID, paymentID, secret)

	// Flip one byte of the signature
	tampered := []byte(signature)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}

	assert.False(t, VerifySignature(orderID, paymentID, string(tampered), secret))
	assert.False(t, VerifySignature(orderID, paymentID, signature, "wrong-secret"))
	assert.False(t, VerifySignature("order_other", paymentID, signature, secret))
}

func TestVerifySignatureMissingFields(t *testing.T) {
	secret := "test-webhook-secret"
	signature := signPayment("order_x", "pay_y", secret)

	assert.False(t, VerifySignature("", "pay_y", signature, secret))
	assert.False(t, VerifySignature("order_x", "", signature, secret))
	assert.False(t, VerifySignature("order_x", "pay_y", "", secret))
	assert.False(t, VerifySignature("order_x", "pay_y", signature, ""))
}
