package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const razorpayBaseURL = "https://api.razorpay.com/v1"

// RazorpayOrder represents an order created on the gateway
type RazorpayOrder struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type razorpayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// RazorpayClient is a thin wrapper over the Razorpay orders API
type RazorpayClient struct {
	client *resty.Client
	secret string
}

// NewRazorpayClient builds a gateway client authenticated with the key pair
func NewRazorpayClient(key, secret string) *RazorpayClient {
	client := resty.New().
		SetBaseURL(razorpayBaseURL).
		SetBasicAuth(key, secret).
		SetTimeout(15 * time.Second)

	return &RazorpayClient{client: client, secret: secret}
}

// CreateOrder creates a payment order for amount in minor units
func (r *RazorpayClient) CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (*RazorpayOrder, error) {
	var order RazorpayOrder
	var apiErr razorpayError

	resp, err := r.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":   amount,
			"currency": currency,
			"receipt":  receipt,
			"notes":    notes,
		}).
		SetResult(&order).
		SetError(&apiErr).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %v", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("gateway error: %s", apiErr.Error.Description)
	}

	return &order, nil
}

// VerifyPaymentSignature checks the gateway callback signature. The expected
// value is HMAC-SHA256 over "orderId|paymentId" keyed by the API secret.
// Any missing input fails closed.
func (r *RazorpayClient) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, r.secret)
}

// VerifySignature is the raw signature check, exposed for webhook handling
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	if orderID == "" || paymentID == "" || signature == "" || secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
