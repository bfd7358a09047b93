// Package payment charges mobile-money donations through one of the
// configured gateways. Every gateway normalizes its outcome into a
// Result; nothing in here panics or returns a transport error to the
// caller.
package payment

import (
	"context"
	"net/http"
	"time"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/config"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/constants"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the normalized outcome of a charge attempt. Reference is
// always set, even on failure, so every attempt stays traceable.
type Result struct {
	Status        string `json:"status"`
	Reference     string `json:"reference"`
	TransactionID string `json:"transaction_id,omitempty"`
	Message       string `json:"message"`
}

func (r Result) Succeeded() bool {
	return r.Status == StatusSuccess
}

// Request carries the validated inputs of a charge. Amount is a
// decimal currency value in GHS; gateways that need minor units
// convert at their own boundary.
type Request struct {
	Provider    string
	PhoneNumber string
	Amount      float64
	Purpose     string
	DonorName   string
}

// Gateway initiates a mobile-money charge.
type Gateway interface {
	Charge(ctx context.Context, req Request) Result
}

// New selects the gateway implementation once, at startup. An
// unrecognized gateway name falls back to the simulator so demo and
// test deployments work without credentials.
func New(cfg *config.Config) Gateway {
	switch cfg.PaymentGateway {
	case "hubtel":
		return NewHubtel(cfg)
	case "paystack":
		return NewPaystack(cfg)
	default:
		return NewSimulator()
	}
}

// NewReference mints the caller-visible reference for a charge
// attempt. Uniqueness relies on second granularity; two attempts in
// the same second collide, which the donations table's unique index
// rejects on insert.
func NewReference(t time.Time) string {
	return constants.DONATION_REFERENCE_PREFIX + t.Format("20060102150405")
}

func errorResult(reference, message string) Result {
	return Result{Status: StatusError, Reference: reference, Message: message}
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
