// Package sms delivers notification messages through one of the
// configured providers. Delivery is best effort: callers get a
// normalized Result and never a panic or transport error.
package sms

import (
	"context"
	"net/http"
	"time"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/config"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the normalized outcome of a send attempt.
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (r Result) Succeeded() bool {
	return r.Status == StatusSuccess
}

// Sender delivers one SMS to one phone number.
type Sender interface {
	Send(ctx context.Context, phoneNumber, message string) Result
}

// New selects the sender implementation once, at startup. Unknown
// provider names fall back to the console sender so flows that send
// confirmations never block on SMS being configured.
func New(cfg *config.Config) Sender {
	switch cfg.SMSProvider {
	case "hubtel":
		return NewHubtel(cfg)
	case "mnotify":
		return NewMnotify(cfg)
	default:
		return NewConsole()
	}
}

func errorResult(message string) Result {
	return Result{Status: StatusError, Message: message}
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}
