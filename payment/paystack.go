package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/config"
)

const paystackBaseURL = "https://api.paystack.co"

// Paystack charges through the Paystack mobile-money charge API.
type Paystack struct {
	secretKey string
	baseURL   string
	client    *http.Client
}

func NewPaystack(cfg *config.Config) *Paystack {
	return &Paystack{
		secretKey: cfg.PaystackSecretKey,
		baseURL:   paystackBaseURL,
		client:    newHTTPClient(),
	}
}

type paystackMobileMoney struct {
	Phone    string `json:"phone"`
	Provider string `json:"provider"`
}

type paystackChargeRequest struct {
	Email       string              `json:"email"`
	Amount      int64               `json:"amount"`
	MobileMoney paystackMobileMoney `json:"mobile_money"`
	Reference   string              `json:"reference"`
}

type paystackChargeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

func (p *Paystack) Charge(ctx context.Context, req Request) Result {
	reference := NewReference(time.Now())

	if p.secretKey == "" {
		log.Println("Paystack credentials not configured")
		return errorResult(reference, "Payment gateway not configured")
	}

	payload := paystackChargeRequest{
		// Paystack requires an email; donations only carry a phone
		// number, so a synthetic one is derived from the reference.
		Email:  reference + "@donation.church",
		Amount: toPesewas(req.Amount),
		MobileMoney: paystackMobileMoney{
			Phone:    req.PhoneNumber,
			Provider: strings.ToLower(req.Provider),
		},
		Reference: reference,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errorResult(reference, err.Error())
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/charge", bytes.NewReader(body))
	if err != nil {
		return errorResult(reference, err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.secretKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		log.Printf("Payment Error: %v", err)
		return errorResult(reference, err.Error())
	}
	defer resp.Body.Close()

	var parsed paystackChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("Payment Error: %v", err)
		return errorResult(reference, err.Error())
	}

	status := StatusError
	if parsed.Status {
		status = StatusSuccess
	}

	message := parsed.Message
	if message == "" {
		message = "Payment processed"
	}

	return Result{
		Status:        status,
		Reference:     reference,
		TransactionID: parsed.Data.ID.String(),
		Message:       message,
	}
}

// toPesewas converts a GHS amount to minor units as Paystack expects.
func toPesewas(amount float64) int64 {
	return int64(amount * 100)
}
