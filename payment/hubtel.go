package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/config"
)

const hubtelBaseURL = "https://api.hubtel.com"

// Hubtel charges through the Hubtel merchant receive-mobilemoney API.
type Hubtel struct {
	merchantID  string
	apiKey      string
	callbackURL string
	baseURL     string
	client      *http.Client
}

func NewHubtel(cfg *config.Config) *Hubtel {
	return &Hubtel{
		merchantID:  cfg.HubtelMerchantID,
		apiKey:      cfg.HubtelPaymentAPIKey,
		callbackURL: cfg.HubtelCallbackURL,
		baseURL:     hubtelBaseURL,
		client:      newHTTPClient(),
	}
}

type hubtelChargeRequest struct {
	CustomerName       string  `json:"CustomerName"`
	CustomerMsisdn     string  `json:"CustomerMsisdn"`
	CustomerEmail      string  `json:"CustomerEmail"`
	Channel            string  `json:"Channel"`
	Amount             float64 `json:"Amount"`
	PrimaryCallbackURL string  `json:"PrimaryCallbackUrl"`
	Description        string  `json:"Description"`
	ClientReference    string  `json:"ClientReference"`
}

type hubtelChargeResponse struct {
	ResponseCode  string `json:"ResponseCode"`
	TransactionID string `json:"TransactionId"`
	Message       string `json:"Message"`
}

func (h *Hubtel) Charge(ctx context.Context, req Request) Result {
	reference := NewReference(time.Now())

	if h.merchantID == "" || h.apiKey == "" {
		log.Println("Hubtel payment credentials not configured")
		return errorResult(reference, "Payment gateway not configured")
	}

	payload := hubtelChargeRequest{
		CustomerName:       req.DonorName,
		CustomerMsisdn:     req.PhoneNumber,
		CustomerEmail:      "",
		Channel:            strings.ToLower(req.Provider),
		Amount:             req.Amount,
		PrimaryCallbackURL: h.callbackURL,
		Description:        "Church Donation - " + req.Purpose,
		ClientReference:    reference,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errorResult(reference, err.Error())
	}

	url := fmt.Sprintf("%s/v1/merchantaccount/merchants/%s/receive/mobilemoney", h.baseURL, h.merchantID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errorResult(reference, err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(h.apiKey, "")

	resp, err := h.client.Do(httpReq)
	if err != nil {
		log.Printf("Payment Error: %v", err)
		return errorResult(reference, err.Error())
	}
	defer resp.Body.Close()

	var parsed hubtelChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("Payment Error: %v", err)
		return errorResult(reference, err.Error())
	}

	status := StatusError
	if parsed.ResponseCode == "0000" {
		status = StatusSuccess
	}

	message := parsed.Message
	if message == "" {
		message = "Payment processed"
	}

	return Result{
		Status:        status,
		Reference:     reference,
		TransactionID: parsed.TransactionID,
		Message:       message,
	}
}
