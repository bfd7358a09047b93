package sms

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/config"
)

const hubtelSMSBaseURL = "https://smsc.hubtel.com"

// Hubtel sends through the Hubtel SMSC quick-send API.
type Hubtel struct {
	apiKey    string
	apiSecret string
	senderID  string
	baseURL   string
	client    *http.Client
}

func NewHubtel(cfg *config.Config) *Hubtel {
	return &Hubtel{
		apiKey:    cfg.HubtelAPIKey,
		apiSecret: cfg.HubtelAPISecret,
		senderID:  cfg.HubtelSenderID,
		baseURL:   hubtelSMSBaseURL,
		client:    newHTTPClient(),
	}
}

func (h *Hubtel) Send(ctx context.Context, phoneNumber, message string) Result {
	if h.apiKey == "" || h.apiSecret == "" {
		log.Println("Hubtel credentials not configured")
		return errorResult("SMS provider not configured")
	}

	params := url.Values{}
	params.Set("clientid", h.apiKey)
	params.Set("clientsecret", h.apiSecret)
	params.Set("from", h.senderID)
	params.Set("to", phoneNumber)
	params.Set("content", message)

	endpoint := h.baseURL + "/v1/messages/send?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errorResult(err.Error())
	}

	resp, err := h.client.Do(req)
	if err != nil {
		log.Printf("SMS Error: %v", err)
		return errorResult(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("SMS Error: hubtel returned %s", resp.Status)
		return errorResult("SMS delivery failed: " + resp.Status)
	}

	return Result{Status: StatusSuccess, Message: "SMS sent"}
}
