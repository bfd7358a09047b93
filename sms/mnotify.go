package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/config"
)

const mnotifyBaseURL = "https://api.mnotify.com"

// Mnotify sends through the Mnotify quick-SMS API.
type Mnotify struct {
	apiKey   string
	senderID string
	baseURL  string
	client   *http.Client
}

func NewMnotify(cfg *config.Config) *Mnotify {
	return &Mnotify{
		apiKey:   cfg.MnotifyAPIKey,
		senderID: cfg.MnotifySenderID,
		baseURL:  mnotifyBaseURL,
		client:   newHTTPClient(),
	}
}

type mnotifySendRequest struct {
	Key      string `json:"key"`
	To       string `json:"to"`
	Msg      string `json:"msg"`
	SenderID string `json:"sender_id"`
}

func (m *Mnotify) Send(ctx context.Context, phoneNumber, message string) Result {
	if m.apiKey == "" {
		log.Println("Mnotify credentials not configured")
		return errorResult("SMS provider not configured")
	}

	body, err := json.Marshal(mnotifySendRequest{
		Key:      m.apiKey,
		To:       phoneNumber,
		Msg:      message,
		SenderID: m.senderID,
	})
	if err != nil {
		return errorResult(err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/api/sms/quick", bytes.NewReader(body))
	if err != nil {
		return errorResult(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		log.Printf("SMS Error: %v", err)
		return errorResult(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("SMS Error: mnotify returned %s", resp.Status)
		return errorResult("SMS delivery failed: " + resp.Status)
	}

	return Result{Status: StatusSuccess, Message: "SMS sent"}
}
