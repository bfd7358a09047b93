package sms

import (
	"context"
	"log"
)

// Console is the fallback sender used when no real provider is
// configured. It logs the message and reports success so callers
// never block on SMS delivery.
type Console struct{}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) Send(_ context.Context, phoneNumber, message string) Result {
	log.Printf("SMS to %s: %s", phoneNumber, message)
	return Result{Status: StatusSuccess, Message: "SMS logged (no provider configured)"}
}
