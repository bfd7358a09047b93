package payment

import (
	"context"
	"log"
	"time"
)

// Simulator bypasses any external call and always succeeds. It is the
// fallback when no real gateway is configured, used for testing and
// demos.
type Simulator struct{}

func NewSimulator() *Simulator {
	return &Simulator{}
}

func (s *Simulator) Charge(_ context.Context, req Request) Result {
	reference := NewReference(time.Now())

	log.Printf("Simulated payment: %s - %s - GHS %.2f", req.Provider, req.PhoneNumber, req.Amount)

	return Result{
		Status:        StatusSuccess,
		Reference:     reference,
		TransactionID: "TEST_" + reference,
		Message:       "Payment processed (simulation mode)",
	}
}
