// Package donation coordinates a donation submission end-to-end:
// validate, charge, persist, notify. The donation row is the source
// of truth; SMS delivery is advisory.
package donation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"gorm.io/gorm"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/constants"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/database"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/payment"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/sms"
)

// ErrMissingFields is returned before any external call when a
// required input is absent.
var ErrMissingFields = errors.New("Missing required fields")

// Input is one donation submission. Everything except DonorEmail is
// required.
type Input struct {
	DonorName  string
	DonorEmail string
	DonorPhone string
	Amount     float64
	Purpose    string
	Provider   string
}

func (in Input) Validate() error {
	if in.DonorName == "" || in.DonorPhone == "" || in.Purpose == "" || in.Provider == "" {
		return ErrMissingFields
	}
	if in.Amount <= 0 {
		return ErrMissingFields
	}
	return nil
}

// Result is what the API reports back for a donation attempt.
type Result struct {
	Success       bool
	Reference     string
	TransactionID string
	Message       string
	SMSSent       bool
}

// Processor wires the payment gateway, the donations table and the
// SMS sender together.
type Processor struct {
	db      *gorm.DB
	gateway payment.Gateway
	sender  sms.Sender
}

func NewProcessor(db *gorm.DB, gateway payment.Gateway, sender sms.Sender) *Processor {
	return &Processor{db: db, gateway: gateway, sender: sender}
}

// Process runs the donation flow. A Donation row is written only
// after the gateway reports success, and a failed SMS never rolls the
// donation back; it only clears the SMSSent flag.
func (p *Processor) Process(ctx context.Context, in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	charge := p.gateway.Charge(ctx, payment.Request{
		Provider:    in.Provider,
		PhoneNumber: in.DonorPhone,
		Amount:      in.Amount,
		Purpose:     in.Purpose,
		DonorName:   in.DonorName,
	})

	if !charge.Succeeded() {
		log.Printf("Payment failed: %s", charge.Message)
		return &Result{
			Success:   false,
			Reference: charge.Reference,
			Message:   charge.Message,
		}, nil
	}

	record := database.Donation{
		DonorName:       in.DonorName,
		DonorEmail:      in.DonorEmail,
		DonorPhone:      in.DonorPhone,
		Amount:          in.Amount,
		Purpose:         in.Purpose,
		Provider:        in.Provider,
		ReferenceNumber: charge.Reference,
		Status:          "completed",
		TransactionID:   charge.TransactionID,
	}
	if result := p.db.Create(&record); result.Error != nil {
		// The charge already went through; keep the reference in the
		// log so the payment can be reconciled by hand.
		log.Printf("Failed to record donation %s: %v", charge.Reference, result.Error)
		return nil, result.Error
	}

	smsResult := p.sender.Send(ctx, in.DonorPhone, ConfirmationMessage(in, charge.Reference))

	log.Printf("Donation processed: %s - GHS %s from %s",
		charge.Reference, formatAmount(in.Amount), in.DonorName)

	return &Result{
		Success:       true,
		Reference:     charge.Reference,
		TransactionID: charge.TransactionID,
		Message:       "Donation processed successfully",
		SMSSent:       smsResult.Succeeded(),
	}, nil
}

// ConfirmationMessage composes the human-readable SMS sent to the
// donor after a successful charge.
func ConfirmationMessage(in Input, reference string) string {
	return fmt.Sprintf(
		"Thank you %s for your donation of GHS %s to %s for %s. Reference: %s. May God bless you abundantly!",
		in.DonorName, formatAmount(in.Amount), constants.APP_NAME, in.Purpose, reference)
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
