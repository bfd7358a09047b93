package donation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/database"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/payment"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/sms"
)

type stubGateway struct {
	result payment.Result
	calls  int
}

func (s *stubGateway) Charge(_ context.Context, _ payment.Request) payment.Result {
	s.calls++
	return s.result
}

type stubSender struct {
	result      sms.Result
	lastPhone   string
	lastMessage string
	calls       int
}

func (s *stubSender) Send(_ context.Context, phone, message string) sms.Result {
	s.calls++
	s.lastPhone = phone
	s.lastMessage = message
	return s.result
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&database.Donation{}))
	return db
}

func countDonations(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&database.Donation{}).Count(&count).Error)
	return count
}

func validInput() Input {
	return Input{
		DonorName:  "Ama",
		DonorPhone: "0551234567",
		Amount:     50,
		Purpose:    "tithe",
		Provider:   "mtn",
	}
}

func TestProcessValidationFailsBeforeGatewayCall(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"missing donor name", func(in *Input) { in.DonorName = "" }},
		{"missing phone", func(in *Input) { in.DonorPhone = "" }},
		{"missing purpose", func(in *Input) { in.Purpose = "" }},
		{"missing provider", func(in *Input) { in.Provider = "" }},
		{"zero amount", func(in *Input) { in.Amount = 0 }},
		{"negative amount", func(in *Input) { in.Amount = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := openTestDB(t)
			gateway := &stubGateway{}
			sender := &stubSender{}
			p := NewProcessor(db, gateway, sender)

			in := validInput()
			tt.mutate(&in)

			_, err := p.Process(context.Background(), in)
			require.ErrorIs(t, err, ErrMissingFields)
			assert.Zero(t, gateway.calls)
			assert.Zero(t, sender.calls)
			assert.Zero(t, countDonations(t, db))
		})
	}
}

func TestProcessMissingEmailAllowed(t *testing.T) {
	in := validInput()
	in.DonorEmail = ""
	require.NoError(t, in.Validate())
}

func TestProcessGatewayFailureWritesNothing(t *testing.T) {
	db := openTestDB(t)
	gateway := &stubGateway{result: payment.Result{
		Status:    payment.StatusError,
		Reference: "SDA20250101000000",
		Message:   "Insufficient balance",
	}}
	sender := &stubSender{result: sms.Result{Status: sms.StatusSuccess}}
	p := NewProcessor(db, gateway, sender)

	result, err := p.Process(context.Background(), validInput())
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, "Insufficient balance", result.Message)
	assert.Equal(t, "SDA20250101000000", result.Reference)
	assert.Zero(t, countDonations(t, db), "no donation may be recorded for a failed charge")
	assert.Zero(t, sender.calls, "no confirmation may be sent for a failed charge")
}

func TestProcessSuccessPersistsAndNotifies(t *testing.T) {
	db := openTestDB(t)
	gateway := &stubGateway{result: payment.Result{
		Status:        payment.StatusSuccess,
		Reference:     "SDA20250101000000",
		TransactionID: "TX42",
		Message:       "Payment accepted",
	}}
	sender := &stubSender{result: sms.Result{Status: sms.StatusSuccess}}
	p := NewProcessor(db, gateway, sender)

	result, err := p.Process(context.Background(), validInput())
	require.NoError(t, err)

	require.True(t, result.Success)
	assert.Equal(t, "SDA20250101000000", result.Reference)
	assert.Equal(t, "TX42", result.TransactionID)
	assert.True(t, result.SMSSent)

	var record database.Donation
	require.NoError(t, db.Where("reference_number = ?", "SDA20250101000000").First(&record).Error)
	assert.Equal(t, "Ama", record.DonorName)
	assert.Equal(t, 50.0, record.Amount)
	assert.Equal(t, "completed", record.Status)
	assert.Equal(t, "TX42", record.TransactionID)

	assert.Equal(t, "0551234567", sender.lastPhone)
	assert.Contains(t, sender.lastMessage, "Ama")
	assert.Contains(t, sender.lastMessage, "GHS 50")
	assert.Contains(t, sender.lastMessage, "tithe")
	assert.Contains(t, sender.lastMessage, "SDA20250101000000")
}

func TestProcessSMSFailureDoesNotRollBack(t *testing.T) {
	db := openTestDB(t)
	gateway := &stubGateway{result: payment.Result{
		Status:    payment.StatusSuccess,
		Reference: "SDA20250101000001",
	}}
	sender := &stubSender{result: sms.Result{Status: sms.StatusError, Message: "provider down"}}
	p := NewProcessor(db, gateway, sender)

	result, err := p.Process(context.Background(), validInput())
	require.NoError(t, err)

	assert.True(t, result.Success, "SMS failure must not fail the donation")
	assert.False(t, result.SMSSent)
	assert.Equal(t, int64(1), countDonations(t, db))
}

func TestProcessDuplicateReferenceSurfacesError(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&database.Donation{
		DonorName:       "Kofi",
		DonorPhone:      "0240000000",
		Amount:          5,
		Purpose:         "offering",
		Provider:        "mtn",
		ReferenceNumber: "SDA20250101000002",
		Status:          "completed",
	}).Error)

	gateway := &stubGateway{result: payment.Result{
		Status:    payment.StatusSuccess,
		Reference: "SDA20250101000002",
	}}
	sender := &stubSender{result: sms.Result{Status: sms.StatusSuccess}}
	p := NewProcessor(db, gateway, sender)

	_, err := p.Process(context.Background(), validInput())
	require.Error(t, err, "same-second reference collision must surface, not overwrite")
	assert.Equal(t, int64(1), countDonations(t, db))
	assert.Zero(t, sender.calls)
}

func TestConfirmationMessage(t *testing.T) {
	msg := ConfirmationMessage(validInput(), "SDA20250101000000")
	assert.Equal(t,
		"Thank you Ama for your donation of GHS 50 to Sefwi Humjibre SDA Church for tithe. Reference: SDA20250101000000. May God bless you abundantly!",
		msg)
}
