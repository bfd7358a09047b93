package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config carries every process-wide setting. It is built once in main
// and handed by reference to the packages that need it, so nothing
// reads the environment at call sites.
type Config struct {
	Port string
	// SecretKey stays part of the deployment surface but is unused:
	// admin sessions are random bearer tokens, not signed cookies.
	SecretKey        string
	UploadFolder     string
	MaxContentLength int64
	DatabasePath     string
	CORSOrigins      []string
	LogFile          string

	SMSProvider     string
	HubtelAPIKey    string
	HubtelAPISecret string
	HubtelSenderID  string
	MnotifyAPIKey   string
	MnotifySenderID string

	PaymentGateway      string
	HubtelMerchantID    string
	HubtelPaymentAPIKey string
	HubtelCallbackURL   string
	PaystackSecretKey   string
}

// Load reads configuration from the environment via viper, applying
// the same defaults the deployment has always assumed.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("SECRET_KEY", "default-secret-key-change-in-production")
	v.SetDefault("UPLOAD_FOLDER", "uploads")
	v.SetDefault("MAX_CONTENT_LENGTH", 52428800)
	v.SetDefault("DATABASE_URL", "church.db")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_FILE", "church_website.log")
	v.SetDefault("SMS_PROVIDER", "hubtel")
	v.SetDefault("HUBTEL_SENDER_ID", "SDA_CHURCH")
	v.SetDefault("MNOTIFY_SENDER_ID", "SDA_CHURCH")
	v.SetDefault("PAYMENT_GATEWAY", "hubtel")

	return &Config{
		Port:             v.GetString("PORT"),
		SecretKey:        v.GetString("SECRET_KEY"),
		UploadFolder:     v.GetString("UPLOAD_FOLDER"),
		MaxContentLength: v.GetInt64("MAX_CONTENT_LENGTH"),
		DatabasePath:     v.GetString("DATABASE_URL"),
		CORSOrigins:      splitOrigins(v.GetString("CORS_ORIGINS")),
		LogFile:          v.GetString("LOG_FILE"),

		SMSProvider:     v.GetString("SMS_PROVIDER"),
		HubtelAPIKey:    v.GetString("HUBTEL_API_KEY"),
		HubtelAPISecret: v.GetString("HUBTEL_API_SECRET"),
		HubtelSenderID:  v.GetString("HUBTEL_SENDER_ID"),
		MnotifyAPIKey:   v.GetString("MNOTIFY_API_KEY"),
		MnotifySenderID: v.GetString("MNOTIFY_SENDER_ID"),

		PaymentGateway:      v.GetString("PAYMENT_GATEWAY"),
		HubtelMerchantID:    v.GetString("HUBTEL_MERCHANT_ID"),
		HubtelPaymentAPIKey: v.GetString("HUBTEL_PAYMENT_API_KEY"),
		HubtelCallbackURL:   v.GetString("HUBTEL_CALLBACK_URL"),
		PaystackSecretKey:   v.GetString("PAYSTACK_SECRET_KEY"),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
