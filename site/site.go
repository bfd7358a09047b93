package site

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/config"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/donation"
)

var (
	cfg       *config.Config
	processor *donation.Processor
)

// Setup hands the handlers their process-wide collaborators. Must be
// called once before the router is built.
func Setup(c *config.Config, p *donation.Processor) {
	cfg = c
	processor = p
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// respondError writes the terse client-facing error shape. Internal
// detail stays in the server log, never in the response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
