package site

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/database"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	msg := database.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if result := database.GetDB().Create(&msg); result.Error != nil {
		log.Printf("Contact submission error: %v", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	log.Printf("Contact message from: %s (%s)", req.Name, req.Email)
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message sent successfully",
	})
}

// MarkContactRead flips the read flag on a contact message. Admin
// review only; the public API never exposes it.
func MarkContactRead(w http.ResponseWriter, r *http.Request) {
	messageID := chi.URLParam(r, "messageID")

	var msg database.ContactMessage
	if result := database.GetDB().First(&msg, messageID); result.Error != nil {
		respondError(w, http.StatusNotFound, "Message not found")
		return
	}

	msg.Read = true
	if result := database.GetDB().Save(&msg); result.Error != nil {
		log.Printf("Contact update error: %v", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to update message")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}
