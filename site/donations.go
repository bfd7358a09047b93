package site

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/constants"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/database"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/donation"
)

type donationRequest struct {
	DonorName  string  `json:"donor_name"`
	DonorEmail string  `json:"donor_email"`
	DonorPhone string  `json:"donor_phone"`
	Amount     float64 `json:"amount"`
	Purpose    string  `json:"purpose"`
	Provider   string  `json:"provider"`
}

func ProcessDonation(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, err := processor.Process(r.Context(), donation.Input{
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		DonorPhone: req.DonorPhone,
		Amount:     req.Amount,
		Purpose:    req.Purpose,
		Provider:   req.Provider,
	})
	if err != nil {
		if errors.Is(err, donation.ErrMissingFields) {
			respondError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		log.Printf("Donation processing error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to process donation")
		return
	}

	if !result.Success {
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   result.Message,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"reference":      result.Reference,
		"transaction_id": result.TransactionID,
		"message":        result.Message,
		"sms_sent":       result.SMSSent,
	})
}

type donationItem struct {
	ID        uint    `json:"id"`
	Donor     string  `json:"donor"`
	Amount    float64 `json:"amount"`
	Purpose   string  `json:"purpose"`
	Provider  string  `json:"provider"`
	Reference string  `json:"reference"`
	Date      string  `json:"date"`
}

func ListDonations(w http.ResponseWriter, r *http.Request) {
	var donations []database.Donation
	result := database.GetDB().
		Order("created_at DESC").
		Limit(constants.MAX_DONATIONS_TO_SHOW).
		Find(&donations)
	if result.Error != nil {
		log.Printf("Donations list error: %v", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to fetch donations")
		return
	}

	items := make([]donationItem, 0, len(donations))
	for _, d := range donations {
		items = append(items, donationItem{
			ID:        d.ID,
			Donor:     d.DonorName,
			Amount:    d.Amount,
			Purpose:   d.Purpose,
			Provider:  d.Provider,
			Reference: d.ReferenceNumber,
			Date:      d.CreatedAt.Format(time.RFC3339),
		})
	}
	respondJSON(w, http.StatusOK, items)
}

type recentDonation struct {
	Donor   string  `json:"donor"`
	Amount  float64 `json:"amount"`
	Purpose string  `json:"purpose"`
	Date    string  `json:"date"`
}

func DonationStats(w http.ResponseWriter, r *http.Request) {
	stats, err := database.GetDonationStats(database.GetDB(), constants.MAX_RECENT_DONATIONS)
	if err != nil {
		log.Printf("Donation stats error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	recent := make([]recentDonation, 0, len(stats.Recent))
	for _, d := range stats.Recent {
		recent = append(recent, recentDonation{
			Donor:   d.DonorName,
			Amount:  d.Amount,
			Purpose: d.Purpose,
			Date:    d.CreatedAt.Format(time.RFC3339),
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"total_count":  stats.TotalCount,
		"total_amount": stats.TotalAmount,
		"by_purpose":   stats.ByPurpose,
		"recent":       recent,
	})
}
