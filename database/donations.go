package database

import "gorm.io/gorm"

// PurposeStat aggregates completed donations for one purpose.
type PurposeStat struct {
	Purpose string  `json:"purpose"`
	Count   int64   `json:"count"`
	Amount  float64 `json:"amount"`
}

// DonationStats is the admin-facing aggregate view over completed
// donations.
type DonationStats struct {
	TotalCount  int64         `json:"total_count"`
	TotalAmount float64       `json:"total_amount"`
	ByPurpose   []PurposeStat `json:"by_purpose"`
	Recent      []Donation    `json:"-"`
}

// GetDonationStats computes totals, a per-purpose breakdown and the
// most recent completed donations.
func GetDonationStats(db *gorm.DB, recentLimit int) (*DonationStats, error) {
	stats := &DonationStats{ByPurpose: []PurposeStat{}}

	completed := func() *gorm.DB {
		return db.Model(&Donation{}).Where("status = ?", "completed")
	}

	if err := completed().Count(&stats.TotalCount).Error; err != nil {
		return nil, err
	}

	// COALESCE so an empty table yields 0 rather than NULL
	if err := completed().
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalAmount).Error; err != nil {
		return nil, err
	}

	if err := completed().
		Select("purpose, COUNT(*) as count, SUM(amount) as amount").
		Group("purpose").
		Scan(&stats.ByPurpose).Error; err != nil {
		return nil, err
	}

	if err := db.Where("status = ?", "completed").
		Order("created_at DESC").
		Limit(recentLimit).
		Find(&stats.Recent).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
