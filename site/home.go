package site

import (
	"log"
	"net/http"
	"time"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/constants"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/database"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/web"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"message":   "Church API is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// HomePage renders the public landing page with the latest published
// news.
func HomePage(w http.ResponseWriter, r *http.Request) {
	var posts []database.NewsPost
	result := database.GetDB().
		Where("published = ?", true).
		Order("created_at DESC").
		Limit(constants.MAX_NEWS_ON_HOMEPAGE).
		Find(&posts)
	if result.Error != nil {
		log.Printf("Homepage news error: %v", result.Error)
		// fall through with an empty list; the page still renders
	}

	items := make([]web.NewsItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, web.NewsItem{
			Title:  p.Title,
			Author: p.Author,
			Date:   p.CreatedAt.Format("2006-01-02"),
		})
	}

	page := web.HomePage(web.HomeProps{
		SiteName: constants.APP_NAME,
		News:     items,
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		log.Printf("Homepage render error: %v", err)
	}
}
