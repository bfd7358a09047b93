package site

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/constants"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/database"
)

// makeSlug turns a title into a URL-safe slug.
func makeSlug(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func CreateNews(w http.ResponseWriter, r *http.Request) {
	files, err := formFiles(w, r, "image")
	if err != nil {
		respondParseError(w, err)
		return
	}
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "No image provided")
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")
	author := r.FormValue("author")
	if title == "" || content == "" || author == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	image := files[0]
	if !allowedFile(image.Filename, constants.ALLOWED_IMAGES) {
		respondError(w, http.StatusBadRequest, "Invalid image file")
		return
	}

	stored := storedFilename("news_", image.Filename, time.Now())
	if err := saveUpload(image, "photos", stored); err != nil {
		log.Printf("News creation error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create news")
		return
	}

	slug := makeSlug(title)
	existing, err := database.GetNewsBySlug(database.GetDB(), slug)
	if err != nil {
		log.Printf("News creation error: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to create news")
		return
	}
	if existing != nil {
		slug = slug + "-" + time.Now().Format("20060102150405")
	}

	post := database.NewsPost{
		Title:         title,
		Slug:          slug,
		Content:       content,
		ImageFilename: stored,
		Author:        author,
		Published:     true,
	}
	if result := database.GetDB().Create(&post); result.Error != nil {
		log.Printf("News creation error: %v", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to create news")
		return
	}

	log.Printf("News created: %s by %s", title, author)
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"news_id": post.ID,
		"message": "News post created successfully",
	})
}

type newsItem struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

func ListNews(w http.ResponseWriter, r *http.Request) {
	var posts []database.NewsPost
	result := database.GetDB().
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&posts)
	if result.Error != nil {
		log.Printf("News list error: %v", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to fetch news")
		return
	}

	items := make([]newsItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, newsItem{
			ID:      p.ID,
			Title:   p.Title,
			Slug:    p.Slug,
			Content: p.Content,
			Image:   "/uploads/photos/" + p.ImageFilename,
			Author:  p.Author,
			Date:    p.CreatedAt.Format(time.RFC3339),
		})
	}
	respondJSON(w, http.StatusOK, items)
}
