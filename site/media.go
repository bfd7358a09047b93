package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/constants"
	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/database"
)

// allowedFile reports whether the filename carries one of the allowed
// extensions. The check is case-insensitive, and a name without any
// extension is always rejected.
func allowedFile(filename string, allowed []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// secureFilename strips any path components and replaces characters
// that are unsafe in a stored filename.
func secureFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// storedFilename prefixes the sanitized original name with a
// timestamp so repeated uploads of the same file never collide.
func storedFilename(prefix, original string, now time.Time) string {
	return prefix + now.Format("20060102_150405") + "_" + secureFilename(original)
}

// saveUpload writes one uploaded file into the kind-specific storage
// directory. The metadata row is only inserted after this succeeds.
func saveUpload(fh *multipart.FileHeader, kind, stored string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dir := filepath.Join(cfg.UploadFolder, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	dst, err := os.Create(filepath.Join(dir, stored))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// formFiles pulls the named multipart field. The configured size
// limit caps the whole request body; anything larger surfaces as an
// *http.MaxBytesError before a single file is written.
func formFiles(w http.ResponseWriter, r *http.Request, field string) ([]*multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxContentLength)
	if err := r.ParseMultipartForm(10 << 20); err != nil { // Limit your max memory usage
		return nil, err
	}
	if r.MultipartForm == nil {
		return nil, nil
	}
	return r.MultipartForm.File[field], nil
}

// respondParseError maps a multipart parse failure to the right
// client error: 413 for an oversized body, 400 for anything else.
func respondParseError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		respondError(w, http.StatusRequestEntityTooLarge, "Upload too large")
		return
	}
	respondError(w, http.StatusBadRequest, "Invalid upload request")
}

// checkAll validates every file before anything is written, so a
// single disallowed file rejects the whole request.
func checkAll(files []*multipart.FileHeader, allowed []string) error {
	for _, fh := range files {
		if !allowedFile(fh.Filename, allowed) {
			return fmt.Errorf("file type not allowed: %s", fh.Filename)
		}
	}
	return nil
}

func formValueOr(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}

func UploadPhotos(w http.ResponseWriter, r *http.Request) {
	files, err := formFiles(w, r, "photos")
	if err != nil {
		respondParseError(w, err)
		return
	}
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "No photos provided")
		return
	}
	if err := checkAll(files, constants.ALLOWED_IMAGES); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	category := formValueOr(r, "category", "gallery")
	description := r.FormValue("description")
	uploadedBy := formValueOr(r, "uploaded_by", "admin")

	var tags datatypes.JSON
	if raw := r.FormValue("tags"); raw != "" {
		encoded, err := json.Marshal(strings.Split(raw, ","))
		if err == nil {
			tags = datatypes.JSON(encoded)
		}
	}

	var uploaded []string
	for _, fh := range files {
		stored := storedFilename("", fh.Filename, time.Now())
		if err := saveUpload(fh, "photos", stored); err != nil {
			log.Printf("Photo upload error: %v", err)
			respondError(w, http.StatusInternalServerError, "Upload failed")
			return
		}

		photo := database.Photo{
			Filename:    stored,
			Category:    category,
			Description: description,
			Tags:        tags,
			UploadedBy:  uploadedBy,
		}
		if result := database.GetDB().Create(&photo); result.Error != nil {
			log.Printf("Photo upload error: %v", result.Error)
			respondError(w, http.StatusInternalServerError, "Upload failed")
			return
		}

		uploaded = append(uploaded, stored)
		log.Printf("Photo uploaded: %s by %s", stored, uploadedBy)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"files":   uploaded,
		"message": fmt.Sprintf("%d photos uploaded successfully", len(uploaded)),
	})
}

func UploadVideos(w http.ResponseWriter, r *http.Request) {
	files, err := formFiles(w, r, "videos")
	if err != nil {
		respondParseError(w, err)
		return
	}
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "No videos provided")
		return
	}
	if err := checkAll(files, constants.ALLOWED_VIDEOS); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	title := formValueOr(r, "title", "Untitled")
	description := r.FormValue("description")
	uploadedBy := formValueOr(r, "uploaded_by", "admin")

	var uploaded []string
	for _, fh := range files {
		stored := storedFilename("", fh.Filename, time.Now())
		if err := saveUpload(fh, "videos", stored); err != nil {
			log.Printf("Video upload error: %v", err)
			respondError(w, http.StatusInternalServerError, "Upload failed")
			return
		}

		video := database.Video{
			Filename:    stored,
			Title:       title,
			Description: description,
			UploadedBy:  uploadedBy,
		}
		if result := database.GetDB().Create(&video); result.Error != nil {
			log.Printf("Video upload error: %v", result.Error)
			respondError(w, http.StatusInternalServerError, "Upload failed")
			return
		}

		uploaded = append(uploaded, stored)
		log.Printf("Video uploaded: %s by %s", stored, uploadedBy)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"files":   uploaded,
		"message": fmt.Sprintf("%d videos uploaded successfully", len(uploaded)),
	})
}

func UploadDocuments(w http.ResponseWriter, r *http.Request) {
	files, err := formFiles(w, r, "documents")
	if err != nil {
		respondParseError(w, err)
		return
	}
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "No documents provided")
		return
	}
	if err := checkAll(files, constants.ALLOWED_DOCS); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	title := formValueOr(r, "title", "Untitled")
	category := formValueOr(r, "category", "other")
	uploadedBy := formValueOr(r, "uploaded_by", "admin")

	var uploaded []string
	for _, fh := range files {
		stored := storedFilename("", fh.Filename, time.Now())
		if err := saveUpload(fh, "documents", stored); err != nil {
			log.Printf("Document upload error: %v", err)
			respondError(w, http.StatusInternalServerError, "Upload failed")
			return
		}

		document := database.Document{
			Filename:   stored,
			Title:      title,
			Category:   category,
			UploadedBy: uploadedBy,
		}
		if result := database.GetDB().Create(&document); result.Error != nil {
			log.Printf("Document upload error: %v", result.Error)
			respondError(w, http.StatusInternalServerError, "Upload failed")
			return
		}

		uploaded = append(uploaded, stored)
		log.Printf("Document uploaded: %s by %s", stored, uploadedBy)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"files":   uploaded,
		"message": fmt.Sprintf("%d documents uploaded successfully", len(uploaded)),
	})
}

type photoItem struct {
	ID          uint           `json:"id"`
	URL         string         `json:"url"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Tags        datatypes.JSON `json:"tags,omitempty"`
	Date        string         `json:"date"`
}

func ListPhotos(w http.ResponseWriter, r *http.Request) {
	query := database.GetDB().Order("created_at DESC")
	if category := r.URL.Query().Get("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var photos []database.Photo
	if result := query.Find(&photos); result.Error != nil {
		log.Printf("Photos list error: %v", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to fetch photos")
		return
	}

	items := make([]photoItem, 0, len(photos))
	for _, p := range photos {
		items = append(items, photoItem{
			ID:          p.ID,
			URL:         "/uploads/photos/" + p.Filename,
			Category:    p.Category,
			Description: p.Description,
			Tags:        p.Tags,
			Date:        p.CreatedAt.Format(time.RFC3339),
		})
	}
	respondJSON(w, http.StatusOK, items)
}

type videoItem struct {
	ID          uint   `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func ListVideos(w http.ResponseWriter, r *http.Request) {
	var videos []database.Video
	if result := database.GetDB().Order("created_at DESC").Find(&videos); result.Error != nil {
		log.Printf("Videos list error: %v", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to fetch videos")
		return
	}

	items := make([]videoItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, videoItem{
			ID:          v.ID,
			URL:         "/uploads/videos/" + v.Filename,
			Title:       v.Title,
			Description: v.Description,
			Date:        v.CreatedAt.Format(time.RFC3339),
		})
	}
	respondJSON(w, http.StatusOK, items)
}

type documentItem struct {
	ID       uint   `json:"id"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

func ListDocuments(w http.ResponseWriter, r *http.Request) {
	var documents []database.Document
	if result := database.GetDB().Order("created_at DESC").Find(&documents); result.Error != nil {
		log.Printf("Documents list error: %v", result.Error)
		respondError(w, http.StatusInternalServerError, "Failed to fetch documents")
		return
	}

	items := make([]documentItem, 0, len(documents))
	for _, d := range documents {
		items = append(items, documentItem{
			ID:       d.ID,
			URL:      "/uploads/documents/" + d.Filename,
			Title:    d.Title,
			Category: d.Category,
			Date:     d.CreatedAt.Format(time.RFC3339),
		})
	}
	respondJSON(w, http.StatusOK, items)
}
