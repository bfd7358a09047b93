package constants

const (
	APP_NAME   = "Sefwi Humjibre SDA Church"
	PUBLIC_URL = "https://sefwihumjibresda.org"

	// prefix for donation reference numbers
	DONATION_REFERENCE_PREFIX = "SDA"

	MAX_DONATIONS_TO_SHOW = 100
	MAX_RECENT_DONATIONS  = 10
	MAX_NEWS_ON_HOMEPAGE  = 5
)

// Allowed file extensions per media kind, lowercase without the dot.
var (
	ALLOWED_IMAGES = []string{"png", "jpg", "jpeg", "gif", "webp"}
	ALLOWED_VIDEOS = []string{"mp4", "avi", "mov", "wmv", "webm"}
	ALLOWED_DOCS   = []string{"pdf", "doc", "docx"}
)
