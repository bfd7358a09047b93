package database

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminUser is a staff account with access to the admin endpoints.
// Accounts are seeded at startup and never created through the API.
type AdminUser struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex"`
	PasswordHash []byte
	Role         string
	Email        string
	SessionToken string `gorm:"index"`
}

// Photo is an uploaded gallery image.
type Photo struct {
	gorm.Model
	Filename    string
	Category    string `gorm:"index"`
	Description string
	Tags        datatypes.JSON
	UploadedBy  string
}

type Video struct {
	gorm.Model
	Filename    string
	Title       string
	Description string
	UploadedBy  string
}

type Document struct {
	gorm.Model
	Filename   string
	Title      string
	Category   string
	UploadedBy string
}

type NewsPost struct {
	gorm.Model
	Title         string
	Slug          string `gorm:"index"`
	Content       string `gorm:"type:text"`
	ImageFilename string
	Author        string
	Published     bool `gorm:"default:true"`
}

// Donation is written only after the payment gateway reports success,
// so a row here always corresponds to a completed charge attempt.
type Donation struct {
	gorm.Model
	DonorName       string
	DonorEmail      string
	DonorPhone      string
	Amount          float64
	Purpose         string `gorm:"index"`
	Provider        string
	ReferenceNumber string `gorm:"uniqueIndex"`
	Status          string `gorm:"default:completed"`
	TransactionID   string
}

type ContactMessage struct {
	gorm.Model
	Name    string
	Email   string
	Subject string
	Message string `gorm:"type:text"`
	Read    bool   `gorm:"default:false"`
}

// ErrInvalidCredentials covers both an unknown username and a wrong
// password, so callers cannot tell which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// VerifyAdmin checks a username/password pair against the stored
// bcrypt hash. Any mismatch yields ErrInvalidCredentials.
func VerifyAdmin(db *gorm.DB, username, password string) (*AdminUser, error) {
	var admin AdminUser
	result := db.Where(&AdminUser{Username: username}).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, result.Error
	}

	if err := bcrypt.CompareHashAndPassword(admin.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &admin, nil
}

// GetAdminByToken resolves a session token to its account, or nil if
// the token is unknown.
func GetAdminByToken(db *gorm.DB, token string) (*AdminUser, error) {
	if token == "" {
		return nil, nil
	}

	var admin AdminUser
	result := db.Where(&AdminUser{SessionToken: token}).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &admin, nil
}

// GetNewsBySlug returns the news post with the given slug, or nil if
// none exists.
func GetNewsBySlug(db *gorm.DB, slug string) (*NewsPost, error) {
	var post NewsPost
	result := db.Where("slug = ?", slug).First(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}
