package site

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gideonakwabengkankam-crypto/Humjibre-SDA-church/constants"
)

func TestAllowedFile(t *testing.T) {
	tests := []struct {
		filename string
		allowed  []string
		want     bool
	}{
		{"photo.png", constants.ALLOWED_IMAGES, true},
		{"photo.PNG", constants.ALLOWED_IMAGES, true},
		{"photo.JpEg", constants.ALLOWED_IMAGES, true},
		{"photo", constants.ALLOWED_IMAGES, false},
		{"service.exe", constants.ALLOWED_IMAGES, false},
		{"archive.tar.gz", constants.ALLOWED_IMAGES, false},
		{"clip.mp4", constants.ALLOWED_VIDEOS, true},
		{"clip.mp4", constants.ALLOWED_IMAGES, false},
		{"bulletin.pdf", constants.ALLOWED_DOCS, true},
		{"bulletin.docx", constants.ALLOWED_DOCS, true},
		{".png", constants.ALLOWED_IMAGES, true},
		{"", constants.ALLOWED_IMAGES, false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, allowedFile(tt.filename, tt.allowed))
		})
	}
}

func TestSecureFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"photo.png", "photo.png"},
		{"my photo.png", "my_photo.png"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\windows\\system.ini", "system.ini"},
		{"weird!@#name.jpg", "weird___name.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, secureFilename(tt.in))
		})
	}
}

func TestStoredFilename(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	assert.Equal(t, "20250314_092653_photo.png", storedFilename("", "photo.png", ts))
	assert.Equal(t, "news_20250314_092653_banner.jpg", storedFilename("news_", "banner.jpg", ts))
}

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Harvest Service", "harvest-service"},
		{"Youth Week 2025!", "youth-week-2025"},
		{"  spaced   out  ", "spaced-out"},
		{"ALL CAPS", "all-caps"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, makeSlug(tt.in))
		})
	}
}
