package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicUploadPrefix is the URL prefix uploaded photos are served under.
const PublicUploadPrefix = "/uploads"

// EnsureUploadDir creates the upload directory if it does not exist.
func EnsureUploadDir(uploadPath string) error {
	return os.MkdirAll(uploadPath, os.ModePerm)
}

// StoredPhotoName returns a fresh storage name for an uploaded photo,
// keeping the original extension. Random names avoid collisions and stop
// callers from steering the on-disk path.
func StoredPhotoName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !AllowedPhotoExtensions[ext] {
		ext = ".jpg"
	}
	return uuid.New().String() + ext
}

// PhotoURL returns the public retrieval path for a stored photo name.
func PhotoURL(storedName string) string {
	return PublicUploadPrefix + "/" + storedName
}
