// utils/validator.go - Input validation
package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxPhotoSizeBytes is the upload size ceiling (10 MiB).
const MaxPhotoSizeBytes = int64(10 * 1024 * 1024)

// AllowedPhotoExtensions is the image extension allow-list.
var AllowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidatePhotoFile checks an uploaded photo's filename and size. Returns
// false with a caller-facing message on rejection. The reverse proxy does
// the same checks up front; this re-check keeps the API safe when called
// directly.
func ValidatePhotoFile(filename string, size int64) (bool, string) {
	ext := strings.ToLower(filepath.Ext(filename))
	if filename == "" || !AllowedPhotoExtensions[ext] {
		return false, fmt.Sprintf("Invalid file type. Allowed: %s", strings.Join(allowedExtensionList(), ", "))
	}
	if size > MaxPhotoSizeBytes {
		return false, fmt.Sprintf("File too large. Max %d MB", MaxPhotoSizeBytes/(1024*1024))
	}
	return true, ""
}

func allowedExtensionList() []string {
	// Fixed order for stable error messages.
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
