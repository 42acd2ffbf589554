package validation

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

// AllowedImageExtensions lists the accepted upload extensions, without the dot.
var AllowedImageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"webp": true,
}

// CategoryPattern defines the valid remedy filter format: letters, digits, hyphens, underscores.
var CategoryPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateURL checks a service base URL such as CLASSIFIER_URL or BASE_URL.
// It must be absolute http(s) with a host, and carry no query or fragment
// since request paths are appended to it.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	if u.RawQuery != "" || u.Fragment != "" {
		return false, "URL must not have a query or fragment"
	}

	return true, ""
}

// ImageExtension returns the lower-cased extension of filename without the dot.
func ImageExtension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// ValidateImageUpload checks an uploaded image's name and size.
// maxBytes <= 0 disables the size check.
func ValidateImageUpload(filename string, size, maxBytes int64) (bool, string) {
	if strings.TrimSpace(filename) == "" {
		return false, "No image selected"
	}

	if !AllowedImageExtensions[ImageExtension(filename)] {
		return false, "Image must be a PNG, JPG, JPEG or WEBP file"
	}

	if size <= 0 {
		return false, "Image is empty"
	}

	if maxBytes > 0 && size > maxBytes {
		return false, fmt.Sprintf("Image must be at most %d MB", maxBytes/(1024*1024))
	}

	return true, ""
}

// NormalizeCategory lowercases and trims a category filter value.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// ValidateCategory checks a remedy filter value. Empty means no filter.
func ValidateCategory(category string) bool {
	if category == "" {
		return true
	}
	if len(category) > 32 {
		return false
	}
	return CategoryPattern.MatchString(category)
}
