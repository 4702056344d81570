package menu

import (
	"net/url"
	"strings"
)

// PlaceholderImage is served when a row has no usable image reference.
const PlaceholderImage = "/images/placeholder-prato.svg"

func isHTTPURL(value string) bool {
	if value == "" {
		return false
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// NormalizeImageSrc validates an image cell: absolute http(s) URLs pass
// through, relative paths are rooted at "/" with a leading "/public"
// stripped, anything else is rejected as empty.
func NormalizeImageSrc(imageURL string) string {
	trimmed := strings.TrimSpace(imageURL)
	if trimmed == "" {
		return ""
	}
	if isHTTPURL(trimmed) {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "//") {
		return ""
	}
	normalized := strings.TrimPrefix(trimmed, "/public")
	if strings.HasPrefix(normalized, "/") {
		return normalized
	}
	if strings.HasPrefix(normalized, "http") {
		return ""
	}
	return "/" + normalized
}

// ImageSrc resolves the image for an item, falling back to the placeholder.
func ImageSrc(imageURL string) string {
	if normalized := NormalizeImageSrc(imageURL); normalized != "" {
		return normalized
	}
	return PlaceholderImage
}
