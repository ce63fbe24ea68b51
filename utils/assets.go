package utils

import (
	"net/url"
	"strings"
)

// ResolveAssetURL qualifies a stored file path against the asset host.
// Already-qualified URLs pass through untouched; an empty path stays empty so
// the caller renders no media.
func ResolveAssetURL(path, base string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return base + path
	}
	return base + "/" + path
}

// DocViewerURL builds the embedded document viewer URL for a resolved file URL.
func DocViewerURL(fileURL string) string {
	return "https://docs.google.com/gview?url=" + url.QueryEscape(fileURL) + "&embedded=true"
}
