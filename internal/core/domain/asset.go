package domain

import (
	"net/url"
	"strings"
)

// AssetURL resolves a stored file path against the public storage URL.
// Absolute http(s) paths pass through untouched. An empty or malformed path
// yields the placeholder, or nil when no placeholder is configured.
func AssetURL(base, path, placeholder string) *string {
	fallback := func() *string {
		if placeholder == "" {
			return nil
		}
		return &placeholder
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return fallback()
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		if _, err := url.ParseRequestURI(path); err != nil {
			return fallback()
		}
		return &path
	}
	if base == "" || strings.Contains(path, "..") {
		return fallback()
	}
	u, err := url.JoinPath(base, strings.TrimPrefix(path, "/"))
	if err != nil {
		return fallback()
	}
	return &u
}
