package render

import (
	"net/url"
	"strings"
)

// SanitizeURL admits only http/https absolute URLs and root-relative paths.
// Everything else (javascript:, data:, protocol-relative, malformed) becomes
// the empty string. Catalog content is not fully trusted, so every
// externally-sourced URL destined for markup goes through here.
func SanitizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "/") {
		if strings.HasPrefix(raw, "//") {
			return ""
		}
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return u.String()
	}
	return ""
}
