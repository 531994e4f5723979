package core

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ValidateAssetPath checks a site-relative asset reference such as
// "/headshot.png".
func ValidateAssetPath(p string) error {
	if p == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must start with /")
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("path cannot contain query string")
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("path cannot contain fragment")
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("path cannot contain parent directory references")
	}

	if strings.HasSuffix(p, "/") {
		return fmt.Errorf("path must name a file")
	}

	return nil
}

// AssetName maps an asset reference to its name inside a public fs.FS.
func AssetName(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

// AnchorID returns the element id an in-page link points at.
func AnchorID(href string) (string, bool) {
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// IsExternalURI reports whether href is an absolute http(s) URL with a host
// or a mailto link with an address part.
func IsExternalURI(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}

	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return u.Opaque != ""
	default:
		return false
	}
}
