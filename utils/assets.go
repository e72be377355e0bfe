package utils

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// RouteImageDir is where uploaded route photos live, served under /static.
	RouteImageDir = "static/img"

	// DefaultRoutePhoto is the placeholder used when a submitted photo
	// reference does not resolve to a known asset.
	DefaultRoutePhoto = "/static/img/no_image.jpeg"
)

// ResolveRoutePhoto maps a submitted photo reference to a servable URL,
// falling back to the placeholder when the file is not present.
func ResolveRoutePhoto(name string) string {
	name = strings.TrimPrefix(strings.TrimSpace(name), "/static/img/")
	if name == "" {
		return DefaultRoutePhoto
	}
	if _, err := os.Stat(filepath.Join(RouteImageDir, filepath.Base(name))); err != nil {
		return DefaultRoutePhoto
	}
	return "/static/img/" + filepath.Base(name)
}
