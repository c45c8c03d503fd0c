// Package static embeds the site's CSS and JavaScript assets.
package static

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed css js
var assetFS embed.FS

// FS exposes the embedded assets rooted at the package directory.
var FS fs.FS = assetFS

// Handler serves the embedded assets under the given URL prefix.
func Handler(prefix string) http.Handler {
	return http.StripPrefix(prefix, http.FileServer(http.FS(assetFS)))
}
