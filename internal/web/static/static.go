// Package static embeds the site's stylesheet and progressive-enhancement
// script so the binary ships self-contained.
package static

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed site.css site.js
var files embed.FS

// FS exposes the embedded assets.
func FS() fs.FS {
	return files
}

// Handler serves the embedded assets under the given URL prefix.
func Handler(prefix string) http.Handler {
	return http.StripPrefix(prefix, http.FileServerFS(files))
}
