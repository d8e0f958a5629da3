// Package web embeds the browser chat interface.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed index.html static
var files embed.FS

// Files exposes the embedded interface rooted at index.html.
func Files() fs.FS { return files }

// Handler serves index.html at "/" and assets under "/static/".
func Handler() http.Handler {
	return http.FileServerFS(files)
}
