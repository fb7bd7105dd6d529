// Package webui serves the embedded browser visualizer: the input form,
// results table, and the canvas/chart renderings of the field.
package webui

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed static
var staticFS embed.FS

// RegisterRoutes mounts the visualizer at / and its assets under /static/.
func RegisterRoutes(r chi.Router) {
	assets, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The subtree is embedded at compile time; failure here means the
		// binary itself is broken.
		panic(err)
	}

	fileServer := http.FileServer(http.FS(assets))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFileFS(w, req, assets, "index.html")
	})
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))
}
