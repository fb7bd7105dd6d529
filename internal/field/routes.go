package field

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the field endpoints onto the given router under the
// /api prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/status", HandleStatus)
		r.Post("/compute", HandleCompute)
		r.Get("/profile", HandleProfile)
	})
}
