package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kawakarlyndo/Campomagnetico/internal/field"
	"github.com/Kawakarlyndo/Campomagnetico/internal/handlers"
	"github.com/Kawakarlyndo/Campomagnetico/internal/observability"
	"github.com/Kawakarlyndo/Campomagnetico/internal/webui"
)

func NewRouter() http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", observability.PrometheusHandler())

	field.RegisterRoutes(r)
	webui.RegisterRoutes(r)

	return r
}
