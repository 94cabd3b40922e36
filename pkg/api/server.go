// Package api exposes the DXF inspection service over HTTP.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router builds the chi router with all routes configured.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link", requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if s.config.APIKey != "" {
			r.Use(s.metrics.InstrumentAuthMiddleware(apiKeyMiddleware(s.config.APIKey)))
		}

		r.Get("/health", s.metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))
		r.Post("/tags", s.metrics.InstrumentHandler("POST", "/api/v1/tags", s.handleInspect))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured.
func StartServer(config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Printf("dxfkit inspection API listening on %s", addr)
	return http.ListenAndServe(addr, server.Router())
}
