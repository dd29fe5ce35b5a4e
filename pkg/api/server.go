// Package api binkit REST API
//
// @title           binkit REST API
// @version         1.0.0
// @description     HTTP front end for the binkit codecs and the test vector store.
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

const swaggerUI = `<!DOCTYPE html>
<html>
<head>
	 <title>binkit API Documentation</title>
	 <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui.css" />
</head>
<body>
	 <div id="swagger-ui"></div>
	 <script src="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui-bundle.js"></script>
	 <script>
	   window.onload = function() {
	     SwaggerUIBundle({
	       url: '/swagger/swagger.json',
	       dom_id: '#swagger-ui',
	       presets: [
	         SwaggerUIBundle.presets.apis,
	         SwaggerUIBundle.presets.standalone
	       ]
	     });
	   };
	 </script>
</body>
</html>`

// NewRouter wires every route of server onto a chi router. gatherer backs
// the /metrics endpoint; nil uses the default gatherer.
func NewRouter(server *Server, gatherer prometheus.Gatherer) http.Handler {
	metrics := server.metrics
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()

	// Middleware
	if server.config.LogRequests {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(server.config.APIKey)))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Checksums and digests
		r.Post("/checksum/{algo}", metrics.InstrumentHandler("POST", "/api/v1/checksum/{algo}", server.handleChecksum))
		r.Post("/digest/sha1", metrics.InstrumentHandler("POST", "/api/v1/digest/sha1", server.handleSHA1))

		// Text codecs
		r.Post("/base64/encode", metrics.InstrumentHandler("POST", "/api/v1/base64/encode", server.handleBase64Encode))
		r.Post("/base64/decode", metrics.InstrumentHandler("POST", "/api/v1/base64/decode", server.handleBase64Decode))
		r.Get("/vlq/encode", metrics.InstrumentHandler("GET", "/api/v1/vlq/encode", server.handleVLQEncode))
		r.Get("/vlq/decode", metrics.InstrumentHandler("GET", "/api/v1/vlq/decode", server.handleVLQDecode))
		r.Post("/utf/{encoding}/decode", metrics.InstrumentHandler("POST", "/api/v1/utf/{encoding}/decode", server.handleUTFDecode))
		r.Post("/utf/{encoding}/encode", metrics.InstrumentHandler("POST", "/api/v1/utf/{encoding}/encode", server.handleUTFEncode))

		// Binary
		r.Post("/ints/{type}/decode", metrics.InstrumentHandler("POST", "/api/v1/ints/{type}/decode", server.handleIntsDecode))
		r.Get("/pixel/{rgba}", metrics.InstrumentHandler("GET", "/api/v1/pixel/{rgba}", server.handlePixel))

		// WebSocket framing
		r.Get("/websocket/accept", metrics.InstrumentHandler("GET", "/api/v1/websocket/accept", server.handleWebsocketAccept))
		r.Post("/websocket/decode", metrics.InstrumentHandler("POST", "/api/v1/websocket/decode", server.handleWebsocketDecode))
		r.Post("/websocket/encode", metrics.InstrumentHandler("POST", "/api/v1/websocket/encode", server.handleWebsocketEncode))

		// Test vectors
		r.Post("/vectors", metrics.InstrumentHandler("POST", "/api/v1/vectors", server.handleCreateVector))
		r.Get("/vectors", metrics.InstrumentHandler("GET", "/api/v1/vectors", server.handleListVectors))
		r.Get("/vectors/{id}", metrics.InstrumentHandler("GET", "/api/v1/vectors/{id}", server.handleGetVector))
		r.Get("/vectors/{id}/verify", metrics.InstrumentHandler("GET", "/api/v1/vectors/{id}/verify", server.handleVerifyVector))
	})

	// Swagger documentation (unprotected)
	r.Get("/swagger/*", handleSwagger)

	return r
}

func handleSwagger(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/swagger/", "/swagger/index.html":
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerUI))
	case "/swagger/swagger.json":
		doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
		if err != nil {
			log.Printf("Error generating swagger doc: %v", err)
			http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	default:
		http.NotFound(w, r)
	}
}

// StartServer starts the HTTP server with all routes configured. It blocks
// until the listener fails.
func StartServer(store VectorStore, config ServerConfig) error {
	SwaggerInfo.Host = fmt.Sprintf("localhost:%d", config.Port)

	metrics := NewMetrics(prometheus.DefaultRegisterer)
	server := NewServer(store, config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Printf("Starting binkit REST API server on %s", addr)
	log.Printf("Metrics available at: http://%s/metrics", addr)

	return http.ListenAndServe(addr, NewRouter(server, prometheus.DefaultGatherer))
}
