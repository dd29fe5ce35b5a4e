package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// APIKeyHeader carries the shared secret on /api/v1 requests.
const APIKeyHeader = "X-API-Key"

const (
	errMissingAPIKey  = "api key required: set the " + APIKeyHeader + " header"
	errRejectedAPIKey = "api key rejected"
)

// apiKeyMiddleware admits requests whose X-API-Key matches expectedKey. An
// empty expectedKey disables the check.
func apiKeyMiddleware(expectedKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if expectedKey == "" {
			return next
		}
		want := []byte(expectedKey)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(APIKeyHeader)
			switch {
			case got == "":
				unauthorized(w, errMissingAPIKey)
			case subtle.ConstantTimeCompare([]byte(got), want) != 1:
				unauthorized(w, errRejectedAPIKey)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `APIKey header="`+APIKeyHeader+`"`)
	sendError(w, message, http.StatusUnauthorized)
}

func writeEnvelope(w http.ResponseWriter, statusCode int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

// sendSuccess wraps data in a successful envelope with status 200.
func sendSuccess(w http.ResponseWriter, data interface{}) {
	writeEnvelope(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// sendError writes a failed envelope carrying message.
func sendError(w http.ResponseWriter, message string, statusCode int) {
	writeEnvelope(w, statusCode, APIResponse{Error: message})
}
