package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// Cors lets browser clients served from other origins read the API.
// origins is a comma separated list, "*" allows any origin.
func Cors(h http.Handler, origins string) http.Handler {

	allowed := []string{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowed = append(allowed, origin)
		}
	}
	if len(allowed) == 0 {
		return h
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIdHeader},
		ExposedHeaders: []string{RequestIdHeader},
		MaxAge:         300,
	})(h)
}
