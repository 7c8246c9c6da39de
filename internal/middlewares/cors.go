package middlewares

import (
	"net/http"

	"github.com/rs/cors"
)

var corsHandler = cors.New(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodHead,
		http.MethodOptions,
	},
	AllowedHeaders:   []string{"*"},
	AllowCredentials: true,
})

// CorsMiddleware allows every origin, method and header.
func CorsMiddleware(next http.Handler) http.Handler {
	return corsHandler.Handler(next)
}
