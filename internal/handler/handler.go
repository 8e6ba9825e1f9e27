package handler

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Handler carries shared dependencies for cross-cutting endpoints
// (health, CORS).
type Handler struct {
	pool        *pgxpool.Pool
	frontendURL string
}

// New creates the base Handler.
func New(pool *pgxpool.Pool, frontendURL string) *Handler {
	return &Handler{pool: pool, frontendURL: frontendURL}
}

// CORS allows the site frontend origin on every route.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
