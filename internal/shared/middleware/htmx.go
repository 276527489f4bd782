package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const htmxKey contextKey = "htmx"

// HTMX flags requests issued by htmx so handlers can answer with a fragment.
// Responses vary on the request header to keep caches from mixing the two.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "HX-Request")
		isHTMX := r.Header.Get("HX-Request") == "true"
		ctx := context.WithValue(r.Context(), htmxKey, isHTMX)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IsHTMX(r *http.Request) bool {
	v, _ := r.Context().Value(htmxKey).(bool)
	return v
}
