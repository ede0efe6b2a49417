package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bryanwahyu/cad-detect/internal/domain/role"
)

type contextKey string

const (
	ProfileKey   contextKey = "profile"
	RequestIDKey contextKey = "request_id"
)

// RoleContext resolves the {role} URL parameter once and stores the profile
// in the request context. Unknown roles get notFound.
func RoleContext(notFound http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := role.Resolve(chi.URLParam(r, "role"))
			if err != nil {
				notFound.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), ProfileKey, p)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ProfileFromContext returns the profile set by RoleContext. Without one it
// falls back to the path rule used by the shared pages.
func ProfileFromContext(r *http.Request) role.Profile {
	if p, ok := r.Context().Value(ProfileKey).(role.Profile); ok {
		return p
	}
	return role.ProfileFor(role.FromPath(r.URL.Path))
}
