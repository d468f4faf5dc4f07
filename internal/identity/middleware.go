package identity

import (
	"net/http"

	"github.com/Nainee99/bondeo/internal/shared/apperr"
	"github.com/Nainee99/bondeo/internal/shared/httpx"
)

// Middleware resolves the authenticated external id (placed on the context by
// httpx.AuthMiddleware) into an internal user id. Runs after auth on every
// protected route.
func Middleware(svc Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			external, err := httpx.ExternalFromCtx(r)
			if err != nil {
				httpx.WriteJSON(w, map[string]string{"error": err.Error()}, apperr.Status(err))
				return
			}
			uid, err := svc.ResolveOrCreate(external)
			if err != nil {
				httpx.WriteJSON(w, map[string]string{"error": err.Error()}, apperr.Status(err))
				return
			}
			next.ServeHTTP(w, httpx.WithUser(r, uid))
		})
	}
}
