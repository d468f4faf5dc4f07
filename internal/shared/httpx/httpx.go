package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Nainee99/bondeo/internal/shared/apperr"
	"github.com/Nainee99/bondeo/internal/shared/jwt"
)

type HandlerFunc func(http.ResponseWriter, *http.Request) error

func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			WriteJSON(w, map[string]any{"error": err.Error()}, apperr.Status(err))
		}
	})
}

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func Decode[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}

func QueryInt(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

type ctxKey string

const (
	externalKey ctxKey = "external_id"
	userKey     ctxKey = "user_id"
)

func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// AuthMiddleware validates the bearer token against the given secret and puts
// the external user id on the request context. It does not touch the users
// table; the identity middleware resolves the internal id afterwards.
func AuthMiddleware(secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := BearerToken(r)
		if tok == "" {
			WriteJSON(w, map[string]string{"error": "missing token"}, http.StatusUnauthorized)
			return
		}
		sub, err := jwt.Parse(tok, secret)
		if err != nil || sub == "" {
			WriteJSON(w, map[string]string{"error": "invalid token"}, http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), externalKey, sub)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ExternalFromCtx(r *http.Request) (string, error) {
	id, _ := r.Context().Value(externalKey).(string)
	if id == "" {
		return "", apperr.ErrUnauthenticated
	}
	return id, nil
}

// WithUser returns a request carrying the resolved internal user id.
func WithUser(r *http.Request, id uint64) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userKey, id))
}

func UserFromCtx(r *http.Request) (uint64, error) {
	id, _ := r.Context().Value(userKey).(uint64)
	if id == 0 {
		return 0, apperr.ErrUnauthenticated
	}
	return id, nil
}
