package feed

import (
	"net/http"

	"github.com/Nainee99/bondeo/internal/post"
	"github.com/Nainee99/bondeo/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) error {
	limit := httpx.QueryInt(r, "limit", post.DefaultPageSize)
	offset := httpx.QueryInt(r, "offset", 0)
	items, err := h.svc.Home(r.Context(), limit, offset)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"items": items, "limit": limit, "offset": offset}, http.StatusOK)
	return nil
}

func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	n := httpx.QueryInt(r, "n", DefaultSuggestions)
	users, err := h.svc.Suggestions(r.Context(), uid, n)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"users": users}, http.StatusOK)
	return nil
}
