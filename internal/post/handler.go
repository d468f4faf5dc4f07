package post

import (
	"net/http"
	"strconv"

	"github.com/Nainee99/bondeo/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[CreateReq](r)
	if err != nil {
		return err
	}
	p, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, p, http.StatusCreated)
	return nil
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	id, _ := strconv.ParseUint(r.PathValue("post_id"), 10, 64)
	if err := h.svc.Delete(r.Context(), uid, id); err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]string{"status": "deleted"}, http.StatusOK)
	return nil
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) error {
	id, _ := strconv.ParseUint(r.PathValue("post_id"), 10, 64)
	p, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, p, http.StatusOK)
	return nil
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) error {
	uid, _ := strconv.ParseUint(r.PathValue("user_id"), 10, 64)
	limit := httpx.QueryInt(r, "limit", DefaultPageSize)
	offset := httpx.QueryInt(r, "offset", 0)
	items, err := h.svc.ListByAuthor(r.Context(), uid, limit, offset)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"items": items, "limit": limit, "offset": offset}, http.StatusOK)
	return nil
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	id, _ := strconv.ParseUint(r.PathValue("post_id"), 10, 64)
	liked, count, err := h.svc.ToggleLike(r.Context(), uid, id)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"liked": liked, "like_count": count}, http.StatusOK)
	return nil
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	id, _ := strconv.ParseUint(r.PathValue("post_id"), 10, 64)
	in, err := httpx.Decode[CommentReq](r)
	if err != nil {
		return err
	}
	c, err := h.svc.AddComment(r.Context(), uid, id, in.Content)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, c, http.StatusCreated)
	return nil
}

func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) error {
	id, _ := strconv.ParseUint(r.PathValue("post_id"), 10, 64)
	limit := httpx.QueryInt(r, "limit", 50)
	items, err := h.svc.ListComments(r.Context(), id, limit)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"items": items}, http.StatusOK)
	return nil
}
