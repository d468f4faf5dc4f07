package notification

import (
	"net/http"
	"strconv"

	"github.com/Nainee99/bondeo/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	limit := httpx.QueryInt(r, "limit", 50)
	items, err := h.svc.List(uid, limit)
	if err != nil {
		return err
	}
	unread, err := h.svc.CountUnread(uid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]any{"items": items, "unread": unread}, http.StatusOK)
	return nil
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	id, _ := strconv.ParseUint(r.PathValue("notification_id"), 10, 64)
	if err := h.svc.MarkRead(uid, id); err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	return nil
}
