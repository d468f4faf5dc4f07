package follow

import (
	"net/http"
	"strconv"

	"github.com/Nainee99/bondeo/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	target, _ := strconv.ParseUint(r.PathValue("user_id"), 10, 64)
	following, err := h.svc.Toggle(uid, target)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]bool{"following": following}, http.StatusOK)
	return nil
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	target, _ := strconv.ParseUint(r.PathValue("user_id"), 10, 64)
	following, err := h.svc.IsFollowing(uid, target)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]bool{"following": following}, http.StatusOK)
	return nil
}
