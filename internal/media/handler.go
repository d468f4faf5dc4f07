package media

import (
	"net/http"

	"github.com/Nainee99/bondeo/internal/shared/httpx"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) error {
	if _, err := httpx.UserFromCtx(r); err != nil {
		return err
	}
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		return err
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		return err
	}
	defer file.Close()

	url, err := h.svc.Upload(r.Context(), hdr.Filename, hdr.Header.Get("Content-Type"), file)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, map[string]string{"url": url}, http.StatusCreated)
	return nil
}
