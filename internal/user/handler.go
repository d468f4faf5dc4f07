package user

import (
	"net/http"

	"github.com/Nainee99/bondeo/internal/shared/httpx"
)

// FollowCounter reports derived follower/following counts for a user.
type FollowCounter interface {
	Counts(userID uint64) (followers, following int64, err error)
}

// PostCounter reports how many posts a user has authored.
type PostCounter interface {
	CountByAuthor(authorID uint64) (int64, error)
}

type Handler struct {
	svc     Service
	follows FollowCounter
	posts   PostCounter
}

func NewHandler(s Service, f FollowCounter, p PostCounter) *Handler {
	return &Handler{svc: s, follows: f, posts: p}
}

func (h *Handler) profile(u *User) (*Profile, error) {
	followers, following, err := h.follows.Counts(u.ID)
	if err != nil {
		return nil, err
	}
	posts, err := h.posts.CountByAuthor(u.ID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		User:           *u,
		FollowerCount:  followers,
		FollowingCount: following,
		PostCount:      posts,
	}, nil
}

func (h *Handler) GetByHandle(w http.ResponseWriter, r *http.Request) error {
	u, err := h.svc.GetByHandle(r.PathValue("handle"))
	if err != nil {
		return err
	}
	p, err := h.profile(u)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, p, http.StatusOK)
	return nil
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	u, err := h.svc.GetByID(uid)
	if err != nil {
		return err
	}
	p, err := h.profile(u)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, p, http.StatusOK)
	return nil
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.UserFromCtx(r)
	if err != nil {
		return err
	}
	in, err := httpx.Decode[UpdateReq](r)
	if err != nil {
		return err
	}
	u, err := h.svc.UpdateProfile(uid, in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, u, http.StatusOK)
	return nil
}
