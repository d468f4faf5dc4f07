package follow

import (
	"github.com/Nainee99/bondeo/internal/monitoring"
	"github.com/Nainee99/bondeo/internal/shared/apperr"
)

type Service interface {
	// Toggle is deliberately not idempotent: each call flips the edge. The
	// client debounces double-clicks; the server just reports the new state so
	// optimistic UI updates can be reconciled.
	Toggle(viewerID, targetID uint64) (following bool, err error)
	IsFollowing(viewerID, targetID uint64) (bool, error)
	Counts(userID uint64) (followers, following int64, err error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

func (s *service) Toggle(viewerID, targetID uint64) (bool, error) {
	if viewerID == 0 {
		return false, apperr.ErrUnauthenticated
	}
	if viewerID == targetID {
		return false, apperr.ErrSelfFollow
	}
	following, err := s.repo.Toggle(viewerID, targetID)
	if err != nil {
		return false, err
	}
	if following {
		monitoring.FollowToggles.WithLabelValues("follow").Inc()
	} else {
		monitoring.FollowToggles.WithLabelValues("unfollow").Inc()
	}
	return following, nil
}

func (s *service) IsFollowing(viewerID, targetID uint64) (bool, error) {
	return s.repo.IsFollowing(viewerID, targetID)
}

func (s *service) Counts(userID uint64) (int64, int64, error) {
	return s.repo.Counts(userID)
}
