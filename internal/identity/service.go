package identity

import (
	"fmt"
	"strings"

	"github.com/Nainee99/bondeo/internal/shared/apperr"
	"github.com/Nainee99/bondeo/internal/shared/db"
	"github.com/Nainee99/bondeo/internal/user"
)

// Service maps external authentication identities (the JWT subject issued by
// the identity provider) to internal user rows, creating the row on first
// sight.
type Service interface {
	ResolveOrCreate(externalID string) (uint64, error)
}

type service struct {
	repo user.Repository
}

func NewService(r user.Repository) Service {
	return &service{repo: r}
}

func (s *service) ResolveOrCreate(externalID string) (uint64, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return 0, apperr.ErrIdentityUnavailable
	}
	base := defaultHandle(externalID)
	// Two distinct external ids can derive the same handle. The external_id
	// conflict target absorbs replays, so any remaining duplicate error is a
	// handle clash; retry with a suffix until one sticks.
	for attempt := 0; attempt < 5; attempt++ {
		handle := base
		if attempt > 0 {
			handle = fmt.Sprintf("%s%d", base, attempt)
		}
		u, err := s.repo.UpsertByExternalID(&user.User{
			ExternalID: externalID,
			Handle:     handle,
			Name:       base,
		})
		if err == nil {
			return u.ID, nil
		}
		if !db.IsDuplicate(err) {
			return 0, err
		}
	}
	return 0, apperr.ErrIdentityUnavailable
}

// defaultHandle derives a unique handle from the external id. Providers issue
// ids like "user_2abcDEF..."; keeping the tail keeps handles distinct while
// staying inside the column bound.
func defaultHandle(externalID string) string {
	id := externalID
	if i := strings.LastIndex(id, "_"); i >= 0 && i+1 < len(id) {
		id = id[i+1:]
	}
	if len(id) > 24 {
		id = id[len(id)-24:]
	}
	return fmt.Sprintf("user_%s", strings.ToLower(id))
}
