package feed

import (
	"context"

	"github.com/Nainee99/bondeo/internal/monitoring"
	"github.com/Nainee99/bondeo/internal/post"
	"github.com/Nainee99/bondeo/internal/shared/apperr"
	"github.com/Nainee99/bondeo/internal/user"
)

// DefaultSuggestions matches the size of the who-to-follow panel.
const DefaultSuggestions = 3

type Service interface {
	// Home is the reverse-chronological feed; no ranking beyond recency.
	Home(ctx context.Context, limit, offset int) ([]post.PostWithCounts, error)
	// Suggestions returns up to n users the viewer does not follow yet.
	Suggestions(ctx context.Context, viewerID uint64, n int) ([]user.Suggestion, error)
}

type service struct {
	posts post.Service
	users user.Repository
	cache *Cache
}

// NewService composes the feed from the post and user domains. cache may be
// nil; the feed then always reads through.
func NewService(posts post.Service, users user.Repository, cache *Cache) Service {
	return &service{posts: posts, users: users, cache: cache}
}

func (s *service) Home(ctx context.Context, limit, offset int) ([]post.PostWithCounts, error) {
	firstPage := offset == 0 && (limit <= 0 || limit == post.DefaultPageSize)
	if firstPage && s.cache != nil {
		if items, ok := s.cache.GetHome(ctx); ok {
			monitoring.FeedCache.WithLabelValues("hit").Inc()
			return items, nil
		}
		monitoring.FeedCache.WithLabelValues("miss").Inc()
	}
	items, err := s.posts.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if firstPage && s.cache != nil {
		s.cache.SetHome(ctx, items)
	}
	return items, nil
}

func (s *service) Suggestions(ctx context.Context, viewerID uint64, n int) ([]user.Suggestion, error) {
	if viewerID == 0 {
		return nil, apperr.ErrUnauthenticated
	}
	if n <= 0 || n > 10 {
		n = DefaultSuggestions
	}
	return s.users.Suggestions(viewerID, n)
}
