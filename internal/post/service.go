package post

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Nainee99/bondeo/internal/monitoring"
	"github.com/Nainee99/bondeo/internal/shared/apperr"
)

const DefaultPageSize = 20

// Publisher emits post events downstream. Fanout consumers are out of scope
// here; publishing is fire and forget.
type Publisher interface {
	WriteJSON(ctx context.Context, v any) error
}

// Invalidator drops cached feed pages after a write.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type Service interface {
	Create(ctx context.Context, authorID uint64, in CreateReq) (*PostWithCounts, error)
	Delete(ctx context.Context, requesterID, postID uint64) error
	GetByID(ctx context.Context, id uint64) (*PostWithCounts, error)
	List(ctx context.Context, limit, offset int) ([]PostWithCounts, error)
	ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]PostWithCounts, error)
	CountByAuthor(authorID uint64) (int64, error)
	ToggleLike(ctx context.Context, userID, postID uint64) (liked bool, count int64, err error)
	AddComment(ctx context.Context, authorID, postID uint64, content string) (*Comment, error)
	ListComments(ctx context.Context, postID uint64, limit int) ([]Comment, error)
}

type service struct {
	repo   Repository
	events Publisher
	cache  Invalidator
}

// NewService wires the post domain. events and cache may be nil; the service
// then skips publishing and cache invalidation.
func NewService(r Repository, events Publisher, cache Invalidator) Service {
	return &service{repo: r, events: events, cache: cache}
}

func (s *service) Create(ctx context.Context, authorID uint64, in CreateReq) (*PostWithCounts, error) {
	if authorID == 0 {
		return nil, apperr.ErrUnauthenticated
	}
	content := strings.TrimSpace(in.Content)
	if content == "" && in.ImageURL == "" {
		return nil, apperr.ErrEmptyPost
	}
	if utf8.RuneCountInString(content) > MaxContentLen {
		return nil, apperr.ErrContentTooLong
	}
	p := &Post{AuthorID: authorID, Content: content, ImageURL: in.ImageURL}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	monitoring.PostsCreated.Inc()
	s.afterWrite(ctx, p)
	return &PostWithCounts{Post: *p}, nil
}

func (s *service) Delete(ctx context.Context, requesterID, postID uint64) error {
	existing, err := s.repo.FindByID(postID)
	if err != nil {
		return err
	}
	if existing.AuthorID != requesterID {
		return apperr.ErrForbidden
	}
	if err := s.repo.DeleteCascade(postID); err != nil {
		return err
	}
	monitoring.PostsDeleted.Inc()
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return nil
}

func (s *service) GetByID(ctx context.Context, id uint64) (*PostWithCounts, error) {
	return s.repo.FindByID(id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]PostWithCounts, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(limit, offset)
}

func (s *service) ListByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]PostWithCounts, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByAuthor(authorID, limit, offset)
}

func (s *service) CountByAuthor(authorID uint64) (int64, error) {
	return s.repo.CountByAuthor(authorID)
}

func (s *service) ToggleLike(ctx context.Context, userID, postID uint64) (bool, int64, error) {
	if userID == 0 {
		return false, 0, apperr.ErrUnauthenticated
	}
	liked, err := s.repo.ToggleLike(userID, postID)
	if err != nil {
		return false, 0, err
	}
	count, err := s.repo.LikeCount(postID)
	if err != nil {
		return liked, 0, err
	}
	return liked, count, nil
}

func (s *service) AddComment(ctx context.Context, authorID, postID uint64, content string) (*Comment, error) {
	if authorID == 0 {
		return nil, apperr.ErrUnauthenticated
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.ErrEmptyPost
	}
	if utf8.RuneCountInString(content) > MaxContentLen {
		return nil, apperr.ErrContentTooLong
	}
	c := &Comment{PostID: postID, AuthorID: authorID, Content: content}
	if err := s.repo.CreateComment(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) ListComments(ctx context.Context, postID uint64, limit int) ([]Comment, error) {
	return s.repo.ListComments(postID, limit)
}

func (s *service) afterWrite(ctx context.Context, p *Post) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	if s.events != nil {
		ev := Event{
			ID:        p.ID,
			AuthorID:  p.AuthorID,
			Content:   p.Content,
			ImageURL:  p.ImageURL,
			CreatedAt: p.CreatedAt,
		}
		pctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.events.WriteJSON(pctx, ev); err != nil {
			log.Printf("post event publish: %v", err)
		}
	}
}
