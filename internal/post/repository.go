package post

import (
	"errors"

	"github.com/Nainee99/bondeo/internal/shared/apperr"
	"github.com/Nainee99/bondeo/internal/shared/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const countsSelect = "posts.*, " +
	"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS like_count, " +
	"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

type Repository interface {
	Create(p *Post) error
	FindByID(id uint64) (*PostWithCounts, error)
	DeleteCascade(postID uint64) error
	List(limit, offset int) ([]PostWithCounts, error)
	ListByAuthor(authorID uint64, limit, offset int) ([]PostWithCounts, error)
	CountByAuthor(authorID uint64) (int64, error)
	ToggleLike(userID, postID uint64) (liked bool, err error)
	LikeCount(postID uint64) (int64, error)
	CreateComment(c *Comment) error
	ListComments(postID uint64, limit int) ([]Comment, error)
}

type repository struct {
	store *db.Store
}

func NewRepository(store *db.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Create(p *Post) error {
	return r.store.Once(func(g *gorm.DB) error {
		return g.Create(p).Error
	})
}

func (r *repository) FindByID(id uint64) (*PostWithCounts, error) {
	var out PostWithCounts
	err := r.store.Once(func(g *gorm.DB) error {
		return g.Model(&Post{}).
			Select(countsSelect).
			Where("posts.id = ?", id).
			Take(&out).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// DeleteCascade removes the post and its likes and comments in one
// transaction so nothing is orphaned.
func (r *repository) DeleteCascade(postID uint64) error {
	return r.store.Once(func(g *gorm.DB) error {
		return g.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("post_id = ?", postID).Delete(&Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id = ?", postID).Delete(&Comment{}).Error; err != nil {
				return err
			}
			return tx.Delete(&Post{}, postID).Error
		})
	})
}

func (r *repository) List(limit, offset int) ([]PostWithCounts, error) {
	var out []PostWithCounts
	err := r.store.Once(func(g *gorm.DB) error {
		out = out[:0]
		return g.Model(&Post{}).
			Select(countsSelect).
			Order("posts.created_at DESC, posts.id DESC").
			Limit(limit).Offset(offset).
			Scan(&out).Error
	})
	return out, err
}

func (r *repository) ListByAuthor(authorID uint64, limit, offset int) ([]PostWithCounts, error) {
	var out []PostWithCounts
	err := r.store.Once(func(g *gorm.DB) error {
		out = out[:0]
		return g.Model(&Post{}).
			Select(countsSelect).
			Where("posts.author_id = ?", authorID).
			Order("posts.created_at DESC, posts.id DESC").
			Limit(limit).Offset(offset).
			Scan(&out).Error
	})
	return out, err
}

func (r *repository) CountByAuthor(authorID uint64) (int64, error) {
	var n int64
	err := r.store.Once(func(g *gorm.DB) error {
		return g.Model(&Post{}).Where("author_id = ?", authorID).Count(&n).Error
	})
	return n, err
}

func (r *repository) ToggleLike(userID, postID uint64) (bool, error) {
	var liked bool
	err := r.store.Once(func(g *gorm.DB) error {
		return g.Transaction(func(tx *gorm.DB) error {
			var n int64
			if err := tx.Model(&Post{}).Where("id = ?", postID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return apperr.ErrNotFound
			}
			var existing int64
			if err := tx.Model(&Like{}).
				Where("post_id = ? AND user_id = ?", postID, userID).
				Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				liked = false
				return tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&Like{}).Error
			}
			liked = true
			return tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&Like{PostID: postID, UserID: userID}).Error
		})
	})
	return liked, err
}

func (r *repository) LikeCount(postID uint64) (int64, error) {
	var n int64
	err := r.store.Once(func(g *gorm.DB) error {
		return g.Model(&Like{}).Where("post_id = ?", postID).Count(&n).Error
	})
	return n, err
}

func (r *repository) CreateComment(c *Comment) error {
	return r.store.Once(func(g *gorm.DB) error {
		var n int64
		if err := g.Model(&Post{}).Where("id = ?", c.PostID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return apperr.ErrNotFound
		}
		return g.Create(c).Error
	})
}

func (r *repository) ListComments(postID uint64, limit int) ([]Comment, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var out []Comment
	err := r.store.Once(func(g *gorm.DB) error {
		out = out[:0]
		return g.Where("post_id = ?", postID).
			Order("created_at ASC, id ASC").
			Limit(limit).
			Find(&out).Error
	})
	return out, err
}
