package user

import (
	"errors"

	"github.com/Nainee99/bondeo/internal/shared/apperr"
	"github.com/Nainee99/bondeo/internal/shared/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	FindByID(id uint64) (*User, error)
	FindByHandle(handle string) (*User, error)
	FindByExternalID(externalID string) (*User, error)
	UpsertByExternalID(u *User) (*User, error)
	Update(u *User) error
	Suggestions(viewerID uint64, n int) ([]Suggestion, error)
}

type repository struct {
	store *db.Store
}

func NewRepository(store *db.Store) Repository {
	return &repository{store: store}
}

func (r *repository) FindByID(id uint64) (*User, error) {
	var u User
	err := r.store.Once(func(g *gorm.DB) error {
		return g.First(&u, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByHandle(handle string) (*User, error) {
	var u User
	err := r.store.Once(func(g *gorm.DB) error {
		return g.Where("handle = ?", handle).First(&u).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByExternalID(externalID string) (*User, error) {
	var u User
	err := r.store.Once(func(g *gorm.DB) error {
		return g.Where("external_id = ?", externalID).First(&u).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpsertByExternalID inserts the user unless a row with the same external id
// already exists, then returns whichever row won. The unique constraint makes
// concurrent first-time resolution create at most one row. A violation of the
// handle index is not absorbed here; callers pick a different handle.
func (r *repository) UpsertByExternalID(u *User) (*User, error) {
	err := r.store.Once(func(g *gorm.DB) error {
		return g.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoNothing: true,
		}).Create(u).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByExternalID(u.ExternalID)
}

func (r *repository) Update(u *User) error {
	return r.store.Once(func(g *gorm.DB) error {
		return g.Save(u).Error
	})
}

func (r *repository) Suggestions(viewerID uint64, n int) ([]Suggestion, error) {
	var out []Suggestion
	err := r.store.Once(func(g *gorm.DB) error {
		out = out[:0]
		return g.Model(&User{}).
			Select("users.id, users.handle, users.name, users.image, "+
				"(SELECT COUNT(*) FROM follows WHERE follows.followee_id = users.id) AS follower_count").
			Where("users.id <> ?", viewerID).
			Where("users.id NOT IN (SELECT followee_id FROM follows WHERE follower_id = ?)", viewerID).
			Order("RANDOM()").
			Limit(n).
			Scan(&out).Error
	})
	return out, err
}
