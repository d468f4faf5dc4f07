package follow

import (
	"errors"
	"fmt"

	"github.com/Nainee99/bondeo/internal/notification"
	"github.com/Nainee99/bondeo/internal/shared/apperr"
	"github.com/Nainee99/bondeo/internal/shared/db"
	"github.com/Nainee99/bondeo/internal/user"
	"gorm.io/gorm"
)

type Repository interface {
	// Toggle flips the (viewer -> target) edge inside one transaction and
	// reports the resulting state. A new edge writes a FOLLOW notification in
	// the same transaction; removing an edge writes nothing.
	Toggle(viewerID, targetID uint64) (following bool, err error)
	IsFollowing(viewerID, targetID uint64) (bool, error)
	Following(viewerID uint64) ([]uint64, error)
	Counts(userID uint64) (followers, following int64, err error)
}

type repository struct {
	store  *db.Store
	notifs notification.Repository
}

func NewRepository(store *db.Store, notifs notification.Repository) Repository {
	return &repository{store: store, notifs: notifs}
}

func (r *repository) Toggle(viewerID, targetID uint64) (bool, error) {
	var following bool
	// The whole flip is one transaction; a transient failure rolls it back and
	// Once re-runs it a single time.
	err := r.store.Once(func(g *gorm.DB) error {
		return g.Transaction(func(tx *gorm.DB) error {
			// The target is checked inside the transaction so a concurrent
			// user deletion cannot race a dangling edge into the table.
			var targets int64
			if err := tx.Model(&user.User{}).Where("id = ?", targetID).Count(&targets).Error; err != nil {
				return err
			}
			if targets == 0 {
				return apperr.ErrNotFound
			}
			var edge Follow
			err := tx.Where("follower_id = ? AND followee_id = ?", viewerID, targetID).
				First(&edge).Error
			switch {
			case err == nil:
				following = false
				return tx.Where("follower_id = ? AND followee_id = ?", viewerID, targetID).
					Delete(&Follow{}).Error
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&Follow{FollowerID: viewerID, FolloweeID: targetID}).Error; err != nil {
					return err
				}
				following = true
				return r.notifs.CreateInTx(tx, &notification.Notification{
					RecipientID: targetID,
					ActorID:     viewerID,
					Kind:        notification.KindFollow,
				})
			default:
				return err
			}
		})
	})
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) || errors.Is(err, apperr.ErrStoreUnavailable) {
			return false, err
		}
		return false, fmt.Errorf("%w: %v", apperr.ErrFollowTransaction, err)
	}
	return following, nil
}

func (r *repository) IsFollowing(viewerID, targetID uint64) (bool, error) {
	var n int64
	err := r.store.Once(func(g *gorm.DB) error {
		return g.Model(&Follow{}).
			Where("follower_id = ? AND followee_id = ?", viewerID, targetID).
			Count(&n).Error
	})
	return n > 0, err
}

func (r *repository) Following(viewerID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.store.Once(func(g *gorm.DB) error {
		ids = ids[:0]
		return g.Model(&Follow{}).
			Where("follower_id = ?", viewerID).
			Pluck("followee_id", &ids).Error
	})
	return ids, err
}

func (r *repository) Counts(userID uint64) (int64, int64, error) {
	var followers, following int64
	err := r.store.Once(func(g *gorm.DB) error {
		if err := g.Model(&Follow{}).Where("followee_id = ?", userID).Count(&followers).Error; err != nil {
			return err
		}
		return g.Model(&Follow{}).Where("follower_id = ?", userID).Count(&following).Error
	})
	if err != nil {
		return 0, 0, err
	}
	return followers, following, nil
}
