package notification

import (
	"errors"

	"github.com/Nainee99/bondeo/internal/shared/apperr"
	"github.com/Nainee99/bondeo/internal/shared/db"
	"gorm.io/gorm"
)

type Repository interface {
	// CreateInTx inserts a notification inside a caller-owned transaction, so
	// the side effect commits or rolls back together with its cause.
	CreateInTx(tx *gorm.DB, n *Notification) error
	List(recipientID uint64, limit int) ([]Notification, error)
	MarkRead(recipientID, id uint64) error
	CountUnread(recipientID uint64) (int64, error)
}

type repository struct {
	store *db.Store
}

func NewRepository(store *db.Store) Repository {
	return &repository{store: store}
}

func (r *repository) CreateInTx(tx *gorm.DB, n *Notification) error {
	return tx.Create(n).Error
}

func (r *repository) List(recipientID uint64, limit int) ([]Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var out []Notification
	err := r.store.Once(func(g *gorm.DB) error {
		out = out[:0]
		return g.Where("recipient_id = ?", recipientID).
			Order("created_at DESC, id DESC").
			Limit(limit).
			Find(&out).Error
	})
	return out, err
}

func (r *repository) MarkRead(recipientID, id uint64) error {
	return r.store.Once(func(g *gorm.DB) error {
		res := g.Model(&Notification{}).
			Where("id = ? AND recipient_id = ?", id, recipientID).
			Update("read", true)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrRecordNotFound) {
				return apperr.ErrNotFound
			}
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
}

func (r *repository) CountUnread(recipientID uint64) (int64, error) {
	var n int64
	err := r.store.Once(func(g *gorm.DB) error {
		return g.Model(&Notification{}).
			Where("recipient_id = ? AND read = ?", recipientID, false).
			Count(&n).Error
	})
	return n, err
}
