package notification

import (
	"time"

	"github.com/Nainee99/bondeo/internal/user"
)

type Kind string

const (
	KindFollow Kind = "FOLLOW"
)

type Notification struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	RecipientID uint64    `gorm:"index" json:"recipient_id"`
	ActorID     uint64    `gorm:"index" json:"actor_id"`
	Kind        Kind      `gorm:"size:16;index" json:"kind"`
	Read        bool      `gorm:"default:false" json:"read"`
	CreatedAt   time.Time `json:"created_at"`

	Recipient user.User `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"-"`
	Actor     user.User `gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE" json:"-"`
}
