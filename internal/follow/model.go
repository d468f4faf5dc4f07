package follow

import (
	"time"

	"github.com/Nainee99/bondeo/internal/user"
)

// Follow is a directed edge: FollowerID follows FolloweeID. The row's
// existence is the sole source of truth for "is following"; all counts are
// derived by counting edges. Both ends are constrained to existing users and
// go away with them.
type Follow struct {
	FollowerID uint64    `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	FolloweeID uint64    `gorm:"primaryKey;autoIncrement:false" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower user.User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Followee user.User `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE" json:"-"`
}
