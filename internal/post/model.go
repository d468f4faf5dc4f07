package post

import (
	"time"

	"github.com/Nainee99/bondeo/internal/user"
)

const MaxContentLen = 280

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	AuthorID  uint64    `gorm:"index" json:"author_id"`
	Content   string    `gorm:"size:280" json:"content"`
	ImageURL  string    `gorm:"size:512" json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Author user.User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

type Like struct {
	PostID    uint64    `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	Post Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	User user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"index" json:"post_id"`
	AuthorID  uint64    `gorm:"index" json:"author_id"`
	Content   string    `gorm:"size:280" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	Post   Post      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
	Author user.User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}
