package migrate

import (
	"github.com/Nainee99/bondeo/internal/follow"
	"github.com/Nainee99/bondeo/internal/notification"
	"github.com/Nainee99/bondeo/internal/post"
	"github.com/Nainee99/bondeo/internal/user"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&post.Post{}, &post.Like{}, &post.Comment{},
		&follow.Follow{},
		&notification.Notification{},
	)
}
