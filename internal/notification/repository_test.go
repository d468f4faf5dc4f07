package notification_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Nainee99/bondeo/internal/migrate"
	"github.com/Nainee99/bondeo/internal/notification"
	"github.com/Nainee99/bondeo/internal/shared/apperr"
	"github.com/Nainee99/bondeo/internal/shared/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var memDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	memDBSeq++
	dsn := fmt.Sprintf("file:notification_test_%d?mode=memory&cache=shared", memDBSeq)
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := g.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := migrate.AutoMigrateAll(g); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return g
}

func TestListNewestFirst(t *testing.T) {
	g := newTestDB(t)
	repo := notification.NewRepository(db.FromGorm(g))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		n := notification.Notification{
			RecipientID: 1,
			ActorID:     uint64(10 + i),
			Kind:        notification.KindFollow,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if err := g.Create(&n).Error; err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	items, err := repo.List(1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3, got %d", len(items))
	}
	if items[0].ActorID != 12 || items[2].ActorID != 10 {
		t.Fatalf("expected newest first, got %v %v", items[0].ActorID, items[2].ActorID)
	}
}

func TestMarkRead(t *testing.T) {
	g := newTestDB(t)
	repo := notification.NewRepository(db.FromGorm(g))

	n := notification.Notification{RecipientID: 1, ActorID: 2, Kind: notification.KindFollow}
	if err := g.Create(&n).Error; err != nil {
		t.Fatalf("create: %v", err)
	}

	unread, err := repo.CountUnread(1)
	if err != nil || unread != 1 {
		t.Fatalf("expected 1 unread, got %d (%v)", unread, err)
	}

	if err := repo.MarkRead(1, n.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	unread, _ = repo.CountUnread(1)
	if unread != 0 {
		t.Fatalf("expected 0 unread, got %d", unread)
	}

	// The wrong recipient cannot mark someone else's notification.
	if err := repo.MarkRead(99, n.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
