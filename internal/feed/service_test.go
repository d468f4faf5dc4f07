package feed_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/Nainee99/bondeo/internal/feed"
	"github.com/Nainee99/bondeo/internal/follow"
	"github.com/Nainee99/bondeo/internal/migrate"
	"github.com/Nainee99/bondeo/internal/notification"
	"github.com/Nainee99/bondeo/internal/post"
	"github.com/Nainee99/bondeo/internal/shared/db"
	"github.com/Nainee99/bondeo/internal/user"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var memDBSeq int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	memDBSeq++
	dsn := fmt.Sprintf("file:feed_test_%d?mode=memory&cache=shared", memDBSeq)
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

func seedUsers(t *testing.T, g *gorm.DB, n int) []uint64 {
	t.Helper()
	ids := make([]uint64, 0, n)
	for i := 0; i < n; i++ {
		u := user.User{
			ExternalID: fmt.Sprintf("ext_%d", i),
			Handle:     fmt.Sprintf("user_%d", i),
		}
		if err := g.Create(&u).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
		ids = append(ids, u.ID)
	}
	return ids
}

func newFeed(g *gorm.DB) (feed.Service, post.Service, follow.Service) {
	userRepo := user.NewRepository(db.FromGorm(g))
	postSvc := post.NewService(post.NewRepository(db.FromGorm(g)), nil, nil)
	followSvc := follow.NewService(follow.NewRepository(db.FromGorm(g), notification.NewRepository(db.FromGorm(g))))
	return feed.NewService(postSvc, userRepo, nil), postSvc, followSvc
}

func TestHomeDelegatesNewestFirst(t *testing.T) {
	g := newTestDB(t)
	ids := seedUsers(t, g, 2)
	feedSvc, postSvc, _ := newFeed(g)
	ctx := context.Background()

	older, err := postSvc.Create(ctx, ids[0], post.CreateReq{Content: "older"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	newer, err := postSvc.Create(ctx, ids[1], post.CreateReq{Content: "newer"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := feedSvc.Home(ctx, 10, 0)
	if err != nil {
		t.Fatalf("home: %v", err)
	}
	if len(items) != 2 || items[0].ID != newer.ID || items[1].ID != older.ID {
		t.Fatalf("expected [%d %d], got %+v", newer.ID, older.ID, items)
	}
}

func TestSuggestionsExcludeViewerAndFollowed(t *testing.T) {
	g := newTestDB(t)
	ids := seedUsers(t, g, 8)
	feedSvc, _, followSvc := newFeed(g)
	ctx := context.Background()
	viewer := ids[0]

	// Arbitrary follow/unfollow churn; viewer ends up following ids[1..3].
	for _, target := range ids[1:4] {
		if _, err := followSvc.Toggle(viewer, target); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}
	if _, err := followSvc.Toggle(viewer, ids[4]); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := followSvc.Toggle(viewer, ids[4]); err != nil {
		t.Fatalf("toggle back: %v", err)
	}

	followed := map[uint64]bool{ids[1]: true, ids[2]: true, ids[3]: true}
	for i := 0; i < 20; i++ {
		got, err := feedSvc.Suggestions(ctx, viewer, 3)
		if err != nil {
			t.Fatalf("suggestions: %v", err)
		}
		if len(got) > 3 {
			t.Fatalf("expected at most 3 suggestions, got %d", len(got))
		}
		for _, s := range got {
			if s.ID == viewer {
				t.Fatal("suggestions must not include the viewer")
			}
			if followed[s.ID] {
				t.Fatalf("suggestions must not include followed user %d", s.ID)
			}
		}
	}
}

func TestSuggestionsSmallPool(t *testing.T) {
	g := newTestDB(t)
	ids := seedUsers(t, g, 3)
	feedSvc, _, followSvc := newFeed(g)
	ctx := context.Background()
	viewer := ids[0]

	if _, err := followSvc.Toggle(viewer, ids[1]); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	got, err := feedSvc.Suggestions(ctx, viewer, 3)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	if len(got) != 1 || got[0].ID != ids[2] {
		t.Fatalf("expected only user %d, got %+v", ids[2], got)
	}
}

func TestSuggestionsFollowerCountDerived(t *testing.T) {
	g := newTestDB(t)
	ids := seedUsers(t, g, 4)
	feedSvc, _, followSvc := newFeed(g)
	ctx := context.Background()

	// ids[3] gains two followers; viewer ids[0] follows nobody.
	if _, err := followSvc.Toggle(ids[1], ids[3]); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := followSvc.Toggle(ids[2], ids[3]); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	got, err := feedSvc.Suggestions(ctx, ids[0], 3)
	if err != nil {
		t.Fatalf("suggestions: %v", err)
	}
	for _, s := range got {
		if s.ID == ids[3] && s.FollowerCount != 2 {
			t.Fatalf("expected follower count 2 for user %d, got %d", ids[3], s.FollowerCount)
		}
	}
}
