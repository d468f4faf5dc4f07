package post_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Nainee99/bondeo/internal/migrate"
	"github.com/Nainee99/bondeo/internal/post"
	"github.com/Nainee99/bondeo/internal/shared/apperr"
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
	dsn := fmt.Sprintf("file:post_test_%d?mode=memory&cache=shared", memDBSeq)
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

func newService(g *gorm.DB) post.Service {
	return post.NewService(post.NewRepository(db.FromGorm(g)), nil, nil)
}

func TestCreateValidation(t *testing.T) {
	g := newTestDB(t)
	ids := seedUsers(t, g, 1)
	svc := newService(g)
	ctx := context.Background()

	if _, err := svc.Create(ctx, ids[0], post.CreateReq{}); !errors.Is(err, apperr.ErrEmptyPost) {
		t.Fatalf("empty post: expected ErrEmptyPost, got %v", err)
	}
	if _, err := svc.Create(ctx, ids[0], post.CreateReq{Content: "   "}); !errors.Is(err, apperr.ErrEmptyPost) {
		t.Fatalf("whitespace post: expected ErrEmptyPost, got %v", err)
	}
	long := strings.Repeat("a", post.MaxContentLen+1)
	if _, err := svc.Create(ctx, ids[0], post.CreateReq{Content: long}); !errors.Is(err, apperr.ErrContentTooLong) {
		t.Fatalf("long post: expected ErrContentTooLong, got %v", err)
	}
	if _, err := svc.Create(ctx, 0, post.CreateReq{Content: "hi"}); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Fatalf("anonymous post: expected ErrUnauthenticated, got %v", err)
	}

	// Image-only posts are fine.
	p, err := svc.Create(ctx, ids[0], post.CreateReq{ImageURL: "http://img/x.png"})
	if err != nil {
		t.Fatalf("image-only post: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected an id")
	}
}

func TestCreateAndListNewestFirst(t *testing.T) {
	g := newTestDB(t)
	ids := seedUsers(t, g, 1)
	svc := newService(g)
	ctx := context.Background()

	first, err := svc.Create(ctx, ids[0], post.CreateReq{Content: "hello"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := svc.Create(ctx, ids[0], post.CreateReq{Content: "world"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := svc.List(ctx, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected newest first, got %d then %d", items[0].ID, items[1].ID)
	}
	if items[0].LikeCount != 0 || items[0].CommentCount != 0 {
		t.Fatalf("fresh post should have zero counts, got %d/%d", items[0].LikeCount, items[0].CommentCount)
	}
}

func TestListPagination(t *testing.T) {
	g := newTestDB(t)
	ids := seedUsers(t, g, 1)
	svc := newService(g)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(ctx, ids[0], post.CreateReq{Content: fmt.Sprintf("post %d", i)}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	page1, err := svc.List(ctx, 2, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	page2, err := svc.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page1) != 2 || len(page2) != 2 {
		t.Fatalf("expected 2+2, got %d+%d", len(page1), len(page2))
	}
	if page1[1].ID <= page2[0].ID {
		t.Fatal("pages out of order")
	}
}

func TestDeleteOwnerOnly(t *testing.T) {
	g := newTestDB(t)
	ids := seedUsers(t, g, 2)
	svc := newService(g)
	ctx := context.Background()

	p, err := svc.Create(ctx, ids[0], post.CreateReq{Content: "mine"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, ids[1], p.ID); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("non-author delete: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.GetByID(ctx, p.ID); err != nil {
		t.Fatalf("post should survive forbidden delete: %v", err)
	}

	if err := svc.Delete(ctx, ids[0], p.ID); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, p.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, ids[0], p.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("deleting a missing post: expected ErrNotFound, got %v", err)
	}
}

func TestDeleteCascades(t *testing.T) {
	g := newTestDB(t)
	ids := seedUsers(t, g, 2)
	svc := newService(g)
	ctx := context.Background()

	p, err := svc.Create(ctx, ids[0], post.CreateReq{Content: "with engagement"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, _, err := svc.ToggleLike(ctx, ids[1], p.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	if _, err := svc.AddComment(ctx, ids[1], p.ID, "nice"); err != nil {
		t.Fatalf("comment: %v", err)
	}

	if err := svc.Delete(ctx, ids[0], p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var likes, comments int64
	g.Model(&post.Like{}).Where("post_id = ?", p.ID).Count(&likes)
	g.Model(&post.Comment{}).Where("post_id = ?", p.ID).Count(&comments)
	if likes != 0 || comments != 0 {
		t.Fatalf("expected cascade, got %d likes %d comments", likes, comments)
	}
}

func TestLikeAndCommentCounts(t *testing.T) {
	g := newTestDB(t)
	ids := seedUsers(t, g, 3)
	svc := newService(g)
	ctx := context.Background()

	p, err := svc.Create(ctx, ids[0], post.CreateReq{Content: "hi"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	liked, count, err := svc.ToggleLike(ctx, ids[1], p.ID)
	if err != nil || !liked || count != 1 {
		t.Fatalf("like: liked=%v count=%d err=%v", liked, count, err)
	}
	liked, count, err = svc.ToggleLike(ctx, ids[2], p.ID)
	if err != nil || !liked || count != 2 {
		t.Fatalf("second like: liked=%v count=%d err=%v", liked, count, err)
	}
	// Like toggle unlikes on repeat.
	liked, count, err = svc.ToggleLike(ctx, ids[1], p.ID)
	if err != nil || liked || count != 1 {
		t.Fatalf("unlike: liked=%v count=%d err=%v", liked, count, err)
	}

	if _, err := svc.AddComment(ctx, ids[2], p.ID, "first!"); err != nil {
		t.Fatalf("comment: %v", err)
	}

	got, err := svc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.LikeCount != 1 || got.CommentCount != 1 {
		t.Fatalf("expected counts 1/1, got %d/%d", got.LikeCount, got.CommentCount)
	}

	if _, _, err := svc.ToggleLike(ctx, ids[1], 99999); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("like missing post: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.AddComment(ctx, ids[1], 99999, "ghost"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("comment missing post: expected ErrNotFound, got %v", err)
	}
}

func TestCountByAuthor(t *testing.T) {
	g := newTestDB(t)
	ids := seedUsers(t, g, 2)
	svc := newService(g)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, ids[0], post.CreateReq{Content: "x"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	n, err := svc.CountByAuthor(ids[0])
	if err != nil || n != 3 {
		t.Fatalf("expected 3 posts, got %d (%v)", n, err)
	}
	n, err = svc.CountByAuthor(ids[1])
	if err != nil || n != 0 {
		t.Fatalf("expected 0 posts, got %d (%v)", n, err)
	}
}
